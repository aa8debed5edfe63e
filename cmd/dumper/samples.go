package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/dumper/sample"
	"go.uber.org/zap"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List or run built-in sample queries",
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sample queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := sample.NewLinqRegistry(sample.NewDataSource())
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, registry.Title)
		for _, s := range registry.Samples() {
			fmt.Fprintf(out, "%3d  %-22s %-20s %s\n", s.ID, s.Category, s.Title, s.Description)
		}
		return nil
	},
}

var samplesRunCmd = &cobra.Command{
	Use:   "run [id...]",
	Short: "Run sample queries, all when no id is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, _ := cmd.Flags().GetInt("depth")
		registry := sample.NewLinqRegistry(sample.NewDataSource())
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			logger.Debug("running all samples", zap.Int("count", len(registry.Samples())), zap.Int("depth", depth))
			return registry.RunAll(out, depth)
		}
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid sample id %q: %w", arg, err)
			}
			logger.Debug("running sample", zap.Int("id", id), zap.Int("depth", depth))
			if err = registry.Run(out, id, depth); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	samplesCmd.AddCommand(samplesListCmd, samplesRunCmd)
	rootCmd.AddCommand(samplesCmd)
}
