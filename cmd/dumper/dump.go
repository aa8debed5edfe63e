package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/dumper"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file...]",
	Short: "Dump YAML or JSON documents",
	Long:  `Decodes every YAML or JSON document from the supplied files (or stdin) and prints it as indented text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, _ := cmd.Flags().GetInt("depth")
		dateFormat, _ := cmd.Flags().GetString("date-format")
		caseFormat, _ := cmd.Flags().GetString("case")
		tabWidth, _ := cmd.Flags().GetInt("tab-width")

		opts := []dumper.Option{dumper.WithDateFormat(dateFormat), dumper.WithTabWidth(tabWidth)}
		if caseFormat != "" {
			format := text.NewCaseFormat(caseFormat)
			if !format.IsDefined() {
				return fmt.Errorf("unsupported case format: %v", caseFormat)
			}
			opts = append(opts, dumper.WithCaseFormat(format))
		}
		d := dumper.New(opts...)
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return dumpDocuments(d, out, cmd.InOrStdin(), "stdin", depth)
		}
		for _, name := range args {
			if err := dumpFile(d, out, name, depth); err != nil {
				return err
			}
		}
		return nil
	},
}

func dumpFile(d *dumper.Dumper, out io.Writer, name string, depth int) error {
	file, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %v: %w", name, err)
	}
	defer file.Close()
	return dumpDocuments(d, out, file, name, depth)
}

func dumpDocuments(d *dumper.Dumper, out io.Writer, in io.Reader, source string, depth int) error {
	decoder := yaml.NewDecoder(in)
	for index := 0; ; index++ {
		var document interface{}
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode %v document %d: %w", source, index, err)
		}
		logger.Debug("dumping document", zap.String("source", source), zap.Int("index", index), zap.Int("depth", depth))
		if err = d.Fdump(out, document, depth); err != nil {
			return fmt.Errorf("failed to write %v document %d: %w", source, index, err)
		}
	}
}

func init() {
	dumpCmd.Flags().String("date-format", "", "Date format for date/time values, i.e. YYYY/MM/DD")
	dumpCmd.Flags().String("case", "", "Case format for field names, i.e. lowerCamel, lowerUnderscore")
	dumpCmd.Flags().Int("tab-width", 8, "Tab stop width aligning fields, 0 disables padding")
	rootCmd.AddCommand(dumpCmd)
}
