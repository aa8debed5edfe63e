package sample

import (
	"fmt"
	"io"
	"strings"
)

// Sample represents a runnable sample query printing its result
type Sample struct {
	ID          int
	Category    string
	Title       string
	Description string
	Run         func(w io.Writer, depth int) error
}

// Registry represents an ordered sample collection
type Registry struct {
	Title   string
	samples []*Sample
	byID    map[int]*Sample
}

// Register appends sample, sample ID is assigned in registration order starting at 1
func (r *Registry) Register(category, title, description string, run func(w io.Writer, depth int) error) *Sample {
	if category == "" {
		category = "Miscellaneous"
	}
	if description == "" {
		description = "See code."
	}
	ret := &Sample{ID: len(r.samples) + 1, Category: category, Title: title, Description: description, Run: run}
	if ret.Title == "" {
		ret.Title = fmt.Sprintf("Sample %d", ret.ID)
	}
	r.samples = append(r.samples, ret)
	r.byID[ret.ID] = ret
	return ret
}

// Samples returns samples in registration order
func (r *Registry) Samples() []*Sample {
	return r.samples
}

// Lookup returns sample for supplied ID
func (r *Registry) Lookup(id int) (*Sample, error) {
	ret, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("failed to lookup sample %v", id)
	}
	return ret, nil
}

// Run runs sample with supplied ID
func (r *Registry) Run(w io.Writer, id int, depth int) error {
	sample, err := r.Lookup(id)
	if err != nil {
		return err
	}
	if err = sample.Run(w, depth); err != nil {
		return fmt.Errorf("failed to run sample %v %q: %w", sample.ID, sample.Title, err)
	}
	return nil
}

// RunAll runs all samples, each preceded by a title line
func (r *Registry) RunAll(w io.Writer, depth int) error {
	for _, sample := range r.samples {
		title := fmt.Sprintf("%d. %s", sample.ID, sample.Title)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len(title))); err != nil {
			return err
		}
		if err := r.Run(w, sample.ID, depth); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry creates an empty registry
func NewRegistry(title string) *Registry {
	return &Registry{Title: title, byID: map[int]*Sample{}}
}
