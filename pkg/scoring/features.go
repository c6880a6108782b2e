// Package scoring holds the pure parts of cycle scoring: which features a
// window projects, how probability maps to remaining life, when an alert is
// due, and how a scoring run ended.
package scoring

import (
	"fmt"

	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

// FeatureSet is what a model consumes: WindowSize chronological steps of
// the named cycle fields.
type FeatureSet struct {
	Names      []string
	WindowSize int
}

func (f FeatureSet) Validate() error {
	if f.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", f.WindowSize)
	}
	if len(f.Names) == 0 {
		return fmt.Errorf("feature set is empty")
	}
	for _, name := range f.Names {
		if !models.IsFeatureName(name) {
			return fmt.Errorf("unknown feature %q", name)
		}
	}
	return nil
}

// Project reads the feature values of one record, in Names order.
func (f FeatureSet) Project(record *models.CycleRecord) ([]float64, error) {
	step := make([]float64, len(f.Names))
	for i, name := range f.Names {
		v, ok := record.Feature(name)
		if !ok {
			return nil, fmt.Errorf("unknown feature %q", name)
		}
		step[i] = v
	}
	return step, nil
}

// ProjectWindow projects records that are already in chronological order.
func (f FeatureSet) ProjectWindow(records []models.CycleRecord) ([][]float64, error) {
	window := make([][]float64, 0, len(records))
	for i := range records {
		step, err := f.Project(&records[i])
		if err != nil {
			return nil, err
		}
		window = append(window, step)
	}
	return window, nil
}

// Resolve prefers what the model declares and falls back to f for
// anything it leaves out.
func (f FeatureSet) Resolve(names []string, windowSize int) FeatureSet {
	out := f
	if len(names) > 0 {
		out.Names = names
	}
	if windowSize > 0 {
		out.WindowSize = windowSize
	}
	return out
}
