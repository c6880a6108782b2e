// Package inference wraps the pre-trained failure model behind a process
// wide Engine that is built once at startup and injected where needed.
package inference

import (
	"errors"
	"fmt"
)

var (
	ErrModelUnavailable = errors.New("model unavailable")
	ErrInferenceTimeout = errors.New("inference timed out")
)

// InferenceError wraps a failure inside model evaluation, such as a
// malformed window or a non-finite output.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

func inferenceErrorf(format string, args ...any) error {
	return &InferenceError{Err: fmt.Errorf(format, args...)}
}

// ModelInfo describes what a model consumes and what its output means.
type ModelInfo struct {
	Name    string
	Version string
	// WindowSize is the number of chronological steps per prediction.
	WindowSize int
	// Features are the cycle fields projected at every step, in order.
	Features []string
	// Horizon is the number of cycles the failure probability covers.
	Horizon int
}

// Model is a loaded sequence model. Predict receives WindowSize steps of
// len(Features) values and returns a probability in [0, 1]. Implementations
// must be safe for concurrent Predict calls.
type Model interface {
	Info() ModelInfo
	Predict(window [][]float64) (float64, error)
}

// CheckWindow validates the window shape against info.
func CheckWindow(info ModelInfo, window [][]float64) error {
	if len(window) != info.WindowSize {
		return inferenceErrorf("expected %d steps, got %d", info.WindowSize, len(window))
	}
	for i, step := range window {
		if len(step) != len(info.Features) {
			return inferenceErrorf("step %d: expected %d features, got %d", i, len(info.Features), len(step))
		}
	}
	return nil
}
