package inference

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const ArchitectureSimpleRNN = "simple_rnn"

// Artifact is the on-disk form of an exported model.
type Artifact struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Architecture string   `yaml:"architecture"`
	WindowSize   int      `yaml:"window_size"`
	Features     []string `yaml:"features"`
	Horizon      int      `yaml:"horizon"`

	Normalization struct {
		Mean []float64 `yaml:"mean"`
		Std  []float64 `yaml:"std"`
	} `yaml:"normalization"`

	Weights struct {
		Kernel          [][]float64 `yaml:"kernel"`
		RecurrentKernel [][]float64 `yaml:"recurrent_kernel"`
		Bias            []float64   `yaml:"bias"`
		DenseKernel     []float64   `yaml:"dense_kernel"`
		DenseBias       float64     `yaml:"dense_bias"`
	} `yaml:"weights"`
}

func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	return model, nil
}

func ParseModel(data []byte) (Model, error) {
	var a Artifact
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return a.Build()
}

func (a *Artifact) Info() ModelInfo {
	return ModelInfo{
		Name:       a.Name,
		Version:    a.Version,
		WindowSize: a.WindowSize,
		Features:   a.Features,
		Horizon:    a.Horizon,
	}
}

func (a *Artifact) Build() (Model, error) {
	if a.Version == "" {
		return nil, fmt.Errorf("model artifact has no version")
	}
	switch a.Architecture {
	case ArchitectureSimpleRNN, "":
		return NewSimpleRNN(a.Info(), RNNWeights{
			Mean:            a.Normalization.Mean,
			Std:             a.Normalization.Std,
			Kernel:          a.Weights.Kernel,
			RecurrentKernel: a.Weights.RecurrentKernel,
			Bias:            a.Weights.Bias,
			DenseKernel:     a.Weights.DenseKernel,
			DenseBias:       a.Weights.DenseBias,
		})
	default:
		return nil, fmt.Errorf("unsupported architecture %q", a.Architecture)
	}
}
