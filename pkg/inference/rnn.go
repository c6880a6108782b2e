package inference

import (
	"fmt"
	"math"
)

// SimpleRNN is a single tanh recurrent layer followed by a sigmoid dense
// unit, the topology of the forward RNN the failure model was trained as.
//
//	h_t = tanh(norm(x_t)·W + h_{t-1}·U + b)
//	p   = sigmoid(h_T·v + c)
type SimpleRNN struct {
	info ModelInfo

	mean []float64
	std  []float64

	kernel          [][]float64 // features x units
	recurrentKernel [][]float64 // units x units
	bias            []float64   // units
	denseKernel     []float64   // units
	denseBias       float64
}

type RNNWeights struct {
	Mean            []float64
	Std             []float64
	Kernel          [][]float64
	RecurrentKernel [][]float64
	Bias            []float64
	DenseKernel     []float64
	DenseBias       float64
}

func NewSimpleRNN(info ModelInfo, w RNNWeights) (*SimpleRNN, error) {
	features := len(info.Features)
	if info.WindowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", info.WindowSize)
	}
	if features == 0 {
		return nil, fmt.Errorf("model needs at least one feature")
	}

	units := len(w.Bias)
	if units == 0 {
		return nil, fmt.Errorf("recurrent layer needs at least one unit")
	}
	if err := checkMatrix("kernel", w.Kernel, features, units); err != nil {
		return nil, err
	}
	if err := checkMatrix("recurrent_kernel", w.RecurrentKernel, units, units); err != nil {
		return nil, err
	}
	if len(w.DenseKernel) != units {
		return nil, fmt.Errorf("dense kernel: expected %d weights, got %d", units, len(w.DenseKernel))
	}

	mean, std := w.Mean, w.Std
	if mean == nil {
		mean = make([]float64, features)
	}
	if std == nil {
		std = make([]float64, features)
		for i := range std {
			std[i] = 1
		}
	}
	if len(mean) != features || len(std) != features {
		return nil, fmt.Errorf("normalization: expected %d mean/std values, got %d/%d", features, len(mean), len(std))
	}
	for i, s := range std {
		if s == 0 {
			return nil, fmt.Errorf("normalization: std of feature %q is zero", info.Features[i])
		}
	}

	return &SimpleRNN{
		info:            info,
		mean:            mean,
		std:             std,
		kernel:          w.Kernel,
		recurrentKernel: w.RecurrentKernel,
		bias:            w.Bias,
		denseKernel:     w.DenseKernel,
		denseBias:       w.DenseBias,
	}, nil
}

func checkMatrix(name string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%s: expected %d rows, got %d", name, rows, len(m))
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%s: row %d expected %d columns, got %d", name, i, cols, len(row))
		}
	}
	return nil
}

func (m *SimpleRNN) Info() ModelInfo {
	return m.info
}

// Predict only reads the weights, so concurrent calls are safe.
func (m *SimpleRNN) Predict(window [][]float64) (float64, error) {
	if err := CheckWindow(m.info, window); err != nil {
		return 0, err
	}

	units := len(m.bias)
	h := make([]float64, units)
	next := make([]float64, units)

	for t, step := range window {
		for j := range units {
			acc := m.bias[j]
			for f, x := range step {
				acc += (x - m.mean[f]) / m.std[f] * m.kernel[f][j]
			}
			for k := range units {
				acc += h[k] * m.recurrentKernel[k][j]
			}
			next[j] = math.Tanh(acc)
		}
		h, next = next, h

		if math.IsNaN(h[0]) {
			return 0, inferenceErrorf("hidden state became NaN at step %d", t)
		}
	}

	logit := m.denseBias
	for j := range units {
		logit += h[j] * m.denseKernel[j]
	}
	p := 1 / (1 + math.Exp(-logit))

	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, inferenceErrorf("output %v is not a probability", p)
	}
	return p, nil
}
