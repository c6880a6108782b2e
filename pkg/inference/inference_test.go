package inference

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"
)

const tinyArtifact = `
name: tiny
version: "%s"
architecture: simple_rnn
window_size: 3
features: [s2, s3]
horizon: 30
weights:
  kernel:
    - [0.0]
    - [0.0]
  recurrent_kernel:
    - [0.0]
  bias: [0.0]
  dense_kernel: [0.0]
  dense_bias: %s
`

func tinyYAML(version string, denseBias string) []byte {
	return []byte(fmt.Sprintf(tinyArtifact, version, denseBias))
}

func window(steps, features int, v float64) [][]float64 {
	w := make([][]float64, steps)
	for i := range w {
		w[i] = make([]float64, features)
		for j := range w[i] {
			w[i][j] = v
		}
	}
	return w
}

func TestSimpleRNN_ZeroWeightsGiveHalf(t *testing.T) {
	common.SetTestLoggerNop()

	model, err := ParseModel(tinyYAML("1", "0.0"))
	require.NoError(t, err)

	p, err := model.Predict(window(3, 2, 123.4))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	info := model.Info()
	assert.Equal(t, "tiny", info.Name)
	assert.Equal(t, []string{"s2", "s3"}, info.Features)
	assert.Equal(t, 30, info.Horizon)
}

func TestSimpleRNN_OutputIsProbability(t *testing.T) {
	info := ModelInfo{Name: "t", Version: "1", WindowSize: 4, Features: []string{"s2"}}
	model, err := NewSimpleRNN(info, RNNWeights{
		Mean:            []float64{642},
		Std:             []float64{0.5},
		Kernel:          [][]float64{{2, -1}},
		RecurrentKernel: [][]float64{{0.5, 0}, {0, 0.5}},
		Bias:            []float64{0, 0},
		DenseKernel:     []float64{3, -3},
		DenseBias:       0,
	})
	require.NoError(t, err)

	low, err := model.Predict(window(4, 1, 641))
	require.NoError(t, err)
	high, err := model.Predict(window(4, 1, 644))
	require.NoError(t, err)

	for _, p := range []float64{low, high} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
	assert.Greater(t, high, low)
}

func TestSimpleRNN_RejectsBadShapes(t *testing.T) {
	info := ModelInfo{Version: "1", WindowSize: 2, Features: []string{"s2"}}

	_, err := NewSimpleRNN(info, RNNWeights{
		Kernel:          [][]float64{{1, 1}},
		RecurrentKernel: [][]float64{{1}},
		Bias:            []float64{0, 0},
		DenseKernel:     []float64{1, 1},
	})
	assert.ErrorContains(t, err, "recurrent_kernel")

	_, err = NewSimpleRNN(info, RNNWeights{
		Kernel:          [][]float64{{1}},
		RecurrentKernel: [][]float64{{1}},
		Bias:            []float64{0},
		DenseKernel:     []float64{1},
		Std:             []float64{0},
		Mean:            []float64{0},
	})
	assert.ErrorContains(t, err, "std")

	model, err := NewSimpleRNN(info, RNNWeights{
		Kernel:          [][]float64{{1}},
		RecurrentKernel: [][]float64{{1}},
		Bias:            []float64{0},
		DenseKernel:     []float64{1},
	})
	require.NoError(t, err)

	_, err = model.Predict(window(3, 1, 0))
	var ie *InferenceError
	assert.ErrorAs(t, err, &ie)

	_, err = model.Predict(window(2, 2, 0))
	assert.ErrorAs(t, err, &ie)
}

func TestParseModel_Errors(t *testing.T) {
	_, err := ParseModel([]byte("name: x\nversion: \"1\"\nunknown_field: 1\n"))
	assert.Error(t, err)

	_, err = ParseModel([]byte("name: x\nwindow_size: 3\n"))
	assert.ErrorContains(t, err, "version")

	_, err = ParseModel([]byte("name: x\nversion: \"1\"\narchitecture: lstm\n"))
	assert.ErrorContains(t, err, "unsupported architecture")
}

func TestLoadEngine_ShippedArtifact(t *testing.T) {
	common.SetTestLoggerNop()

	engine := LoadEngine(common.DefaultModelPath, time.Second)
	require.True(t, engine.Loaded())

	info, ok := engine.Info()
	require.True(t, ok)
	assert.Equal(t, common.DefaultWindowSize, info.WindowSize)
	assert.Equal(t, []string{common.DefaultFeature}, info.Features)

	p, got, err := engine.Predict(context.Background(), window(info.WindowSize, 1, 642.7))
	require.NoError(t, err)
	assert.Equal(t, info.Version, got.Version)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestLoadEngine_MissingArtifact(t *testing.T) {
	common.SetTestLoggerNop()

	engine := LoadEngine(filepath.Join(t.TempDir(), "missing.yaml"), time.Second)
	assert.False(t, engine.Loaded())

	_, _, err := engine.Predict(context.Background(), window(3, 2, 0))
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

type slowModel struct {
	delay time.Duration
}

func (m *slowModel) Info() ModelInfo {
	return ModelInfo{Version: "slow", WindowSize: 1, Features: []string{"s2"}}
}

func (m *slowModel) Predict(window [][]float64) (float64, error) {
	time.Sleep(m.delay)
	return 0.9, nil
}

type failingModel struct{}

func (failingModel) Info() ModelInfo { return ModelInfo{Version: "bad"} }

func (failingModel) Predict(window [][]float64) (float64, error) {
	return 0, errors.New("boom")
}

type panickingModel struct{}

func (panickingModel) Info() ModelInfo { return ModelInfo{Version: "panic"} }

func (panickingModel) Predict(window [][]float64) (float64, error) {
	panic("index out of range")
}

func TestEnginePredict_Timeout(t *testing.T) {
	engine := NewEngine(&slowModel{delay: 200 * time.Millisecond}, 10*time.Millisecond)

	start := time.Now()
	_, info, err := engine.Predict(context.Background(), window(1, 1, 0))
	assert.ErrorIs(t, err, ErrInferenceTimeout)
	assert.Equal(t, "slow", info.Version)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestEnginePredict_WrapsModelErrors(t *testing.T) {
	var ie *InferenceError

	_, _, err := NewEngine(failingModel{}, time.Second).Predict(context.Background(), nil)
	assert.ErrorAs(t, err, &ie)
	assert.ErrorContains(t, err, "boom")

	_, _, err = NewEngine(panickingModel{}, time.Second).Predict(context.Background(), nil)
	assert.ErrorAs(t, err, &ie)
	assert.ErrorContains(t, err, "panicked")
}

func TestEngine_ConcurrentSwapAndPredict(t *testing.T) {
	common.SetTestLoggerNop()

	m1, err := ParseModel(tinyYAML("1", "0.0"))
	require.NoError(t, err)
	m2, err := ParseModel(tinyYAML("2", "2.0"))
	require.NoError(t, err)

	engine := NewEngine(m1, time.Second)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%10 == 0 {
				engine.Swap(m2)
				return
			}
			p, info, err := engine.Predict(context.Background(), window(3, 2, 1))
			assert.NoError(t, err)
			switch info.Version {
			case "1":
				assert.InDelta(t, 0.5, p, 1e-12)
			case "2":
				assert.Greater(t, p, 0.5)
			default:
				t.Errorf("unexpected version %q", info.Version)
			}
		}()
	}
	wg.Wait()
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	common.SetTestLoggerNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, tinyYAML("1", "0.0"), 0o644))

	engine := LoadEngine(path, time.Second)
	info, ok := engine.Info()
	require.True(t, ok)
	require.Equal(t, "1", info.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 16)
	go func() {
		_ = Watch(ctx, path, engine, func(err error) {
			select {
			case reloaded <- err:
			default:
			}
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	// a broken write keeps the old model
	require.NoError(t, os.WriteFile(path, []byte("version: [broken"), 0o644))
	select {
	case err := <-reloaded:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after broken write")
	}
	info, _ = engine.Info()
	assert.Equal(t, "1", info.Version)

	require.NoError(t, os.WriteFile(path, tinyYAML("2", "0.0"), 0o644))
	assert.Eventually(t, func() bool {
		info, _ := engine.Info()
		return info.Version == "2"
	}, 5*time.Second, 20*time.Millisecond)
}
