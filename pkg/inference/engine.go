package inference

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
)

// Engine holds the active model. A nil model is a valid state: every
// Predict then fails with ErrModelUnavailable and callers skip scoring.
type Engine struct {
	mu      sync.RWMutex
	model   Model
	timeout time.Duration
}

func NewEngine(model Model, timeout time.Duration) *Engine {
	return &Engine{model: model, timeout: timeout}
}

// LoadEngine never fails; a missing or broken artifact leaves the engine
// without a model and is logged once.
func LoadEngine(path string, timeout time.Duration) *Engine {
	logger := common.GetLoggerWith(
		common.LoggerNameInference,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryModel),
	)

	e := NewEngine(nil, timeout)
	if err := e.Reload(path); err != nil {
		logger.Warn("Model not loaded, predictions disabled", zap.String("path", path), zap.Error(err))
	}
	return e
}

// Reload swaps in the model at path. On error the previous model stays.
func (e *Engine) Reload(path string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameInference,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryModel),
	)

	model, err := LoadModel(path)
	if err != nil {
		return err
	}
	e.Swap(model)

	info := model.Info()
	logger.Info("Model loaded",
		zap.String("path", path),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.Int("window_size", info.WindowSize),
		zap.Strings("features", info.Features),
	)
	return nil
}

func (e *Engine) Swap(model Model) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.model = model
}

func (e *Engine) current() Model {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model
}

func (e *Engine) Loaded() bool {
	return e.current() != nil
}

// Info describes the active model; ok is false when none is loaded.
func (e *Engine) Info() (ModelInfo, bool) {
	model := e.current()
	if model == nil {
		return ModelInfo{}, false
	}
	return model.Info(), true
}

// Predict evaluates window on the active model, bounded by the engine
// timeout and ctx. The returned info identifies the model that produced p.
func (e *Engine) Predict(ctx context.Context, window [][]float64) (float64, ModelInfo, error) {
	model := e.current()
	if model == nil {
		return 0, ModelInfo{}, ErrModelUnavailable
	}
	info := model.Info()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	type result struct {
		p   float64
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: inferenceErrorf("model panicked: %v", r)}
			}
		}()
		p, err := model.Predict(window)
		done <- result{p: p, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			var ie *InferenceError
			if !errors.As(r.err, &ie) {
				r.err = &InferenceError{Err: r.err}
			}
			return 0, info, r.err
		}
		return r.p, info, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, info, ErrInferenceTimeout
		}
		return 0, info, fmt.Errorf("inference cancelled: %w", ctx.Err())
	}
}
