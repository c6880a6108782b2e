package fleet

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

var errDryRun = errors.New("dry run")

// ingestCycle stores a new cycle and scores the engine, all in one
// transaction under the engine's lock. The duplicate check and the alert
// check-then-create therefore never race for one engine.
func (f *Fleet) ingestCycle(ctx context.Context, engineID uint, input *models.CycleRecord) (*scoring.Outcome, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCycle),
	)

	if input.Cycle <= 0 {
		return nil, ErrInvalidCycle
	}

	unlock := f.Locks.Lock(engineID)
	defer unlock()

	record := models.CycleRecord{
		EngineID:  engineID,
		Cycle:     input.Cycle,
		Timestamp: input.Timestamp,
		Settings:  input.Settings,
		Sensors:   input.Sensors,
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	var outcome *scoring.Outcome
	err := f.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var engine models.Engine
		if err := tx.First(&engine, engineID).Error; err != nil {
			return notFound(err, ErrEngineNotFound)
		}

		var existing int64
		err := tx.Model(&models.CycleRecord{}).
			Where("engine_id = ? AND cycle = ?", engineID, record.Cycle).
			Count(&existing).Error
		if err != nil {
			return persistence("check cycle", err)
		}
		if existing > 0 {
			return &DuplicateCycleError{Cycle: record.Cycle, Next: engine.TotalCycles + 1}
		}

		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &DuplicateCycleError{Cycle: record.Cycle, Next: engine.TotalCycles + 1}
			}
			return persistence("create cycle", err)
		}
		logger.Info("Cycle stored", zap.Uint("engine_id", engineID), zap.Int("cycle", record.Cycle))

		if record.Cycle > engine.TotalCycles {
			if err := tx.Model(&engine).Update("total_cycles", record.Cycle).Error; err != nil {
				return persistence("update total cycles", err)
			}
		}

		outcome, err = f.score(ctx, tx, &engine)
		return err
	})
	if err != nil {
		return nil, err
	}

	if outcome.State == scoring.StatePersisted && outcome.ScoredCycle == record.Cycle {
		record.FailureProbability = outcome.FailureProbability
		record.RUL = outcome.RUL
	}
	outcome.Cycle = &record

	f.Stats.CycleIngested()
	f.Stats.Observe(outcome)
	return outcome, nil
}

// rescore runs scoring for the newest stored cycle without inserting data.
// A dry run rolls everything back.
func (f *Fleet) rescore(ctx context.Context, engineID uint, dryRun bool) (*scoring.Outcome, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRescoreCommand),
	)

	unlock := f.Locks.Lock(engineID)
	defer unlock()

	var outcome *scoring.Outcome
	err := f.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var engine models.Engine
		if err := tx.First(&engine, engineID).Error; err != nil {
			return notFound(err, ErrEngineNotFound)
		}

		var err error
		if outcome, err = f.score(ctx, tx, &engine); err != nil {
			return err
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, err
	}

	logger.Info("Engine rescored",
		zap.Uint("engine_id", engineID),
		zap.String("state", string(outcome.State)),
		zap.Bool("dry_run", dryRun),
	)
	if !dryRun {
		f.Stats.Observe(outcome)
	}
	return outcome, nil
}

// featureSet is what the loaded model consumes, falling back to the
// configured set.
func (f *Fleet) featureSet() (scoring.FeatureSet, inference.ModelInfo, bool) {
	if f.Inference == nil {
		return f.Features, inference.ModelInfo{}, false
	}
	info, ok := f.Inference.Info()
	if !ok {
		return f.Features, info, false
	}
	return f.Features.Resolve(info.Features, info.WindowSize), info, true
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, inference.ErrModelUnavailable):
		return scoring.SkipModelUnavailable
	case errors.Is(err, inference.ErrInferenceTimeout):
		return scoring.SkipTimeout
	case errors.Is(err, context.Canceled):
		return scoring.SkipCancelled
	default:
		return scoring.SkipInferenceError
	}
}

// score takes the engine from Ingested to one of the terminal states.
// Only persistence failures are returned as errors.
func (f *Fleet) score(ctx context.Context, tx *gorm.DB, engine *models.Engine) (*scoring.Outcome, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryScoring),
	)

	features, _, _ := f.featureSet()

	count, err := f.Cycle.CountCycles(tx, engine.ID)
	if err != nil {
		return nil, persistence("count cycles", err)
	}
	if count < int64(features.WindowSize) {
		outcome := &scoring.Outcome{
			State:        scoring.StateInsufficientHistory,
			CyclesNeeded: features.WindowSize - int(count),
		}
		logger.Info("Not enough history to score",
			zap.Uint("engine_id", engine.ID),
			zap.Int64("cycles", count),
			zap.Int("cycles_needed", outcome.CyclesNeeded),
		)
		return outcome, nil
	}

	skipped := func(reason string, err error) *scoring.Outcome {
		logger.Warn("Prediction skipped",
			zap.Uint("engine_id", engine.ID),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return &scoring.Outcome{State: scoring.StatePredictionSkipped, SkipReason: reason}
	}

	if err := features.Validate(); err != nil {
		return skipped(scoring.SkipInferenceError, err), nil
	}

	window, records, err := f.Cycle.ExtractWindow(tx, engine.ID, features)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return skipped(scoring.SkipInsufficientData, err), nil
		}
		return nil, persistence("extract window", err)
	}
	if len(records) == 0 {
		return skipped(scoring.SkipInsufficientData, ErrInsufficientData), nil
	}

	if f.Inference == nil {
		return skipped(scoring.SkipModelUnavailable, inference.ErrModelUnavailable), nil
	}
	probability, info, err := f.Inference.Predict(ctx, window)
	if err != nil {
		return skipped(skipReason(err), err), nil
	}

	rul := f.Estimators.For(info.Version).EstimateRUL(probability)

	latest := &records[len(records)-1]
	err = tx.Model(latest).Updates(map[string]any{
		"failure_probability": probability,
		"rul":                 rul,
	}).Error
	if err != nil {
		return nil, persistence("update prediction", err)
	}

	horizon := info.Horizon
	if horizon <= 0 {
		horizon = f.Horizon
	}
	alert, err := f.Alert.MaybeRaiseAlert(tx, engine, probability, horizon)
	if err != nil {
		return nil, persistence("raise alert", err)
	}

	outcome := &scoring.Outcome{
		State:              scoring.StatePersisted,
		ScoredCycle:        latest.Cycle,
		ModelVersion:       info.Version,
		FailureProbability: common.Ptr(probability),
		RUL:                common.Ptr(rul),
		Alert:              alert,
	}
	logger.Info("Cycle scored",
		zap.Uint("engine_id", engine.ID),
		zap.Int("cycle", latest.Cycle),
		zap.String("model_version", info.Version),
		zap.Float64("failure_probability", probability),
		zap.Float64("rul", rul),
		zap.Bool("alert_raised", alert != nil),
	)
	return outcome, nil
}

type ICycleImpl struct {
	fleet *Fleet
}

func (ic *ICycleImpl) IngestCycle(ctx context.Context, engineID uint, input *models.CycleRecord) (*scoring.Outcome, error) {
	return ic.fleet.ingestCycle(ctx, engineID, input)
}

func (ic *ICycleImpl) ExtractWindow(tx *gorm.DB, engineID uint, features scoring.FeatureSet) ([][]float64, []models.CycleRecord, error) {
	return ic.fleet.extractWindow(tx, engineID, features)
}

func (ic *ICycleImpl) CountCycles(tx *gorm.DB, engineID uint) (int64, error) {
	return ic.fleet.countCycles(tx, engineID)
}

func (ic *ICycleImpl) Rescore(ctx context.Context, engineID uint, dryRun bool) (*scoring.Outcome, error) {
	return ic.fleet.rescore(ctx, engineID, dryRun)
}

func (f *Fleet) GetICycle() ICycle {
	return &ICycleImpl{fleet: f}
}
