package fleet

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

func (f *Fleet) createEngine(input *models.Engine) (*models.Engine, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEngine),
	)

	engine := models.Engine{
		SerialNumber:     input.SerialNumber,
		Model:            input.Model,
		AircraftID:       input.AircraftID,
		InstallationDate: input.InstallationDate,
		Status:           input.Status,
	}
	if engine.Status == "" {
		engine.Status = models.EngineStatusActive
	}
	if !engine.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := f.Db.Conn.Create(&engine).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSerialExists
		}
		return nil, persistence("create engine", err)
	}

	logger.Info("Engine created", zap.Reflect("engine", engine))
	return &engine, nil
}

func (f *Fleet) getEngine(engineID uint) (*models.Engine, error) {
	var engine models.Engine
	if err := f.Db.Conn.First(&engine, engineID).Error; err != nil {
		return nil, notFound(err, ErrEngineNotFound)
	}
	return &engine, nil
}

func (f *Fleet) listEngineIDs() ([]uint, error) {
	var ids []uint
	err := f.Db.Conn.Model(&models.Engine{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

type latestCycleRow struct {
	EngineID           uint     `gorm:"column:engine_id"`
	Cycle              int      `gorm:"column:cycle"`
	RUL                *float64 `gorm:"column:rul"`
	FailureProbability *float64 `gorm:"column:failure_probability"`
}

type alertCountRow struct {
	EngineID uint  `gorm:"column:engine_id"`
	Count    int64 `gorm:"column:count"`
}

func (f *Fleet) listEngines() ([]models.EngineSummary, error) {
	conn := f.Db.Conn

	var engines []models.Engine
	if err := conn.Order("id").Find(&engines).Error; err != nil {
		return nil, err
	}

	latest := conn.Model(&models.CycleRecord{}).
		Select("engine_id, MAX(cycle) AS max_cycle").
		Group("engine_id")

	var cycles []latestCycleRow
	err := conn.Table("cycle_records AS c").
		Select("c.engine_id, c.cycle, c.rul, c.failure_probability").
		Joins("JOIN (?) AS l ON l.engine_id = c.engine_id AND l.max_cycle = c.cycle", latest).
		Scan(&cycles).Error
	if err != nil {
		return nil, err
	}
	byEngine := make(map[uint]latestCycleRow, len(cycles))
	for _, c := range cycles {
		byEngine[c.EngineID] = c
	}

	var counts []alertCountRow
	err = conn.Model(&models.Alert{}).
		Select("engine_id, COUNT(*) AS count").
		Where("resolved = ?", false).
		Group("engine_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	alerts := make(map[uint]int64, len(counts))
	for _, c := range counts {
		alerts[c.EngineID] = c.Count
	}

	summaries := make([]models.EngineSummary, 0, len(engines))
	for _, engine := range engines {
		summary := models.EngineSummary{Engine: engine, Alerts: alerts[engine.ID]}
		if c, ok := byEngine[engine.ID]; ok {
			summary.LatestCycle = common.Ptr(c.Cycle)
			summary.RUL = c.RUL
			summary.FailureProbability = c.FailureProbability
			summary.MaintenanceDue = f.Policy.MaintenanceDue(c.FailureProbability)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// detailCycles is how many recent cycles the engine detail carries.
const detailCycles = 50

func (f *Fleet) getEngineDetail(engineID uint) (*models.EngineDetail, error) {
	engine, err := f.getEngine(engineID)
	if err != nil {
		return nil, err
	}

	var cycles []models.CycleRecord
	err = f.Db.Conn.
		Where("engine_id = ?", engineID).
		Order("cycle desc").
		Limit(detailCycles).
		Find(&cycles).Error
	if err != nil {
		return nil, err
	}
	common.Reverse(cycles)

	var history []models.MaintenanceRecord
	err = f.Db.Conn.
		Where("engine_id = ?", engineID).
		Order("start_date").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	return &models.EngineDetail{
		Engine:             *engine,
		Cycles:             cycles,
		MaintenanceHistory: history,
	}, nil
}

func (f *Fleet) updateEngine(engineID uint, patch *models.EnginePatch) (*models.Engine, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEngine),
	)

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	engine, err := f.getEngine(engineID)
	if err != nil {
		return nil, err
	}

	if patch.Model != nil {
		engine.Model = *patch.Model
	}
	if patch.AircraftID != nil {
		engine.AircraftID = *patch.AircraftID
	}
	if patch.Status != nil {
		engine.Status = *patch.Status
	}
	if patch.InstallationDate != nil {
		engine.InstallationDate = patch.InstallationDate
	}

	if err := f.Db.Conn.Save(engine).Error; err != nil {
		return nil, persistence("update engine", err)
	}

	logger.Info("Engine updated", zap.Reflect("engine", engine))
	return engine, nil
}

func (f *Fleet) deleteEngine(engineID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEngine),
	)

	unlock := f.Locks.Lock(engineID)
	defer unlock()

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var engine models.Engine
		if err := tx.First(&engine, engineID).Error; err != nil {
			return notFound(err, ErrEngineNotFound)
		}
		// explicit deletes keep MySQL tables without FK cascade consistent
		for _, model := range []any{&models.CycleRecord{}, &models.MaintenanceRecord{}, &models.Alert{}} {
			if err := tx.Where("engine_id = ?", engineID).Delete(model).Error; err != nil {
				return persistence("delete engine data", err)
			}
		}
		if err := tx.Delete(&engine).Error; err != nil {
			return persistence("delete engine", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Engine deleted", zap.Uint("engine_id", engineID))
	return nil
}

type IEngineImpl struct {
	fleet *Fleet
}

func (ie *IEngineImpl) CreateEngine(input *models.Engine) (*models.Engine, error) {
	return ie.fleet.createEngine(input)
}

func (ie *IEngineImpl) GetEngine(engineID uint) (*models.Engine, error) {
	return ie.fleet.getEngine(engineID)
}

func (ie *IEngineImpl) ListEngines() ([]models.EngineSummary, error) {
	return ie.fleet.listEngines()
}

func (ie *IEngineImpl) ListEngineIDs() ([]uint, error) {
	return ie.fleet.listEngineIDs()
}

func (ie *IEngineImpl) GetEngineDetail(engineID uint) (*models.EngineDetail, error) {
	return ie.fleet.getEngineDetail(engineID)
}

func (ie *IEngineImpl) UpdateEngine(engineID uint, patch *models.EnginePatch) (*models.Engine, error) {
	return ie.fleet.updateEngine(engineID, patch)
}

func (ie *IEngineImpl) DeleteEngine(engineID uint) error {
	return ie.fleet.deleteEngine(engineID)
}

func (f *Fleet) GetIEngine() IEngine {
	return &IEngineImpl{fleet: f}
}
