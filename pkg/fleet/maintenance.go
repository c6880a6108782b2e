package fleet

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

// closeOut reactivates the engine and resolves its maintenance_due alerts.
func (f *Fleet) closeOut(tx *gorm.DB, engineID uint, userID uint) error {
	err := tx.Model(&models.Engine{}).
		Where("id = ?", engineID).
		Update("status", models.EngineStatusActive).Error
	if err != nil {
		return persistence("update engine status", err)
	}
	if _, err := f.Alert.ResolveMaintenanceAlerts(tx, engineID, userID, time.Now().UTC()); err != nil {
		return persistence("resolve alerts", err)
	}
	return nil
}

func (f *Fleet) addMaintenance(input *models.MaintenanceRecord, userID uint) (*models.MaintenanceRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMaintenance),
	)

	if !input.Type.Valid() {
		return nil, ErrInvalidMaintenance
	}

	unlock := f.Locks.Lock(input.EngineID)
	defer unlock()

	record := models.MaintenanceRecord{
		EngineID:      input.EngineID,
		Type:          input.Type,
		Description:   input.Description,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		PartsReplaced: input.PartsReplaced,
		Notes:         input.Notes,
	}
	if userID != 0 {
		record.PerformedBy = &userID
	}

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var engine models.Engine
		if err := tx.First(&engine, record.EngineID).Error; err != nil {
			return notFound(err, ErrEngineNotFound)
		}
		record.CycleCount = engine.TotalCycles

		if err := tx.Create(&record).Error; err != nil {
			return persistence("create maintenance", err)
		}

		if record.Closed() {
			return f.closeOut(tx, engine.ID, userID)
		}
		err := tx.Model(&engine).Update("status", models.EngineStatusMaintenance).Error
		return persistence("update engine status", err)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Maintenance added", zap.Reflect("maintenance", record))
	return &record, nil
}

func (f *Fleet) updateMaintenance(maintenanceID uint, patch *models.MaintenancePatch, userID uint) (*models.MaintenanceRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMaintenance),
	)

	if patch.Type != nil && !patch.Type.Valid() {
		return nil, ErrInvalidMaintenance
	}

	current, err := f.getMaintenance(maintenanceID)
	if err != nil {
		return nil, err
	}

	unlock := f.Locks.Lock(current.EngineID)
	defer unlock()

	var record models.MaintenanceRecord
	err = f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, maintenanceID).Error; err != nil {
			return notFound(err, ErrNotFound)
		}

		if patch.Description != nil {
			record.Description = *patch.Description
		}
		if patch.Type != nil {
			record.Type = *patch.Type
		}
		if patch.Notes != nil {
			record.Notes = *patch.Notes
		}
		if patch.PartsReplaced != nil {
			record.PartsReplaced = patch.PartsReplaced
		}
		if patch.EndDate != nil {
			record.EndDate = patch.EndDate
		}

		if err := tx.Save(&record).Error; err != nil {
			return persistence("update maintenance", err)
		}

		if patch.EndDate != nil {
			return f.closeOut(tx, record.EngineID, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Maintenance updated", zap.Reflect("maintenance", record))
	return &record, nil
}

func (f *Fleet) getMaintenance(maintenanceID uint) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := f.Db.Conn.First(&record, maintenanceID).Error; err != nil {
		return nil, notFound(err, ErrNotFound)
	}
	return &record, nil
}

func (f *Fleet) listMaintenance(filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	query := f.Db.Conn.Model(&models.MaintenanceRecord{})
	if filter.EngineID != 0 {
		query = query.Where("engine_id = ?", filter.EngineID)
	}
	if filter.Type != "" {
		query = query.Where("maintenance_type = ?", filter.Type)
	}

	records := []models.MaintenanceRecord{}
	err := query.Order("start_date desc, id desc").Find(&records).Error
	return records, err
}

type IMaintenanceImpl struct {
	fleet *Fleet
}

func (im *IMaintenanceImpl) AddMaintenance(input *models.MaintenanceRecord, userID uint) (*models.MaintenanceRecord, error) {
	return im.fleet.addMaintenance(input, userID)
}

func (im *IMaintenanceImpl) UpdateMaintenance(maintenanceID uint, patch *models.MaintenancePatch, userID uint) (*models.MaintenanceRecord, error) {
	return im.fleet.updateMaintenance(maintenanceID, patch, userID)
}

func (im *IMaintenanceImpl) GetMaintenance(maintenanceID uint) (*models.MaintenanceRecord, error) {
	return im.fleet.getMaintenance(maintenanceID)
}

func (im *IMaintenanceImpl) ListMaintenance(filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	return im.fleet.listMaintenance(filter)
}

func (f *Fleet) GetIMaintenance() IMaintenance {
	return &IMaintenanceImpl{fleet: f}
}
