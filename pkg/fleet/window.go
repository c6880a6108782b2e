package fleet

import (
	"fmt"

	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

func (f *Fleet) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return f.Db.Conn
}

// extractWindow returns the newest WindowSize cycles of the engine in
// chronological order, and their projected features.
func (f *Fleet) extractWindow(tx *gorm.DB, engineID uint, features scoring.FeatureSet) ([][]float64, []models.CycleRecord, error) {
	if err := features.Validate(); err != nil {
		return nil, nil, err
	}

	var records []models.CycleRecord
	err := f.conn(tx).
		Where("engine_id = ?", engineID).
		Order("cycle desc").
		Limit(features.WindowSize).
		Find(&records).Error
	if err != nil {
		return nil, nil, err
	}
	if len(records) < features.WindowSize {
		return nil, nil, fmt.Errorf("%w: have %d cycles, need %d", ErrInsufficientData, len(records), features.WindowSize)
	}
	common.Reverse(records)

	window, err := features.ProjectWindow(records)
	if err != nil {
		return nil, nil, err
	}
	return window, records, nil
}

func (f *Fleet) countCycles(tx *gorm.DB, engineID uint) (int64, error) {
	var count int64
	err := f.conn(tx).Model(&models.CycleRecord{}).Where("engine_id = ?", engineID).Count(&count).Error
	return count, err
}
