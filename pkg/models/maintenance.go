package models

import (
	"time"

	"gorm.io/datatypes"
)

type MaintenanceType string

const (
	MaintenanceTypeScheduled   MaintenanceType = "scheduled"
	MaintenanceTypeUnscheduled MaintenanceType = "unscheduled"
	MaintenanceTypeOverhaul    MaintenanceType = "overhaul"
)

func (t MaintenanceType) Valid() bool {
	return t == MaintenanceTypeScheduled || t == MaintenanceTypeUnscheduled || t == MaintenanceTypeOverhaul
}

type MaintenanceRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	EngineID      uint            `gorm:"index;not null" json:"engine_id"`
	Type          MaintenanceType `gorm:"column:maintenance_type;type:varchar(50)" json:"maintenance_type"`
	Description   string          `gorm:"type:text" json:"description"`
	PerformedBy   *uint           `json:"performed_by"`
	StartDate     time.Time       `gorm:"index" json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	CycleCount    int             `json:"cycle_count"`
	PartsReplaced datatypes.JSON  `json:"parts_replaced"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// Closed reports whether the maintenance has an end date.
func (m *MaintenanceRecord) Closed() bool {
	return m.EndDate != nil
}

type MaintenancePatch struct {
	Type          *MaintenanceType
	Description   *string
	EndDate       *time.Time
	Notes         *string
	PartsReplaced datatypes.JSON
}

type MaintenanceFilter struct {
	EngineID uint
	Type     MaintenanceType
}
