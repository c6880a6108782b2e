package models

import "time"

type EngineStatus string

const (
	EngineStatusActive      EngineStatus = "active"
	EngineStatusMaintenance EngineStatus = "maintenance"
	EngineStatusRetired     EngineStatus = "retired"
)

var EngineStatuses = []EngineStatus{EngineStatusActive, EngineStatusMaintenance, EngineStatusRetired}

func (s EngineStatus) Valid() bool {
	for _, status := range EngineStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Engine struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	SerialNumber     string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"serial_number"`
	Model            string       `gorm:"type:varchar(50)" json:"model"`
	AircraftID       string       `gorm:"type:varchar(50)" json:"aircraft_id"`
	InstallationDate *time.Time   `json:"installation_date"`
	TotalCycles      int          `gorm:"not null;default:0" json:"total_cycles"`
	Status           EngineStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`

	Cycles             []CycleRecord       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Alerts             []Alert             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MaintenanceRecords []MaintenanceRecord `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// EnginePatch carries the optional fields of an engine update.
type EnginePatch struct {
	Model            *string
	AircraftID       *string
	Status           *EngineStatus
	InstallationDate *time.Time
}

// EngineSummary is one row of the engine listing.
type EngineSummary struct {
	Engine
	Alerts             int64    `json:"alerts"`
	LatestCycle        *int     `json:"latest_cycle,omitempty"`
	RUL                *float64 `json:"rul,omitempty"`
	FailureProbability *float64 `json:"failure_probability,omitempty"`
	MaintenanceDue     bool     `json:"maintenance_due"`
}

type EngineDetail struct {
	Engine
	Cycles             []CycleRecord       `json:"cycles"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenance_history"`
}
