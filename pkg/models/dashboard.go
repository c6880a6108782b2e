package models

import "time"

type DashboardSummary struct {
	TotalEngines       int64 `json:"total_engines"`
	ActiveEngines      int64 `json:"active_engines"`
	MaintenanceEngines int64 `json:"maintenance_engines"`
	AttentionNeeded    int64 `json:"attention_needed"`
}

type CriticalEngine struct {
	ID                 uint     `json:"id"`
	SerialNumber       string   `json:"serial_number"`
	AircraftID         string   `json:"aircraft_id"`
	FailureProbability float64  `json:"failure_probability"`
	CurrentCycle       int      `json:"current_cycle"`
	RUL                *float64 `gorm:"column:rul" json:"rul"`
}

type RecentMaintenance struct {
	ID           uint            `json:"id"`
	EngineID     uint            `json:"engine_id"`
	EngineSerial string          `json:"engine_serial"`
	Type         MaintenanceType `json:"maintenance_type"`
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	PerformedBy  *string         `json:"performed_by"`
}

type Dashboard struct {
	Summary           DashboardSummary    `json:"summary"`
	CriticalEngines   []CriticalEngine    `json:"critical_engines"`
	RecentAlerts      []AlertView         `json:"recent_alerts"`
	RecentMaintenance []RecentMaintenance `json:"recent_maintenance"`
}
