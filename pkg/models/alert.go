package models

import "time"

type AlertType string

const (
	AlertTypeMaintenanceDue  AlertType = "maintenance_due"
	AlertTypeAnomalyDetected AlertType = "anomaly_detected"
	AlertTypeRULThreshold    AlertType = "rul_threshold"
)

type Alert struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EngineID   uint       `gorm:"index;not null" json:"engine_id"`
	Type       AlertType  `gorm:"type:varchar(50);check:type IN ('maintenance_due','anomaly_detected','rul_threshold')" json:"alert_type"`
	Message    string     `gorm:"type:text" json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
	IsRead     bool       `gorm:"not null;default:false" json:"is_read"`
	Resolved   bool       `gorm:"not null;default:false;index" json:"resolved"`
	ResolvedBy *uint      `json:"resolved_by"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

type AlertPatch struct {
	IsRead   *bool
	Resolved *bool
}

// AlertView is an alert joined with its engine serial and resolver name.
type AlertView struct {
	ID             uint       `json:"id"`
	EngineID       uint       `json:"engine_id"`
	EngineSerial   string     `json:"engine_serial"`
	Type           AlertType  `json:"alert_type"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	IsRead         bool       `json:"is_read"`
	Resolved       bool       `json:"resolved"`
	ResolvedByName *string    `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}
