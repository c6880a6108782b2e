package scoring

import (
	"fmt"

	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

type State string

const (
	StateInsufficientHistory State = "insufficient_history"
	StatePredictionSkipped   State = "prediction_skipped"
	StatePersisted           State = "persisted"
)

// reasons a prediction was skipped
const (
	SkipModelUnavailable = "model_unavailable"
	SkipInferenceError   = "inference_error"
	SkipTimeout          = "timeout"
	SkipCancelled        = "cancelled"
	SkipInsufficientData = "insufficient_data"
)

// Outcome is how one scoring run ended.
type Outcome struct {
	State State `json:"state"`
	// Cycle is the record ingested by this run, nil for a rescore.
	Cycle *models.CycleRecord `json:"cycle,omitempty"`

	// CyclesNeeded is set for StateInsufficientHistory.
	CyclesNeeded int `json:"cycles_needed,omitempty"`

	SkipReason string `json:"skip_reason,omitempty"`

	ScoredCycle        int           `json:"scored_cycle,omitempty"`
	ModelVersion       string        `json:"model_version,omitempty"`
	FailureProbability *float64      `json:"failure_probability,omitempty"`
	RUL                *float64      `json:"rul,omitempty"`
	Alert              *models.Alert `json:"alert,omitempty"`
}

func (o *Outcome) Message() string {
	switch o.State {
	case StateInsufficientHistory:
		return fmt.Sprintf("Cycle data added. Need %d more cycles for predictions", o.CyclesNeeded)
	case StatePredictionSkipped:
		return fmt.Sprintf("Cycle data added. Prediction skipped: %s", o.SkipReason)
	default:
		return "Cycle data added and predictions updated"
	}
}
