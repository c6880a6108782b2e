package scoring

import "fmt"

// Policy is the set of probability thresholds acted upon.
type Policy struct {
	// AlertThreshold: a maintenance_due alert is raised above it.
	AlertThreshold float64
	// AttentionThreshold: engines with any cycle above it need attention.
	AttentionThreshold float64
	// CriticalThreshold: engines whose latest cycle is above it are critical.
	CriticalThreshold float64
}

func (p Policy) ShouldAlert(probability float64) bool {
	return probability > p.AlertThreshold
}

func (p Policy) MaintenanceDue(probability *float64) bool {
	return probability != nil && p.ShouldAlert(*probability)
}

func AlertMessage(serialNumber string, probability float64, horizon int) string {
	return fmt.Sprintf(
		"Engine %s has a %.1f%% probability of failure within %d cycles. Maintenance recommended.",
		serialNumber, probability*100, horizon,
	)
}
