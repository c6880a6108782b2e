package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"
)

func seedScoredCycle(t *testing.T, f *Fleet, engineID uint, cycle int, p float64) {
	t.Helper()
	record := cycleInput(cycle)
	record.EngineID = engineID
	record.FailureProbability = common.Ptr(p)
	record.RUL = common.Ptr(f.Estimators.For("").EstimateRUL(p))
	require.NoError(t, f.Db.Conn.Create(record).Error)
}

func TestGetDashboard(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleet(t, nil)
	tech, err := f.User.Register("gina", "gina@example.com", "pw", models.RoleTechnician)
	require.NoError(t, err)

	critical := seedEngine(t, f)
	seedScoredCycle(t, f, critical.ID, 1, 0.6)
	seedScoredCycle(t, f, critical.ID, 2, 0.95)

	recovered := seedEngine(t, f)
	seedScoredCycle(t, f, recovered.ID, 1, 0.9)
	seedScoredCycle(t, f, recovered.ID, 2, 0.2)

	healthy := seedEngine(t, f)
	seedScoredCycle(t, f, healthy.ID, 1, 0.1)

	_, err = f.Alert.MaybeRaiseAlert(nil, critical, 0.95, 30)
	require.NoError(t, err)
	_, err = f.Maintenance.AddMaintenance(&models.MaintenanceRecord{
		EngineID:  healthy.ID,
		Type:      models.MaintenanceTypeScheduled,
		StartDate: time.Now(),
	}, tech.ID)
	require.NoError(t, err)

	dashboard, err := f.Dashboard.GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, models.DashboardSummary{
		TotalEngines:       3,
		ActiveEngines:      2,
		MaintenanceEngines: 1,
		AttentionNeeded:    2,
	}, dashboard.Summary)

	require.Len(t, dashboard.CriticalEngines, 1)
	c := dashboard.CriticalEngines[0]
	assert.Equal(t, critical.ID, c.ID)
	assert.Equal(t, critical.SerialNumber, c.SerialNumber)
	assert.Equal(t, 2, c.CurrentCycle)
	assert.InDelta(t, 0.95, c.FailureProbability, 1e-12)
	require.NotNil(t, c.RUL)
	assert.InDelta(t, 3.0, *c.RUL, 1e-9)

	require.Len(t, dashboard.RecentAlerts, 1)
	assert.Equal(t, critical.SerialNumber, dashboard.RecentAlerts[0].EngineSerial)

	require.Len(t, dashboard.RecentMaintenance, 1)
	m := dashboard.RecentMaintenance[0]
	assert.Equal(t, healthy.SerialNumber, m.EngineSerial)
	assert.Equal(t, models.MaintenanceTypeScheduled, m.Type)
	require.NotNil(t, m.PerformedBy)
	assert.Equal(t, "gina", *m.PerformedBy)
}

func TestGetDashboard_Empty(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleet(t, nil)
	dashboard, err := f.Dashboard.GetDashboard()
	require.NoError(t, err)

	assert.Zero(t, dashboard.Summary)
	assert.NotNil(t, dashboard.CriticalEngines)
	assert.NotNil(t, dashboard.RecentAlerts)
	assert.NotNil(t, dashboard.RecentMaintenance)
}
