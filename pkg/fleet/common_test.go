package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/db"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet/mocks"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

var testModelInfo = inference.ModelInfo{
	Name:       "test",
	Version:    "test-1",
	WindowSize: 50,
	Features:   []string{"s2"},
	Horizon:    30,
}

func testOptions(predictor Predictor) Options {
	cfg := common.DefaultConfig()
	return OptionsFromConfig(cfg, predictor)
}

// GetTestFleet builds a fleet on its own in-memory database.
func GetTestFleet(t *testing.T, predictor Predictor) *Fleet {
	t.Helper()

	database, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	return New(*database, testOptions(predictor))
}

// GetMockPredictorFleet wires a mock predictor that reports testModelInfo
// as loaded. Predict expectations are left to the test.
func GetMockPredictorFleet(t *testing.T) (*gomock.Controller, *Fleet, *mocks.MockPredictor) {
	ctrl := gomock.NewController(t)
	predictor := mocks.NewMockPredictor(ctrl)
	predictor.EXPECT().Info().Return(testModelInfo, true).AnyTimes()

	return ctrl, GetTestFleet(t, predictor), predictor
}

func seedEngine(t *testing.T, f *Fleet) *models.Engine {
	t.Helper()
	engine, err := f.Engine.CreateEngine(&models.Engine{
		SerialNumber: "ESN-" + uuid.NewString()[:8],
		Model:        "CFM56-7B",
		AircraftID:   "N" + uuid.NewString()[:5],
	})
	require.NoError(t, err)
	return engine
}

func s2ForCycle(cycle int) float64 {
	return 600 + float64(cycle)
}

func cycleInput(cycle int) *models.CycleRecord {
	var values [models.SensorCount]float64
	for i := range values {
		values[i] = float64(i + 1)
	}
	values[1] = s2ForCycle(cycle)

	return &models.CycleRecord{
		Cycle:     cycle,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(cycle) * time.Hour),
		Settings:  models.Settings{Setting1: -0.0007, Setting2: -0.0004, Setting3: 100},
		Sensors:   models.SensorsFromValues(values),
	}
}

func ingestRange(t *testing.T, f *Fleet, engineID uint, from, to int) []*scoring.Outcome {
	t.Helper()
	outcomes := make([]*scoring.Outcome, 0, to-from+1)
	for c := from; c <= to; c++ {
		outcome, err := f.Cycle.IngestCycle(t.Context(), engineID, cycleInput(c))
		require.NoError(t, err, "cycle %d", c)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func openMaintenanceAlerts(t *testing.T, f *Fleet, engineID uint) []models.Alert {
	t.Helper()
	var alerts []models.Alert
	err := f.Db.Conn.
		Where("engine_id = ? AND type = ? AND resolved = ?", engineID, models.AlertTypeMaintenanceDue, false).
		Find(&alerts).Error
	require.NoError(t, err)
	return alerts
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
