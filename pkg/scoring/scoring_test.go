package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

var defaultEstimator = LinearEstimator{Midpoint: 0.5, Horizon: 30}

func TestLinearEstimator_KnownPoints(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 30},
		{0.3, 30},
		{0.5, 30},
		{0.75, 15},
		{0.9, 6},
		{1.0, 0},
		{1.2, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, defaultEstimator.EstimateRUL(c.p), 1e-9, "p=%v", c.p)
	}
}

func TestLinearEstimator_MatchesOriginalFormulaAboveMidpoint(t *testing.T) {
	for i := 501; i <= 1000; i++ {
		p := float64(i) / 1000
		want := max(0, 30*(2-2*p))
		assert.InDelta(t, want, defaultEstimator.EstimateRUL(p), 1e-9, "p=%v", p)
	}
}

func TestLinearEstimator_Properties(t *testing.T) {
	prev := defaultEstimator.EstimateRUL(0.5)
	for i := 0; i <= 1500; i++ {
		p := float64(i) / 1000
		rul := defaultEstimator.EstimateRUL(p)

		assert.GreaterOrEqual(t, rul, 0.0, "never negative at p=%v", p)
		if p <= 0.5 {
			assert.Equal(t, 30.0, rul, "flat below midpoint at p=%v", p)
			continue
		}
		assert.LessOrEqual(t, rul, prev, "non-increasing at p=%v", p)
		// continuity: a 0.001 step moves the estimate by at most 0.06 cycles
		assert.LessOrEqual(t, prev-rul, 0.06+1e-9, "continuous at p=%v", p)
		prev = rul
	}
}

func TestEstimatorRegistry(t *testing.T) {
	reg := NewEstimatorRegistry(defaultEstimator)
	steep := LinearEstimator{Midpoint: 0.2, Horizon: 100}
	reg.Register("2.0.0", steep)

	assert.Equal(t, steep, reg.For("2.0.0"))
	assert.Equal(t, defaultEstimator, reg.For("1.0.0"))
	assert.Equal(t, defaultEstimator, reg.For(""))
}

func TestPolicy(t *testing.T) {
	p := Policy{AlertThreshold: 0.7, AttentionThreshold: 0.5, CriticalThreshold: 0.8}

	assert.False(t, p.ShouldAlert(0.7))
	assert.True(t, p.ShouldAlert(0.7000001))
	assert.False(t, p.MaintenanceDue(nil))
	v := 0.9
	assert.True(t, p.MaintenanceDue(&v))

	assert.Equal(t,
		"Engine ESN-1 has a 90.0% probability of failure within 30 cycles. Maintenance recommended.",
		AlertMessage("ESN-1", 0.9, 30),
	)
}

func TestFeatureSet(t *testing.T) {
	records := make([]models.CycleRecord, 3)
	for i := range records {
		records[i] = models.CycleRecord{
			Cycle:    i + 1,
			Settings: models.Settings{Setting1: float64(i)},
			Sensors:  models.Sensors{S2: 640 + float64(i), S3: 1500},
		}
	}

	fs := FeatureSet{Names: []string{"s2", "setting1"}, WindowSize: 3}
	require.NoError(t, fs.Validate())

	window, err := fs.ProjectWindow(records)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{640, 0}, {641, 1}, {642, 2}}, window)

	assert.Error(t, FeatureSet{Names: []string{"s2"}, WindowSize: 0}.Validate())
	assert.Error(t, FeatureSet{WindowSize: 50}.Validate())
	assert.ErrorContains(t, FeatureSet{Names: []string{"s99"}, WindowSize: 50}.Validate(), "s99")

	_, err = FeatureSet{Names: []string{"temperature"}, WindowSize: 1}.Project(&records[0])
	assert.Error(t, err)
}

func TestFeatureSetResolve(t *testing.T) {
	fallback := FeatureSet{Names: []string{"s2"}, WindowSize: 50}

	assert.Equal(t, fallback, fallback.Resolve(nil, 0))
	assert.Equal(t,
		FeatureSet{Names: []string{"s3", "s4"}, WindowSize: 30},
		fallback.Resolve([]string{"s3", "s4"}, 30),
	)
	assert.Equal(t, FeatureSet{Names: []string{"s2"}, WindowSize: 20}, fallback.Resolve(nil, 20))
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Cycle data added. Need 7 more cycles for predictions",
		(&Outcome{State: StateInsufficientHistory, CyclesNeeded: 7}).Message())
	assert.Equal(t, "Cycle data added. Prediction skipped: timeout",
		(&Outcome{State: StatePredictionSkipped, SkipReason: SkipTimeout}).Message())
	assert.Equal(t, "Cycle data added and predictions updated",
		(&Outcome{State: StatePersisted}).Message())
}
