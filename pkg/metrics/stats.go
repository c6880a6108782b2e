// Package metrics keeps scoring counters and renders them in the
// Prometheus text exposition format.
package metrics

import (
	"io"
	"sort"
	"sync"
	"sync/atomic"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

const (
	NameCyclesIngested  = "engine_cycles_ingested_total"
	NameScoringOutcomes = "engine_scoring_outcomes_total"
	NamePredictionSkips = "engine_prediction_skips_total"
	NameAlertsRaised    = "engine_alerts_raised_total"
	NameModelLoaded     = "engine_model_loaded"
)

type ScoringStats struct {
	cyclesIngested atomic.Uint64
	alertsRaised   atomic.Uint64

	mu       sync.Mutex
	outcomes map[string]uint64
	skips    map[string]uint64

	modelLoaded func() bool
}

// NewScoringStats takes a probe reporting whether a model is loaded; nil
// reports 0.
func NewScoringStats(modelLoaded func() bool) *ScoringStats {
	return &ScoringStats{
		outcomes:    make(map[string]uint64),
		skips:       make(map[string]uint64),
		modelLoaded: modelLoaded,
	}
}

func (s *ScoringStats) CycleIngested() {
	s.cyclesIngested.Add(1)
}

func (s *ScoringStats) Observe(o *scoring.Outcome) {
	if o == nil {
		return
	}
	if o.Alert != nil {
		s.alertsRaised.Add(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[string(o.State)]++
	if o.State == scoring.StatePredictionSkipped {
		s.skips[o.SkipReason]++
	}
}

func counter(name, help string, v uint64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{
			{Counter: &dto.Counter{Value: proto.Float64(float64(v))}},
		},
	}
}

func labeledCounter(name, help, label string, values map[string]uint64) *dto.MetricFamily {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mf := &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, k := range keys {
		mf.Metric = append(mf.Metric, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: proto.String(label), Value: proto.String(k)}},
			Counter: &dto.Counter{Value: proto.Float64(float64(values[k]))},
		})
	}
	return mf
}

// Gather snapshots all families, sorted by name.
func (s *ScoringStats) Gather() []*dto.MetricFamily {
	loaded := 0.0
	if s.modelLoaded != nil && s.modelLoaded() {
		loaded = 1
	}

	s.mu.Lock()
	families := []*dto.MetricFamily{
		labeledCounter(NameScoringOutcomes, "Scoring runs by terminal state.", "state", s.outcomes),
		labeledCounter(NamePredictionSkips, "Skipped predictions by reason.", "reason", s.skips),
	}
	s.mu.Unlock()

	families = append(families,
		counter(NameCyclesIngested, "Cycle records accepted.", s.cyclesIngested.Load()),
		counter(NameAlertsRaised, "maintenance_due alerts raised by scoring.", s.alertsRaised.Load()),
		&dto.MetricFamily{
			Name: proto.String(NameModelLoaded),
			Help: proto.String("1 when an inference model is loaded."),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{
				{Gauge: &dto.Gauge{Value: proto.Float64(loaded)}},
			},
		},
	)

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	return families
}

var TextFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

func (s *ScoringStats) WriteText(w io.Writer) error {
	enc := expfmt.NewEncoder(w, TextFormat)
	for _, mf := range s.Gather() {
		// families without samples are not valid exposition
		if len(mf.Metric) == 0 {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
