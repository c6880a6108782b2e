// Package fleet is the engine health core: engines, their cycle telemetry
// and its scoring, alerts, maintenance, dashboard and users.
package fleet

import (
	"context"
	"time"

	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/db"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
	"liyu1981.xyz/engine-maintenance-service/pkg/metrics"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

type IEngine interface {
	CreateEngine(input *models.Engine) (*models.Engine, error)
	GetEngine(engineID uint) (*models.Engine, error)
	ListEngines() ([]models.EngineSummary, error)
	ListEngineIDs() ([]uint, error)
	GetEngineDetail(engineID uint) (*models.EngineDetail, error)
	UpdateEngine(engineID uint, patch *models.EnginePatch) (*models.Engine, error)
	DeleteEngine(engineID uint) error
}

type ICycle interface {
	IngestCycle(ctx context.Context, engineID uint, input *models.CycleRecord) (*scoring.Outcome, error)
	ExtractWindow(tx *gorm.DB, engineID uint, features scoring.FeatureSet) ([][]float64, []models.CycleRecord, error)
	CountCycles(tx *gorm.DB, engineID uint) (int64, error)
	Rescore(ctx context.Context, engineID uint, dryRun bool) (*scoring.Outcome, error)
}

type IAlert interface {
	MaybeRaiseAlert(tx *gorm.DB, engine *models.Engine, probability float64, horizon int) (*models.Alert, error)
	GetEngineAlerts(engineID uint) ([]models.Alert, error)
	ListAlerts(resolved bool) ([]models.AlertView, error)
	UpdateAlert(alertID uint, patch *models.AlertPatch, userID uint) (*models.Alert, error)
	ResolveMaintenanceAlerts(tx *gorm.DB, engineID uint, userID uint, at time.Time) (int64, error)
}

type IMaintenance interface {
	AddMaintenance(input *models.MaintenanceRecord, userID uint) (*models.MaintenanceRecord, error)
	UpdateMaintenance(maintenanceID uint, patch *models.MaintenancePatch, userID uint) (*models.MaintenanceRecord, error)
	GetMaintenance(maintenanceID uint) (*models.MaintenanceRecord, error)
	ListMaintenance(filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error)
}

type IDashboard interface {
	GetDashboard() (*models.Dashboard, error)
}

type IUser interface {
	Register(username, email, password string, role models.Role) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
}

// Predictor is the inference boundary of scoring; *inference.Engine
// satisfies it.
type Predictor interface {
	Predict(ctx context.Context, window [][]float64) (float64, inference.ModelInfo, error)
	Info() (inference.ModelInfo, bool)
}

type Fleet struct {
	Db db.DB

	Inference  Predictor
	Policy     scoring.Policy
	Estimators *scoring.EstimatorRegistry
	// Features is used when the loaded model does not declare its own.
	Features scoring.FeatureSet
	Horizon  int

	Locks *EngineLocks
	Stats *metrics.ScoringStats

	Engine      IEngine
	Cycle       ICycle
	Alert       IAlert
	Maintenance IMaintenance
	Dashboard   IDashboard
	User        IUser
}

type Options struct {
	Inference  Predictor
	Policy     scoring.Policy
	Estimators *scoring.EstimatorRegistry
	Features   scoring.FeatureSet
	Horizon    int
	Stats      *metrics.ScoringStats
}

func OptionsFromConfig(cfg *common.Config, predictor Predictor) Options {
	return Options{
		Inference: predictor,
		Policy: scoring.Policy{
			AlertThreshold:     cfg.AlertThreshold,
			AttentionThreshold: cfg.AttentionThreshold,
			CriticalThreshold:  cfg.CriticalThreshold,
		},
		Estimators: scoring.NewEstimatorRegistry(scoring.LinearEstimator{
			Midpoint: cfg.RULMidpoint,
			Horizon:  cfg.RULHorizon,
		}),
		Features: scoring.FeatureSet{Names: cfg.Features, WindowSize: cfg.WindowSize},
		Horizon:  int(cfg.RULHorizon),
	}
}

// New builds a Fleet with all default services wired.
func New(database db.DB, opts Options) *Fleet {
	f := &Fleet{
		Db:         database,
		Inference:  opts.Inference,
		Policy:     opts.Policy,
		Estimators: opts.Estimators,
		Features:   opts.Features,
		Horizon:    opts.Horizon,
		Locks:      NewEngineLocks(),
		Stats:      opts.Stats,
	}
	if f.Estimators == nil {
		f.Estimators = scoring.NewEstimatorRegistry(scoring.LinearEstimator{
			Midpoint: common.DefaultRULMidpoint,
			Horizon:  common.DefaultRULHorizon,
		})
	}
	if f.Stats == nil {
		f.Stats = metrics.NewScoringStats(f.modelLoaded)
	}

	return f.WithServices(ServiceOpts{
		Engine:      f.GetIEngine(),
		Cycle:       f.GetICycle(),
		Alert:       f.GetIAlert(),
		Maintenance: f.GetIMaintenance(),
		Dashboard:   f.GetIDashboard(),
		User:        f.GetIUser(),
	})
}

func (f *Fleet) modelLoaded() bool {
	if f.Inference == nil {
		return false
	}
	_, ok := f.Inference.Info()
	return ok
}

type ServiceOpts struct {
	Engine      IEngine
	Cycle       ICycle
	Alert       IAlert
	Maintenance IMaintenance
	Dashboard   IDashboard
	User        IUser
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Engine != nil {
		f.Engine = opts.Engine
	}
	if opts.Cycle != nil {
		f.Cycle = opts.Cycle
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.Maintenance != nil {
		f.Maintenance = opts.Maintenance
	}
	if opts.Dashboard != nil {
		f.Dashboard = opts.Dashboard
	}
	if opts.User != nil {
		f.User = opts.User
	}
	return f
}
