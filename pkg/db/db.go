package db

import (
	"fmt"
	"log"
	"os"
	"sync"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	constant "liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// open alerts are unique per engine and type; MySQL has no partial indexes
// and relies on the per-engine scoring lock instead
const openAlertIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_alerts_open_per_engine ON alerts (engine_id, type) WHERE resolved = false`

func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		if instance, err = Open(dialector); err != nil {
			log.Fatal("Failed to open database:", err)
		}
	})
	return instance
}

// Open connects and migrates a new DB handle. Most callers want the process
// wide GetInstance; tests use Open for isolation.
func Open(dialector gorm.Dialector) (*DB, error) {
	var logger = constant.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	db := &DB{Conn: conn}
	if err := db.Migrate(); err != nil {
		return nil, err
	}

	logger.Info("Database migration completed")

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
		}
	}

	return db, nil
}

func (d *DB) Migrate() error {
	err := d.Conn.AutoMigrate(
		&models.User{},
		&models.Engine{},
		&models.CycleRecord{},
		&models.Alert{},
		&models.MaintenanceRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	switch d.Conn.Dialector.Name() {
	case "sqlite", "postgres":
		if err := d.Conn.Exec(openAlertIndexSQL).Error; err != nil {
			return fmt.Errorf("failed to create open alert index: %w", err)
		}
	}
	return nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyDBPath); !found {
		dbPath = "engines.db"
	}
	return sqlite.Open(dbPath + "?_foreign_keys=on")
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared&_foreign_keys=on")
}

// UseIsolatedMemorySqliteDialector gives every caller its own in-memory
// database, which keeps aggregate queries in tests independent.
func UseIsolatedMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()))
}

// UseMysqlDialector normalises the DSN so time columns scan into time.Time.
func UseMysqlDialector(dsn string) (gorm.Dialector, error) {
	cfg, err := mysqlDriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return mysql.Open(cfg.FormatDSN()), nil
}

func UsePostgresDialector(dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, fmt.Errorf("invalid postgres dsn: empty")
	}
	return postgres.Open(dsn), nil
}

// UseDialector picks the dialector named by EMS_DB_TYPE.
func UseDialector(dbType string, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case "file":
		return UseSqliteDialector(), nil
	case "memory":
		return UseMemorySqliteDialector(), nil
	case "mysql":
		return UseMysqlDialector(dsn)
	case "postgres":
		return UsePostgresDialector(dsn)
	default:
		return nil, fmt.Errorf("unknown %s: %q", constant.EnvKeyDBType, dbType)
	}
}
