package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/db"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
)

// loadConfig reads .env when present, then the process environment.
func loadConfig() (*common.Config, error) {
	logger := common.GetLoggerWith(common.LoggerNameCli)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file loaded, using process environment", zap.Error(err))
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openDB(cfg *common.Config) (*db.DB, error) {
	dialector, err := db.UseDialector(cfg.DBType, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	return db.Open(dialector)
}

// buildFleet wires the database, the model and the scoring policy.
func buildFleet(cfg *common.Config) (*fleet.Fleet, *inference.Engine, error) {
	database, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := inference.LoadEngine(cfg.ModelPath, cfg.InferenceTimeout)
	return fleet.New(*database, fleet.OptionsFromConfig(cfg, engine)), engine, nil
}
