package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

func RescoreCmd() *cobra.Command {
	var engineID uint
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Score engines again with the current model",
		Long: `Score the latest window of one engine, or of every engine when
--engine is not given. With --dry-run nothing is written and no alert
is raised.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := common.GetLoggerWith(
				common.LoggerNameCli,
				zap.String(common.LoggerFieldCategory, common.LoggerCategoryRescoreCommand),
			)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f, engine, err := buildFleet(cfg)
			if err != nil {
				return err
			}
			if !engine.Loaded() {
				fmt.Printf("%s no model loaded from %s, every engine will be skipped\n",
					color.New(color.FgYellow).Sprint("WARN"), cfg.ModelPath)
			}

			ids := []uint{engineID}
			if engineID == 0 {
				if ids, err = f.Engine.ListEngineIDs(); err != nil {
					return err
				}
			}

			failed := 0
			for _, id := range ids {
				outcome, err := f.Cycle.Rescore(cmd.Context(), id, dryRun)
				if err != nil {
					failed++
					logger.Warn("Rescore failed", zap.Uint("engine_id", id), zap.Error(err))
					fmt.Printf("  engine %-6d %s %v\n", id, color.New(color.FgRed).Sprint("ERROR  "), err)
					continue
				}
				fmt.Printf("  engine %-6d %s %s\n", id, stateLabel(outcome), describe(outcome))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d engines failed to rescore", failed, len(ids))
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&engineID, "engine", 0, "engine id to rescore (default all engines)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute without persisting predictions or alerts")

	return cmd
}

func stateLabel(o *scoring.Outcome) string {
	switch o.State {
	case scoring.StatePersisted:
		if o.Alert != nil {
			return color.New(color.FgHiMagenta).Sprint("ALERT  ")
		}
		return color.New(color.FgGreen).Sprint("SCORED ")
	case scoring.StatePredictionSkipped:
		return color.New(color.FgYellow).Sprint("SKIPPED")
	default:
		return color.New(color.FgBlue).Sprint("WAITING")
	}
}

func describe(o *scoring.Outcome) string {
	switch o.State {
	case scoring.StateInsufficientHistory:
		return fmt.Sprintf("needs %d more cycles", o.CyclesNeeded)
	case scoring.StatePredictionSkipped:
		return o.SkipReason
	}
	s := fmt.Sprintf("cycle %d model %s", o.ScoredCycle, o.ModelVersion)
	if o.FailureProbability != nil {
		s += fmt.Sprintf(" p=%.3f", *o.FailureProbability)
	}
	if o.RUL != nil {
		s += fmt.Sprintf(" rul=%.1f", *o.RUL)
	}
	return s
}
