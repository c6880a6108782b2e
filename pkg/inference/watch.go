package inference

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
)

// Watch reloads the engine whenever the artifact at path is written or
// replaced, until ctx is done. The parent directory is watched so atomic
// renames are seen. onReload, if set, observes every reload attempt.
func Watch(ctx context.Context, path string, engine *Engine, onReload func(error)) error {
	logger := common.GetLoggerWith(
		common.LoggerNameInference,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryModel),
	)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create model watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			err := engine.Reload(target)
			if err != nil {
				logger.Warn("Model reload failed, keeping previous model", zap.String("path", target), zap.Error(err))
			}
			if onReload != nil {
				onReload(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Model watcher error", zap.Error(err))
		}
	}
}
