package fleet

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

// maybeRaiseAlert creates a maintenance_due alert when probability is over
// the policy threshold and the engine has no open one. The partial unique
// index on open alerts backs the check where the database supports it.
func (f *Fleet) maybeRaiseAlert(tx *gorm.DB, engine *models.Engine, probability float64, horizon int) (*models.Alert, error) {
	if !f.Policy.ShouldAlert(probability) {
		return nil, nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	conn := f.conn(tx)

	var open int64
	err := conn.Model(&models.Alert{}).
		Where("engine_id = ? AND type = ? AND resolved = ?", engine.ID, models.AlertTypeMaintenanceDue, false).
		Count(&open).Error
	if err != nil {
		return nil, err
	}
	if open > 0 {
		logger.Info("Alert already open", zap.Uint("engine_id", engine.ID), zap.Float64("failure_probability", probability))
		return nil, nil
	}

	alert := models.Alert{
		EngineID: engine.ID,
		Type:     models.AlertTypeMaintenanceDue,
		Message:  scoring.AlertMessage(engine.SerialNumber, probability, horizon),
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	// savepoint, so a unique violation does not abort the outer transaction
	err = conn.Transaction(func(sp *gorm.DB) error {
		return sp.Create(&alert).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Info("Alert already open", zap.Uint("engine_id", engine.ID), zap.Float64("failure_probability", probability))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return &alert, nil
}

func (f *Fleet) getEngineAlerts(engineID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := f.Db.Conn.
		Where("engine_id = ?", engineID).
		Order("created_at desc, id desc").
		Find(&alerts).Error
	return alerts, err
}

const alertViewColumns = `a.id, a.engine_id, e.serial_number AS engine_serial, a.type, a.message,
	a.created_at, a.is_read, a.resolved, u.username AS resolved_by_name, a.resolved_at`

func (f *Fleet) alertViews(resolved bool, limit int) ([]models.AlertView, error) {
	query := f.Db.Conn.Table("alerts AS a").
		Select(alertViewColumns).
		Joins("JOIN engines AS e ON e.id = a.engine_id").
		Joins("LEFT JOIN users AS u ON u.id = a.resolved_by").
		Where("a.resolved = ?", resolved).
		Order("a.created_at desc, a.id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	views := []models.AlertView{}
	err := query.Scan(&views).Error
	return views, err
}

func (f *Fleet) listAlerts(resolved bool) ([]models.AlertView, error) {
	return f.alertViews(resolved, 0)
}

// updateAlert marks an alert read and/or resolved. Resolution is one way.
func (f *Fleet) updateAlert(alertID uint, patch *models.AlertPatch, userID uint) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	var alert models.Alert
	if err := f.Db.Conn.First(&alert, alertID).Error; err != nil {
		return nil, notFound(err, ErrNotFound)
	}

	if patch.IsRead != nil {
		alert.IsRead = *patch.IsRead
	}
	if patch.Resolved != nil && *patch.Resolved && !alert.Resolved {
		now := time.Now().UTC()
		alert.Resolved = true
		alert.ResolvedBy = &userID
		alert.ResolvedAt = &now
	}

	if err := f.Db.Conn.Save(&alert).Error; err != nil {
		return nil, persistence("update alert", err)
	}

	logger.Info("Alert updated", zap.Reflect("alert", alert))
	return &alert, nil
}

func (f *Fleet) resolveMaintenanceAlerts(tx *gorm.DB, engineID uint, userID uint, at time.Time) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	updates := map[string]any{
		"resolved":    true,
		"resolved_at": at,
	}
	if userID != 0 {
		updates["resolved_by"] = userID
	}

	result := f.conn(tx).Model(&models.Alert{}).
		Where("engine_id = ? AND type = ? AND resolved = ?", engineID, models.AlertTypeMaintenanceDue, false).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		logger.Info("Maintenance alerts resolved",
			zap.Uint("engine_id", engineID),
			zap.Int64("count", result.RowsAffected),
		)
	}
	return result.RowsAffected, nil
}

type IAlertImpl struct {
	fleet *Fleet
}

func (ia *IAlertImpl) MaybeRaiseAlert(tx *gorm.DB, engine *models.Engine, probability float64, horizon int) (*models.Alert, error) {
	return ia.fleet.maybeRaiseAlert(tx, engine, probability, horizon)
}

func (ia *IAlertImpl) GetEngineAlerts(engineID uint) ([]models.Alert, error) {
	return ia.fleet.getEngineAlerts(engineID)
}

func (ia *IAlertImpl) ListAlerts(resolved bool) ([]models.AlertView, error) {
	return ia.fleet.listAlerts(resolved)
}

func (ia *IAlertImpl) UpdateAlert(alertID uint, patch *models.AlertPatch, userID uint) (*models.Alert, error) {
	return ia.fleet.updateAlert(alertID, patch, userID)
}

func (ia *IAlertImpl) ResolveMaintenanceAlerts(tx *gorm.DB, engineID uint, userID uint, at time.Time) (int64, error) {
	return ia.fleet.resolveMaintenanceAlerts(tx, engineID, userID, at)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
