package fleet

import (
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

const (
	dashboardCriticalLimit    = 5
	dashboardAlertLimit       = 10
	dashboardMaintenanceLimit = 5
)

func (f *Fleet) getDashboard() (*models.Dashboard, error) {
	conn := f.Db.Conn
	dashboard := &models.Dashboard{}

	summary := &dashboard.Summary
	if err := conn.Model(&models.Engine{}).Count(&summary.TotalEngines).Error; err != nil {
		return nil, err
	}
	err := conn.Model(&models.Engine{}).Where("status = ?", models.EngineStatusActive).Count(&summary.ActiveEngines).Error
	if err != nil {
		return nil, err
	}
	err = conn.Model(&models.Engine{}).Where("status = ?", models.EngineStatusMaintenance).Count(&summary.MaintenanceEngines).Error
	if err != nil {
		return nil, err
	}
	err = conn.Model(&models.CycleRecord{}).
		Where("failure_probability > ?", f.Policy.AttentionThreshold).
		Distinct("engine_id").
		Count(&summary.AttentionNeeded).Error
	if err != nil {
		return nil, err
	}

	latest := conn.Model(&models.CycleRecord{}).
		Select("engine_id, MAX(cycle) AS max_cycle").
		Group("engine_id")

	dashboard.CriticalEngines = []models.CriticalEngine{}
	err = conn.Table("engines AS e").
		Select("e.id, e.serial_number, e.aircraft_id, c.failure_probability, c.cycle AS current_cycle, c.rul").
		Joins("JOIN (?) AS l ON l.engine_id = e.id", latest).
		Joins("JOIN cycle_records AS c ON c.engine_id = l.engine_id AND c.cycle = l.max_cycle").
		Where("c.failure_probability > ?", f.Policy.CriticalThreshold).
		Order("c.failure_probability desc").
		Limit(dashboardCriticalLimit).
		Scan(&dashboard.CriticalEngines).Error
	if err != nil {
		return nil, err
	}

	if dashboard.RecentAlerts, err = f.alertViews(false, dashboardAlertLimit); err != nil {
		return nil, err
	}

	dashboard.RecentMaintenance = []models.RecentMaintenance{}
	err = conn.Table("maintenance_records AS m").
		Select(`m.id, m.engine_id, e.serial_number AS engine_serial, m.maintenance_type AS type,
			m.description, m.start_date, m.end_date, u.username AS performed_by`).
		Joins("JOIN engines AS e ON e.id = m.engine_id").
		Joins("LEFT JOIN users AS u ON u.id = m.performed_by").
		Order("m.start_date desc, m.id desc").
		Limit(dashboardMaintenanceLimit).
		Scan(&dashboard.RecentMaintenance).Error
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

type IDashboardImpl struct {
	fleet *Fleet
}

func (id *IDashboardImpl) GetDashboard() (*models.Dashboard, error) {
	return id.fleet.getDashboard()
}

func (f *Fleet) GetIDashboard() IDashboard {
	return &IDashboardImpl{fleet: f}
}
