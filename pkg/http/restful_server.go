package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/engine-maintenance-service/pkg/auth"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	Issuer           *auth.Issuer
	RateLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(engineID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(engineID)
	}
}

func (rs *RestfulServer) CheckEngineLimiter(engineID uint) bool {
	limiter := rs.GetLimiter(engineID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(engineID uint, engineRate float64, engineBurst int) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	rs.RateLimiterStore.SetLimiter(engineID, rate.Limit(engineRate), engineBurst)
	return true
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestID(), AccessLog())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", rs.GetMetrics)

	api := rs.Server.Group("/api")
	{
		api.POST("/register", rs.Register)
		api.POST("/login", rs.Login)
	}

	authed := api.Group("", RequireAuth(rs.Issuer))
	{
		authed.GET("/engines", rs.ListEngines)
		authed.POST("/engines", RequireRole(models.RoleAdmin, models.RoleEngineer), rs.CreateEngine)
		authed.GET("/dashboard", rs.GetDashboard)
		authed.GET("/alerts", rs.ListAlerts)
		authed.PUT("/alerts/:alert_id", rs.UpdateAlert)
		authed.GET("/maintenance", rs.ListMaintenance)
		authed.POST("/maintenance", rs.AddMaintenance)
		authed.GET("/maintenance/:maintenance_id", rs.GetMaintenance)
		authed.PUT("/maintenance/:maintenance_id", rs.UpdateMaintenance)
	}

	engines := authed.Group("/engines/:engine_id", EngineIDParam())
	{
		engines.GET("", rs.GetEngine)
		engines.PUT("", RequireRole(models.RoleAdmin, models.RoleEngineer), rs.UpdateEngine)
		engines.DELETE("", RequireRole(models.RoleAdmin), rs.DeleteEngine)
		engines.POST("/cycles", rs.PostCycle)
		engines.GET("/alerts", rs.GetEngineAlerts)
		engines.POST("/limiter", RequireRole(models.RoleAdmin, models.RoleEngineer), rs.PostLimiter)
		engines.POST("/rescore", RequireRole(models.RoleAdmin, models.RoleEngineer), rs.Rescore)
	}
}
