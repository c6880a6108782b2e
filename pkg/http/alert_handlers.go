package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	dashboard, err := rs.Fleet.Dashboard.GetDashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	resolved, _ := strconv.ParseBool(c.DefaultQuery("resolved", "false"))

	alerts, err := rs.Fleet.Alert.ListAlerts(resolved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

type AlertUpdateRequest struct {
	IsRead   *bool `json:"is_read"`
	Resolved *bool `json:"resolved"`
}

func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var req AlertUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := rs.Fleet.Alert.UpdateAlert(uint(id), &models.AlertPatch{
		IsRead:   req.IsRead,
		Resolved: req.Resolved,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert updated successfully", "alert": alert})
}
