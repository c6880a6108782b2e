package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type MaintenanceRequest struct {
	EngineID      int      `json:"engine_id" zog:"engine_id"`
	Type          string   `json:"maintenance_type" zog:"maintenance_type"`
	Description   string   `json:"description"`
	StartDate     string   `json:"start_date" zog:"start_date"`
	EndDate       string   `json:"end_date" zog:"end_date"`
	PartsReplaced []string `json:"parts_replaced" zog:"parts_replaced"`
	Notes         string   `json:"notes"`
}

var maintenanceRequestSchema = z.Struct(z.Shape{
	"EngineID":      z.Int().GT(0).Required(),
	"Type":          z.String().Min(1).Required(),
	"Description":   z.String().Required(),
	"StartDate":     z.String().Min(1).Required(),
	"EndDate":       z.String(),
	"PartsReplaced": z.Slice(z.String()),
	"Notes":         z.String(),
})

func partsJSON(parts []string) (datatypes.JSON, error) {
	if parts == nil {
		return nil, nil
	}
	b, err := json.Marshal(parts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func (rs *RestfulServer) AddMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := maintenanceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	parts, err := partsJSON(req.PartsReplaced)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := rs.Fleet.Maintenance.AddMaintenance(&models.MaintenanceRecord{
		EngineID:      uint(req.EngineID),
		Type:          models.MaintenanceType(req.Type),
		Description:   req.Description,
		StartDate:     *start,
		EndDate:       end,
		PartsReplaced: parts,
		Notes:         req.Notes,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Maintenance record added successfully", "maintenance": record})
}

func maintenanceIDOf(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("maintenance_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maintenance id"})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) GetMaintenance(c *gin.Context) {
	id, ok := maintenanceIDOf(c)
	if !ok {
		return
	}

	record, err := rs.Fleet.Maintenance.GetMaintenance(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListMaintenance accepts optional engine_id and type filters.
func (rs *RestfulServer) ListMaintenance(c *gin.Context) {
	filter := models.MaintenanceFilter{Type: models.MaintenanceType(c.Query("type"))}
	if raw := c.Query("engine_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid engine_id"})
			return
		}
		filter.EngineID = uint(id)
	}

	records, err := rs.Fleet.Maintenance.ListMaintenance(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type MaintenanceUpdateRequest struct {
	Type          *string  `json:"maintenance_type"`
	Description   *string  `json:"description"`
	EndDate       *string  `json:"end_date"`
	Notes         *string  `json:"notes"`
	PartsReplaced []string `json:"parts_replaced"`
}

func (rs *RestfulServer) UpdateMaintenance(c *gin.Context) {
	id, ok := maintenanceIDOf(c)
	if !ok {
		return
	}

	var req MaintenanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := &models.MaintenancePatch{
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Type != nil {
		t := models.MaintenanceType(*req.Type)
		patch.Type = &t
	}
	if req.EndDate != nil {
		end, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.EndDate = end
	}
	parts, err := partsJSON(req.PartsReplaced)
	if err != nil {
		respondError(c, err)
		return
	}
	patch.PartsReplaced = parts

	record, err := rs.Fleet.Maintenance.UpdateMaintenance(id, patch, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record updated successfully", "maintenance": record})
}
