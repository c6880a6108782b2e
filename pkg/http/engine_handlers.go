package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts RFC 3339 timestamps and plain ISO dates; "" is nil.
func parseDate(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date format for %s, use ISO format (YYYY-MM-DD)", field)
}

type EngineRequest struct {
	SerialNumber     string `json:"serial_number" zog:"serial_number"`
	Model            string `json:"model"`
	AircraftID       string `json:"aircraft_id" zog:"aircraft_id"`
	InstallationDate string `json:"installation_date" zog:"installation_date"`
	Status           string `json:"status"`
}

var engineRequestSchema = z.Struct(z.Shape{
	"SerialNumber":     z.String().Min(1).Max(50).Required(),
	"Model":            z.String().Max(50),
	"AircraftID":       z.String().Max(50),
	"InstallationDate": z.String(),
	"Status":           z.String(),
})

func (rs *RestfulServer) CreateEngine(c *gin.Context) {
	var req EngineRequest
	if err := engineRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	installed, err := parseDate("installation_date", req.InstallationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine, err := rs.Fleet.Engine.CreateEngine(&models.Engine{
		SerialNumber:     req.SerialNumber,
		Model:            req.Model,
		AircraftID:       req.AircraftID,
		InstallationDate: installed,
		Status:           models.EngineStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Engine added successfully", "engine": engine})
}

func (rs *RestfulServer) ListEngines(c *gin.Context) {
	engines, err := rs.Fleet.Engine.ListEngines()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engines)
}

func (rs *RestfulServer) GetEngine(c *gin.Context) {
	detail, err := rs.Fleet.Engine.GetEngineDetail(engineIDOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// EngineUpdateRequest only touches the fields present in the body.
type EngineUpdateRequest struct {
	Model            *string `json:"model"`
	AircraftID       *string `json:"aircraft_id"`
	Status           *string `json:"status"`
	InstallationDate *string `json:"installation_date"`
}

func (rs *RestfulServer) UpdateEngine(c *gin.Context) {
	var req EngineUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := &models.EnginePatch{
		Model:      req.Model,
		AircraftID: req.AircraftID,
	}
	if req.Status != nil {
		status := models.EngineStatus(*req.Status)
		patch.Status = &status
	}
	if req.InstallationDate != nil {
		installed, err := parseDate("installation_date", *req.InstallationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.InstallationDate = installed
	}

	engine, err := rs.Fleet.Engine.UpdateEngine(engineIDOf(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Engine updated successfully", "engine": engine})
}

func (rs *RestfulServer) DeleteEngine(c *gin.Context) {
	if err := rs.Fleet.Engine.DeleteEngine(engineIDOf(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Engine and all associated data deleted successfully"})
}
