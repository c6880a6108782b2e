package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/engine-maintenance-service/pkg/metrics"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// CycleRequest is one cycle of engine telemetry: the three operational
// settings and all 21 sensor channels are required.
type CycleRequest struct {
	Cycle     int       `json:"cycle"`
	Timestamp time.Time `json:"timestamp"`

	Setting1 float64 `json:"setting1"`
	Setting2 float64 `json:"setting2"`
	Setting3 float64 `json:"setting3"`

	S1  float64 `json:"s1"`
	S2  float64 `json:"s2"`
	S3  float64 `json:"s3"`
	S4  float64 `json:"s4"`
	S5  float64 `json:"s5"`
	S6  float64 `json:"s6"`
	S7  float64 `json:"s7"`
	S8  float64 `json:"s8"`
	S9  float64 `json:"s9"`
	S10 float64 `json:"s10"`
	S11 float64 `json:"s11"`
	S12 float64 `json:"s12"`
	S13 float64 `json:"s13"`
	S14 float64 `json:"s14"`
	S15 float64 `json:"s15"`
	S16 float64 `json:"s16"`
	S17 float64 `json:"s17"`
	S18 float64 `json:"s18"`
	S19 float64 `json:"s19"`
	S20 float64 `json:"s20"`
	S21 float64 `json:"s21"`
}

var cycleRequestSchema = z.Struct(cycleRequestShape())

func cycleRequestShape() z.Shape {
	shape := z.Shape{
		"Cycle":     z.Int().GT(0).Required(),
		"Timestamp": z.Time(),
		"Setting1":  z.Float64().Required(),
		"Setting2":  z.Float64().Required(),
		"Setting3":  z.Float64().Required(),
	}
	for i := 1; i <= models.SensorCount; i++ {
		shape[fmt.Sprintf("S%d", i)] = z.Float64().Required()
	}
	return shape
}

func (r *CycleRequest) Record() *models.CycleRecord {
	return &models.CycleRecord{
		Cycle:     r.Cycle,
		Timestamp: r.Timestamp,
		Settings: models.Settings{
			Setting1: r.Setting1,
			Setting2: r.Setting2,
			Setting3: r.Setting3,
		},
		Sensors: models.Sensors{
			S1: r.S1, S2: r.S2, S3: r.S3, S4: r.S4, S5: r.S5, S6: r.S6, S7: r.S7,
			S8: r.S8, S9: r.S9, S10: r.S10, S11: r.S11, S12: r.S12, S13: r.S13, S14: r.S14,
			S15: r.S15, S16: r.S16, S17: r.S17, S18: r.S18, S19: r.S19, S20: r.S20, S21: r.S21,
		},
	}
}

func (rs *RestfulServer) PostCycle(c *gin.Context) {
	engineID := engineIDOf(c)

	if !rs.CheckEngineLimiter(engineID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	var req CycleRequest
	if err := cycleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	outcome, err := rs.Fleet.Cycle.IngestCycle(c.Request.Context(), engineID, req.Record())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": outcome.Message(),
		"cycle":   outcome.Cycle,
		"outcome": outcome,
	})
}

func (rs *RestfulServer) GetEngineAlerts(c *gin.Context) {
	engineID := engineIDOf(c)

	if !rs.CheckEngineLimiter(engineID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	if _, err := rs.Fleet.Engine.GetEngine(engineID); err != nil {
		respondError(c, err)
		return
	}

	alerts, err := rs.Fleet.Alert.GetEngineAlerts(engineID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().GT(0).Required(),
	"Burst": z.Int().GT(0).Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	engineID := engineIDOf(c)

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.SetLimiter(engineID, req.Rate, req.Burst) {
		c.JSON(http.StatusOK, gin.H{"message": "Rate limiting is not enabled. No effect."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Limiter updated"})
}

// Rescore re-runs scoring on the newest cycle; ?dry_run=true reports the
// outcome without writing it.
func (rs *RestfulServer) Rescore(c *gin.Context) {
	engineID := engineIDOf(c)

	dryRun, _ := strconv.ParseBool(c.DefaultQuery("dry_run", "false"))
	outcome, err := rs.Fleet.Cycle.Rescore(c.Request.Context(), engineID, dryRun)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dry_run": dryRun, "outcome": outcome})
}

func (rs *RestfulServer) GetMetrics(c *gin.Context) {
	c.Header("Content-Type", string(metrics.TextFormat))
	c.Status(http.StatusOK)
	if err := rs.Fleet.Stats.WriteText(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	loaded := false
	if rs.Fleet.Inference != nil {
		_, loaded = rs.Fleet.Inference.Info()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model_loaded": loaded})
}
