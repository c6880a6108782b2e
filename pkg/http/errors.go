package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
)

var errNoIssuer = errors.New("token issuer is not configured")

func statusOf(err error) int {
	switch {
	case errors.Is(err, fleet.ErrEngineNotFound), errors.Is(err, fleet.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fleet.ErrDuplicateCycle),
		errors.Is(err, fleet.ErrSerialExists),
		errors.Is(err, fleet.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, fleet.ErrInvalidCycle),
		errors.Is(err, fleet.ErrInvalidStatus),
		errors.Is(err, fleet.ErrInvalidMaintenance),
		errors.Is(err, fleet.ErrInvalidRole),
		errors.Is(err, fleet.ErrInsufficientData):
		return http.StatusBadRequest
	case errors.Is(err, fleet.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Unexpected errors are
// logged and their detail stays out of the response.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest),
	)
	logger.Error("Request failed",
		zap.String("request_id", c.GetString(ctxKeyRequestID)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"error": "internal server error", "request_id": c.GetString(ctxKeyRequestID)})
}
