package http

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/engine-maintenance-service/pkg/auth"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxKeyRequestID = "request_id"
	ctxKeyClaims    = "claims"
	ctxKeyEngineID  = "engine_id"
)

// RequestID keeps an incoming X-Request-ID or stamps a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := common.GetLoggerWith(
			common.LoggerNameRestfulServer,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest),
		)
		logger.Info("Request served",
			zap.String("request_id", c.GetString(ctxKeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// RequireAuth verifies the bearer token and stores its claims on the context.
func RequireAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if issuer == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication is not configured"})
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil || !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized. Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// EngineIDParam parses :engine_id once for the whole route group.
func EngineIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		engineID, ok := fleet.ParseEngineID(c.Param("engine_id"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid engine id"})
			return
		}
		c.Set(ctxKeyEngineID, engineID)
		c.Next()
	}
}

func currentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ctxKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func currentUserID(c *gin.Context) uint {
	if claims := currentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

func engineIDOf(c *gin.Context) uint {
	return c.GetUint(ctxKeyEngineID)
}
