package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/db"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	emsHttp "liyu1981.xyz/engine-maintenance-service/pkg/http"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"
)

func TestNewIssuer_EmptySecret(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.DebugLevel)
	defer common.SetTestLoggerNop()

	cfg := common.DefaultConfig()
	cfg.JWTSecret = ""

	issuer, err := newIssuer(cfg)
	require.NoError(t, err)
	assert.Nil(t, issuer)
	assert.Contains(t, buf.String(), "EMS_JWT_SECRET is not set")

	database, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	rs := &emsHttp.RestfulServer{
		Server: gin.New(),
		Fleet:  fleet.New(*database, fleet.OptionsFromConfig(cfg, nil)),
		Issuer: issuer,
	}
	rs.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/engines", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/healthz", nil)
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewIssuer_WithSecret(t *testing.T) {
	common.SetTestLoggerNop()

	cfg := common.DefaultConfig()
	cfg.JWTSecret = "serve-secret"

	issuer, err := newIssuer(cfg)
	require.NoError(t, err)
	require.NotNil(t, issuer)
}
