package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/infrastructure/auth"
	"github.com/nivas/backend/internal/infrastructure/config"
	"github.com/nivas/backend/internal/interfaces/http/handler"
)

// newTestEngine wires the full route table. Handlers sit on top of nil
// services; the routes exercised here are stopped by middleware before any
// handler body runs.
func newTestEngine(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		TokenExpiration: time.Hour,
		Issuer:          "nivas-test",
	})

	cfg := &config.Config{}
	engine := New(Dependencies{
		Config:     cfg,
		Logger:     zap.NewNop(),
		JWTService: jwtService,
		Blacklist:  auth.NewInMemoryTokenBlacklist(),
		Handlers: Handlers{
			System:    handler.NewSystemHandler(nil, "test"),
			Auth:      handler.NewAuthHandler(nil),
			Society:   handler.NewSocietyHandler(nil),
			Resident:  handler.NewResidentHandler(nil),
			Bill:      handler.NewBillHandler(nil),
			Payment:   handler.NewPaymentHandler(nil),
			Visitor:   handler.NewVisitorHandler(nil),
			Complaint: handler.NewComplaintHandler(nil),
			Expense:   handler.NewExpenseHandler(nil),
			Notice:    handler.NewNoticeHandler(nil),
			Vehicle:   handler.NewVehicleHandler(nil),
			SOS:       handler.NewSOSHandler(nil),
		},
	})
	return engine, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role string, societyID *uuid.UUID) string {
	t.Helper()
	token, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		AccountID: uuid.New(),
		SocietyID: societyID,
		Role:      role,
		Email:     role + "@example.com",
	})
	require.NoError(t, err)
	return token.Value
}

func get(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterAccessControl(t *testing.T) {
	engine, jwtService := newTestEngine(t)
	societyID := uuid.New()

	t.Run("health probe needs no auth", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(engine, "/health", "").Code)
	})

	t.Run("tenant routes reject anonymous callers", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(engine, "/api/v1/residents", "").Code)
		assert.Equal(t, http.StatusUnauthorized, get(engine, "/api/v1/bills", "").Code)
		assert.Equal(t, http.StatusUnauthorized, get(engine, "/api/v1/societies", "").Code)
	})

	t.Run("resident cannot reach admin routes", func(t *testing.T) {
		token := issueToken(t, jwtService, "resident", &societyID)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/residents", token).Code)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/bills", token).Code)
	})

	t.Run("resident cannot reach developer routes", func(t *testing.T) {
		token := issueToken(t, jwtService, "resident", &societyID)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/societies", token).Code)
	})

	t.Run("developer session never passes the society scope", func(t *testing.T) {
		token := issueToken(t, jwtService, "developer", nil)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/notices", token).Code)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/visitors", token).Code)
	})

	t.Run("admin cannot reach resident-only routes", func(t *testing.T) {
		token := issueToken(t, jwtService, "admin", &societyID)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/bills/my", token).Code)
		assert.Equal(t, http.StatusForbidden, get(engine, "/api/v1/complaints/my", token).Code)
	})
}
