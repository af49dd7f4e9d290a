package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtrack/rtrack-backend-go/internal/config"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.LogLevel = "error"

	jwtService := jwt.NewJWTService("test-signing-key", "15m")

	// A nil pool is fine as long as the health endpoint is not hit.
	var db *database.DB

	return NewRouter(
		cfg,
		db,
		jwtService,
		NewAuthHandler(nil),
		NewEmployeeHandler(nil),
		NewAttendanceHandler(nil),
		NewComplianceHandler(nil),
		NewExceptionHandler(nil),
	)
}

func TestRouterBanner(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Workforce Compliance Tracker API", body["message"])
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/auth/me", "/employees", "/attendance", "/compliance"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Could not validate credentials", body["detail"], path)
	}
}
