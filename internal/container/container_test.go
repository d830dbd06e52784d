package container_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/container"
	"github.com/saulo-duarte/menteviva-api/internal/store"
)

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newClient(t *testing.T) *client {
	c, err := container.New(context.Background(), config.Settings{
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		InsightTimeout:     time.Second,
		RateLimitPerMinute: 600,
		LogLevel:           "error",
	})
	require.NoError(t, err)
	return &client{t: t, handler: c.Router()}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newClient(t)
	for _, path := range []string{"/users/me", "/habits/active", "/dashboard", "/tests", "/tips"} {
		assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, path, nil).Code, path)
	}
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", nil).Code)
}

func TestHabitJourney(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/auth/login", map[string]string{"email": store.DemoUserEmail, "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	c.token = decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
	require.NotEmpty(t, c.token)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/dashboard", nil).Code)

	rec = c.do(http.MethodPost, "/habits", map[string]any{
		"name":          "Meditar",
		"days_per_week": 7,
		"times_per_day": 1,
		"duration_days": 7,
		"reminder_time": "07:00",
		"reminder_days": []int{0, 1, 2, 3, 4, 5, 6},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Todos os dias", decode[map[string]any](t, rec)["reminder_label"])

	rec = c.do(http.MethodPost, "/habits/active/checkins", map[string]string{
		"execution_status":  "COMPLETED",
		"difficulty_moment": "NONE",
		"sabotage_type":     "NONE",
		"motivation_type":   "JOY",
		"energy_level":      "BETTER",
		"next_day_plan":     "REPEAT",
		"learnings":         "Foi tranquilo",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	overview := decode[struct {
		Streak                int  `json:"streak"`
		TotalCheckins         int  `json:"total_checkins"`
		AlreadyCheckedInToday bool `json:"already_checked_in_today"`
		Insight               any  `json:"insight"`
	}](t, rec)
	assert.Equal(t, 1, overview.Streak)
	assert.Equal(t, 1, overview.TotalCheckins)
	assert.True(t, overview.AlreadyCheckedInToday)
	assert.Nil(t, overview.Insight)

	rec = c.do(http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, rec)["total_checkins"])

	rec = c.do(http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Foi tranquilo")

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/habits/active", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/habits/active", nil).Code)
}

func TestAssessmentFlow(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/auth/register", map[string]string{
		"full_name":        "Ana Souza",
		"cpf":              "111.222.333-44",
		"birth_date":       "1992-03-04",
		"whatsapp":         "31977776666",
		"email":            "ana@example.com",
		"password":         "segredo",
		"confirm_password": "segredo",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	c.token = decode[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = c.do(http.MethodGet, "/tests", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "controle-executivo")

	answers := make([]int, 10)
	rec = c.do(http.MethodPost, "/tests/controle-executivo/submissions", map[string][]int{"answers": answers})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, "/tests/controle-executivo/submissions", map[string][]int{"answers": answers})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(http.MethodPost, "/tests/nao-existe/submissions", map[string][]int{"answers": answers})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/tests/submissions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), `"test_id"`))
}
