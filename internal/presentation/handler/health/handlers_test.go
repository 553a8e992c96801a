package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func getHealth(t *testing.T, h *Handler) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGetHealth(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start.Add(1500 * time.Millisecond)}
	h := NewHandler(start, clock.Now)

	rec, body := getHealth(t, h)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Len(t, body, 3)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "2026-10-18T09:00:01.500Z", body["timestamp"])
	require.Equal(t, 1.5, body["uptime"])
}

func TestGetHealth_RecomputedPerRequest(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start.Add(2 * time.Second)}
	h := NewHandler(start, clock.Now)

	_, first := getHealth(t, h)
	clock.now = clock.now.Add(time.Second)
	_, second := getHealth(t, h)

	require.Equal(t, first["uptime"].(float64)+1, second["uptime"])
	require.NotEqual(t, first["timestamp"], second["timestamp"])
	require.Equal(t, first["status"], second["status"])
}

func TestGetHealth_RealClockIsMonotonic(t *testing.T) {
	h := NewHandler(time.Now(), time.Now)

	_, first := getHealth(t, h)
	_, second := getHealth(t, h)

	require.GreaterOrEqual(t, first["uptime"].(float64), 0.0)
	require.GreaterOrEqual(t, second["uptime"].(float64), first["uptime"].(float64))
	_, err := time.Parse(time.RFC3339, second["timestamp"].(string))
	require.NoError(t, err)
}
