package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/service"
)

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateHealthMetricStampsDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	router := setupTestRouter(t, service.FixedClock(now))

	w := performRequest(t, router, "POST", "/api/health-metrics", map[string]any{
		"type":  "weight",
		"value": 80.5,
		"date":  "1999-01-01T00:00:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var metric model.HealthMetric
	decodeBody(t, w, &metric)
	assert.NotEmpty(t, metric.ID)
	assert.Equal(t, 80.5, metric.Value)
	// The server time wins over whatever the client sent.
	assert.Equal(t, "2025-03-15T10:00:00", metric.Date)
}

func TestDeleteHealthMetric(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "POST", "/api/health-metrics", map[string]any{"type": "bmi", "value": 24})
	var metric model.HealthMetric
	decodeBody(t, w, &metric)

	w = performRequest(t, router, "DELETE", "/api/health-metrics/"+metric.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, "GET", "/api/health-metrics", nil)
	var metrics []model.HealthMetric
	decodeBody(t, w, &metrics)
	assert.Empty(t, metrics)
}

func TestMetricTrendsSeries(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	router := setupTestRouter(t, service.FixedClock(now))

	w := performRequest(t, router, "POST", "/api/health-metrics", map[string]any{"type": "weight", "value": 80})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, router, "GET", "/api/health-metrics/trends?type=weight&days=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var trends []service.MetricPoint
	decodeBody(t, w, &trends)
	require.Len(t, trends, 5)

	// Only today has a reading.
	for _, point := range trends[:4] {
		assert.Nil(t, point.Value)
	}
	require.NotNil(t, trends[4].Value)
	assert.Equal(t, float64(80), *trends[4].Value)

	// Unknown metric type yields an all-null series of full length.
	w = performRequest(t, router, "GET", "/api/health-metrics/trends?type=cholesterol&days=3", nil)
	decodeBody(t, w, &trends)
	require.Len(t, trends, 3)
	for _, point := range trends {
		assert.Nil(t, point.Value)
	}
}

func TestStepsTrackedByDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	router := setupTestRouter(t, service.FixedClock(now))

	for _, steps := range []float64{4000, 2500} {
		w := performRequest(t, router, "POST", "/api/steps", map[string]any{"steps": steps})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(t, router, "GET", "/api/steps", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date    string            `json:"date"`
		Total   float64           `json:"total"`
		Entries []model.StepEntry `json:"entries"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, "2025-03-15", body.Date)
	assert.Equal(t, float64(6500), body.Total)
	assert.Len(t, body.Entries, 2)

	// A date with no entries reports a zero total.
	w = performRequest(t, router, "GET", "/api/steps?date=2025-03-01", nil)
	decodeBody(t, w, &body)
	assert.Equal(t, "2025-03-01", body.Date)
	assert.Equal(t, float64(0), body.Total)
	assert.Empty(t, body.Entries)
}
