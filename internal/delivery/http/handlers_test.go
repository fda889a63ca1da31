package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/internal/repository/memory"
	"github.com/smartcity/tourdifficulty/internal/service"
	"github.com/smartcity/tourdifficulty/web"
)

// saturdayAfternoon is 2026-10-17 15:00 KST
var saturdayAfternoon = time.Date(2026, time.October, 17, 15, 0, 0, 0, domain.KST)

type constNoise float64

func (n constNoise) Float64() float64 { return float64(n) }

func newTestApp(t *testing.T, opts Options, svcOpts ...service.Option) *fiber.App {
	t.Helper()

	svcOpts = append([]service.Option{
		service.WithClock(func() time.Time { return saturdayAfternoon }),
	}, svcOpts...)
	svc := service.NewStatusService(memory.NewDefaultCatalog(), service.NewTrafficService(), svcOpts...)

	return NewApp(AppConfig{Options: opts}, svc, web.Static(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doGet(t *testing.T, app *fiber.App, target string) (*nethttp.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestGetStatus_KnownArea(t *testing.T) {
	app := newTestApp(t, Options{})

	resp, body := doGet(t, app, "/api/status?area=jeonju-hanok")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var status domain.StatusResponse
	require.NoError(t, json.Unmarshal(body, &status))

	assert.Equal(t, "jeonju-hanok", status.AreaID)
	assert.Equal(t, "Jeonju Hanok Village", status.Area)
	assert.Equal(t, "전주 한옥마을", status.AreaKR)
	assert.Equal(t, "2026-10-17T15:00:00+09:00", status.NowKST)
	assert.Equal(t, domain.LevelVeryHard, status.LevelNow)
	assert.Equal(t, service.LevelFromScore(status.DifficultyNow), status.LevelNow)
	assert.Equal(t, service.LevelFromScore(status.Difficulty30m), status.Level30m)
	assert.Equal(t, domain.SyntheticDataNote, status.Notes)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestGetStatus_ResponseFields(t *testing.T) {
	app := newTestApp(t, Options{})

	_, body := doGet(t, app, "/api/status?area=jeonbuk-gunsan")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	for _, key := range []string{
		"area_id", "area", "area_kr", "region", "category", "emoji", "now_kst",
		"traffic_index_now", "traffic_index_forecast_30m", "parking_pressure_now",
		"difficulty_now_0_100", "difficulty_30m_0_100", "level_now", "level_30m",
		"message", "message_30m", "notes",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Len(t, raw, 17)
}

func TestGetStatus_DefaultArea(t *testing.T) {
	app := newTestApp(t, Options{})

	_, body := doGet(t, app, "/api/status")

	var status domain.StatusResponse
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, domain.DefaultAreaID, status.AreaID)
}

func TestGetStatus_ConfiguredDefaultArea(t *testing.T) {
	app := newTestApp(t, Options{DefaultArea: "jeonbuk-maisan"})

	_, body := doGet(t, app, "/api/status")

	var status domain.StatusResponse
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "jeonbuk-maisan", status.AreaID)
}

func TestGetStatus_UnknownAreaListsCatalog(t *testing.T) {
	app := newTestApp(t, Options{})

	resp, body := doGet(t, app, "/api/status?area=nowhere")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var unknown domain.UnknownAreaResponse
	require.NoError(t, json.Unmarshal(body, &unknown))
	assert.NotEmpty(t, unknown.Error)

	want := memory.NewDefaultCatalog().IDs()
	assert.Equal(t, want, unknown.AvailableAreas)
	assert.ElementsMatch(t, want, unknown.AvailableAreas)
}

func TestGetStatus_UnknownAreaStrict(t *testing.T) {
	app := newTestApp(t, Options{StrictAreaLookup: true})

	resp, body := doGet(t, app, "/api/status?area=nowhere")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	var unknown domain.UnknownAreaResponse
	require.NoError(t, json.Unmarshal(body, &unknown))
	assert.Len(t, unknown.AvailableAreas, 14)
}

func TestGetStatus_MalformedArea(t *testing.T) {
	app := newTestApp(t, Options{})

	for _, target := range []string{
		"/api/status?area=Jeonju%20Hanok",
		"/api/status?area=%3Cscript%3E",
	} {
		resp, body := doGet(t, app, target)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode, target)
		assert.Contains(t, string(body), `"error":true`)
	}
}

func TestGetStatus_NonFiniteIsServerError(t *testing.T) {
	nan := func(string, time.Time) service.NoiseSource { return constNoise(math.NaN()) }
	app := newTestApp(t, Options{}, service.WithNoise(nan))

	resp, _ := doGet(t, app, "/api/status?area=jeonju-hanok")
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
}

func TestGetAreas_All(t *testing.T) {
	app := newTestApp(t, Options{})

	resp, body := doGet(t, app, "/api/areas")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var list domain.AreaListResponse
	require.NoError(t, json.Unmarshal(body, &list))

	want := memory.DefaultAreas()
	require.Equal(t, len(want), list.Total)
	require.Len(t, list.Areas, len(want))
	for i := range want {
		assert.Equal(t, want[i], list.Areas[i])
	}
}

func TestGetAreas_Search(t *testing.T) {
	app := newTestApp(t, Options{})

	for _, term := range []string{"%EB%B0%95%EB%AC%BC%EA%B4%80", "Museum"} { // 박물관
		_, body := doGet(t, app, "/api/areas?search="+term)

		var list domain.AreaListResponse
		require.NoError(t, json.Unmarshal(body, &list))
		require.Equal(t, 1, list.Total, term)
		assert.Equal(t, "jeonbuk-gunsan", list.Areas[0].ID)
	}
}

func TestGetAreas_SearchTooLong(t *testing.T) {
	app := newTestApp(t, Options{})

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	resp, _ := doGet(t, app, "/api/areas?search="+string(long))
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, Options{})

	resp, body := doGet(t, app, "/health")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var health domain.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "2026-10-17T15:00:00+09:00", health.Timestamp)
}

func TestDashboardAndStatic(t *testing.T) {
	app := newTestApp(t, Options{})

	resp, body := doGet(t, app, "/")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<!DOCTYPE html>")

	resp, body = doGet(t, app, "/static/app.js")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/status")

	resp, _ = doGet(t, app, "/static/missing.css")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}
