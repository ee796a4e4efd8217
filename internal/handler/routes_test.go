package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/service"
)

func newTestRouter(t *testing.T, frontendDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dataset := lt1Dataset()
	metrics := service.NewMetricsService()

	r := gin.New()
	RegisterRoutes(r, Handlers{
		Availability: NewAvailabilityHandler(service.NewAvailabilityService(dataset, nil, nil, zap.NewNop()), metrics),
		Teacher:      NewTeacherHandler(service.NewDirectoryService(dataset, nil, zap.NewNop()), metrics, func() time.Time { return mondayNine }),
		Locations:    NewRoomLocationHandler(&roomLocationServiceMock{resp: map[string]string{}}),
		Metrics:      NewMetricsHandler(metrics, func() bool { return !dataset.Empty() }),
	})
	if frontendDir != "" {
		r.NoRoute(Frontend(frontendDir))
	}
	return r
}

func TestRoutesServeAPI(t *testing.T) {
	r := newTestRouter(t, "")

	for _, tc := range []struct {
		method, path, body string
	}{
		{http.MethodPost, "/api/tabledata", `{"day":"Monday","from":"10:00 AM","to":"11:00 AM"}`},
		{http.MethodPost, "/api/teacher", `{"teacher_name":"sen"}`},
		{http.MethodGet, "/api/getallrooms", ""},
		{http.MethodPost, "/api/checkrooms", `{"day":"Monday","from":"10:00 AM","to":"11:00 AM","rooms":["LT1"]}`},
		{http.MethodPost, "/api/getRoomLocations", `{"room_ids":["LT1"]}`},
		{http.MethodGet, "/health", ""},
		{http.MethodGet, "/ready", ""},
		{http.MethodGet, "/metrics", ""},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestFrontendServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>rooms</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log(1)"), 0o644))
	r := newTestRouter(t, dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rooms")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/script.js", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"resource not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
