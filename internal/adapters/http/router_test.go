package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dkeye/Presence/internal/adapters/signal"
	"github.com/dkeye/Presence/internal/app"
	"github.com/dkeye/Presence/internal/app/orch"
	"github.com/dkeye/Presence/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *app.RoomStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>presence</html>"), 0o600))

	cfg := &config.Config{
		Mode:       "test",
		StaticPath: static,
		CORSOrigin: "*",
		Secret:     "test-secret",
		ReadLimit:  1024,
		PingPeriod: time.Second,
		PongWait:   2 * time.Second,
		WriteWait:  time.Second,
		SendBuffer: 8,
		ICEServers: []config.ICEServer{{URLs: []string{"stun:stun.example.com:3478"}}},
	}
	store := app.NewRoomStore()
	reg := app.NewRegistry()
	ctrl := signal.NewSignalWSController(orch.New(store, reg, app.SimplePolicy{}), reg, cfg)
	return SetupRouter(context.Background(), cfg, store, ctrl), store, static
}

func do(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newRouter(t)

	w := do(r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRouter_Rooms(t *testing.T) {
	req := require.New(t)
	r, store, _ := newRouter(t)

	req.JSONEq(`{"rooms":[]}`, do(r, http.MethodGet, "/api/rooms", "").Body.String())

	store.AddParticipant("lobby", "A", "Alice")
	store.AddParticipant("lobby", "B", "Bob")

	w := do(r, http.MethodGet, "/api/rooms", "")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"rooms":[{"id":"lobby","participants":2}]}`, w.Body.String())
}

func TestRouter_ICEServers(t *testing.T) {
	req := require.New(t)
	r, _, _ := newRouter(t)

	w := do(r, http.MethodGet, "/api/ice-servers", "")

	req.Equal(http.StatusOK, w.Code)
	var body struct {
		ICEServers []struct {
			URLs []string `json:"urls"`
		} `json:"iceServers"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Len(body.ICEServers, 1)
	req.Equal([]string{"stun:stun.example.com:3478"}, body.ICEServers[0].URLs)
}

func TestRouter_Profile(t *testing.T) {
	req := require.New(t)
	r, _, _ := newRouter(t)

	// Given no profile yet
	req.JSONEq(`{"username":""}`, do(r, http.MethodGet, "/api/profile", "").Body.String())

	// When a name is saved
	w := do(r, http.MethodPost, "/api/profile", `{"username":"Alice"}`)
	req.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	req.NotEmpty(cookies)

	// Then it comes back with the cookie
	req.JSONEq(`{"username":"Alice"}`, do(r, http.MethodGet, "/api/profile", "", cookies...).Body.String())
}

func TestRouter_ProfileValidation(t *testing.T) {
	r, _, _ := newRouter(t)

	for _, body := range []string{`{}`, `{"username":""}`, `{"username":"` + strings.Repeat("a", 33) + `"}`, `not json`} {
		w := do(r, http.MethodPost, "/api/profile", body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestRouter_StaticFallback(t *testing.T) {
	req := require.New(t)
	r, _, _ := newRouter(t)

	for _, path := range []string{"/", "/room/lobby"} {
		w := do(r, http.MethodGet, path, "")
		req.Equal(http.StatusOK, w.Code, path)
		req.Contains(w.Body.String(), "presence")
	}

	req.Equal(http.StatusNotFound, do(r, http.MethodGet, "/api/unknown", "").Code)
	req.Equal(http.StatusNotFound, do(r, http.MethodPost, "/nowhere", "").Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := require.New(t)
	r, _, _ := newRouter(t)

	w := do(r, http.MethodOptions, "/api/rooms", "")

	req.Equal(http.StatusNoContent, w.Code)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
