package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsked-radio/rcald/internal/http/api"
	"github.com/rsked-radio/rcald/internal/http/api/packets"
	"github.com/rsked-radio/rcald/internal/store"
)

const validSchedule = `{
  "encoding": "UTF-8",
  "schema": "2.0",
  "version": "2021-06-01T12:00:00Z",
  "sources": {
    "ksjn": {"encoding": "wfm", "medium": "radio", "location": 99.5}
  },
  "dayprograms": {
    "monday": [
      {"start": "00:00:00", "program": "OFF"},
      {"start": "08:00:00", "program": "ksjn"},
      {"start": "21:00:00", "program": "OFF"}
    ]
  }
}`

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		ScheduleModule(store.NewFileStore(dir, 0), false, nil),
	)
	return r, dir
}

func postSchedule(r *gin.Engine, doc string) *httptest.ResponseRecorder {
	form := url.Values{"schedule": {doc}}
	req := httptest.NewRequest(http.MethodPost, "/api/schedule",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetScheduleEmpty(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestSaveAndFetchSchedule(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postSchedule(r, validSchedule)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted, version 2021-06-01T12:00:00Z", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?version=current", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, validSchedule, w.Body.String())
}

func TestSaveRejectsBadSchedules(t *testing.T) {
	r, dir := newTestRouter(t)

	t.Run("missing form field", func(t *testing.T) {
		w := postSchedule(r, "")
		assert.Equal(t, "ERROR no schedule posted", w.Body.String())
	})

	t.Run("unparseable document", func(t *testing.T) {
		w := postSchedule(r, "{not json")
		assert.True(t, strings.HasPrefix(w.Body.String(), "ERROR "))
	})

	t.Run("unknown medium", func(t *testing.T) {
		w := postSchedule(r, `{"version":"9","sources":{"x":{"encoding":"ogg","medium":"teleport","location":"y"}},"dayprograms":{}}`)
		assert.True(t, strings.HasPrefix(w.Body.String(), "ERROR "))
	})

	t.Run("malformed slot time", func(t *testing.T) {
		w := postSchedule(r, `{"version":"9","sources":{},"dayprograms":{"monday":[{"start":"banana","program":"OFF"},{"start":"25:99:99","program":"OFF"}]}}`)
		assert.True(t, strings.HasPrefix(w.Body.String(), "ERROR "))
	})

	// nothing was installed
	_, err := os.Stat(filepath.Join(dir, "schedule.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestGetScheduleUnknownVersion(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?version=schedule.json.~9~", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"version unavailable"}`, w.Body.String())
}

func TestListVersionsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	fetch := func() packets.VersionsResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/schedule/versions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var resp packets.VersionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	resp := fetch()
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Versions)

	require.Equal(t, http.StatusOK, postSchedule(r, validSchedule).Code)
	require.Equal(t, http.StatusOK, postSchedule(r, validSchedule).Code)

	resp = fetch()
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"schedule.json", "schedule.json.~1~"}, resp.Versions)
}

func TestSavedVersionIsServedAfterRotation(t *testing.T) {
	r, _ := newTestRouter(t)
	first := strings.Replace(validSchedule, "2021-06-01T12:00:00Z", "2021-01-01T00:00:00Z", 1)
	require.Equal(t, http.StatusOK, postSchedule(r, first).Code)
	require.Equal(t, http.StatusOK, postSchedule(r, validSchedule).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?version=schedule.json.~1~", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, first, w.Body.String())
}
