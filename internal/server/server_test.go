package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/internal/config"
)

const corridor = `{
	"grid": {"kind": "uniform", "width": 3, "height": 1, "cost": 1},
	"search": {"start": {"x": 0, "y": 0}, "goal": {"x": 2, "y": 0}}
}`

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	s := New(cfg, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func create(t *testing.T, ts *httptest.Server, body string) string {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/searches", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decode[CreateResponse](t, resp).ID
}

func TestCreate_DefaultsWithEmptyBody(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, "")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	snap := decode[Snapshot](t, do(t, http.MethodGet, ts.URL+"/searches/"+id, ""))
	assert.Equal(t, "ready", snap.Status)
	assert.Equal(t, 20, snap.Width)
	assert.Equal(t, 14, snap.Height)
	assert.Equal(t, config.Point{X: 2, Y: 3}, snap.Start)
	assert.Equal(t, config.Point{X: 18, Y: 12}, snap.Goal)
	assert.Len(t, snap.Open, 1, "only the root is open")
	assert.Empty(t, snap.Closed)
	assert.Nil(t, snap.Cost)
	assert.True(t, snap.Reachable)
}

func TestStep_ProgressAndFound(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, corridor)

	snap := decode[Snapshot](t, do(t, http.MethodPost, ts.URL+"/searches/"+id+"/step", ""))
	assert.Equal(t, "searching", snap.Status)
	assert.Equal(t, 1, snap.Steps)
	assert.Equal(t, []Cell{{X: 0, Y: 0, G: 0, F: 2}}, snap.Closed)
	assert.Equal(t, []Cell{{X: 1, Y: 0, G: 1, F: 2}}, snap.Open)

	snap = decode[Snapshot](t, do(t, http.MethodPost, ts.URL+"/searches/"+id+"/step?n=50", ""))
	assert.Equal(t, "found", snap.Status)
	assert.Equal(t, 3, snap.Steps)
	assert.Equal(t, []config.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, snap.Path)
	require.NotNil(t, snap.Cost)
	assert.Equal(t, 2, *snap.Cost)

	// Terminal sessions do not advance further.
	snap = decode[Snapshot](t, do(t, http.MethodPost, ts.URL+"/searches/"+id+"/step?n=5", ""))
	assert.Equal(t, 3, snap.Steps)
}

func TestStep_Exhausted(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, `{
		"grid": {"kind": "uniform", "width": 3, "height": 1, "cost": 1, "obstacles": 1},
		"search": {"start": {"x": 0, "y": 0}, "goal": {"x": 2, "y": 0}}
	}`)

	snap := decode[Snapshot](t, do(t, http.MethodPost, ts.URL+"/searches/"+id+"/step?n=10", ""))
	assert.Equal(t, "exhausted", snap.Status)
	assert.False(t, snap.Reachable)
	assert.Empty(t, snap.Path)
	assert.Equal(t, 0, snap.Costs[0][1], "the middle cell is a wall")
}

func TestErrors(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, corridor)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/searches/" + uuid.NewString(), "", http.StatusNotFound},
		{"step unknown session", http.MethodPost, "/searches/nope/step", "", http.StatusNotFound},
		{"zero steps", http.MethodPost, "/searches/" + id + "/step?n=0", "", http.StatusBadRequest},
		{"non-numeric steps", http.MethodPost, "/searches/" + id + "/step?n=x", "", http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/searches", "{", http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/searches", `{"color": "red"}`, http.StatusBadRequest},
		{"invalid grid", http.MethodPost, "/searches", `{"grid": {"width": 0}}`, http.StatusBadRequest},
		{"goal off grid", http.MethodPost, "/searches", `{"search": {"goal": {"x": 99, "y": 0}}}`, http.StatusBadRequest},
		{"wrong method", http.MethodPut, "/searches/" + id, "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, tc.method, ts.URL+tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestDelete(t *testing.T) {
	s, ts := newTestServer(t, nil)
	id := create(t, ts, corridor)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ActiveSessions))

	resp := do(t, http.MethodDelete, ts.URL+"/searches/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.ActiveSessions))

	resp = do(t, http.MethodGet, ts.URL+"/searches/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, http.MethodDelete, ts.URL+"/searches/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionLimit(t *testing.T) {
	_, ts := newTestServer(t, func(c *config.Config) { c.Server.MaxSessions = 1 })
	create(t, ts, corridor)

	resp := do(t, http.MethodPost, ts.URL+"/searches", corridor)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, decode[errorResponse](t, resp).Error, "too many sessions")
}

func TestConcurrentSteps(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, ts.URL+"/searches/"+id+"/step?n=5", nil)
			resp, err := http.DefaultClient.Do(req)
			if err == nil {
				_ = resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	snap := decode[Snapshot](t, do(t, http.MethodGet, ts.URL+"/searches/"+id, ""))
	if snap.Status == "searching" {
		assert.Equal(t, 40, snap.Steps)
	}
}

func TestMetricsAndHealthz(t *testing.T) {
	_, ts := newTestServer(t, nil)
	id := create(t, ts, corridor)
	do(t, http.MethodPost, ts.URL+"/searches/"+id+"/step?n=10", "")

	resp := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gridstar_search_outcomes_total{status="found"} 1`)
	assert.Contains(t, string(body), "gridstar_search_active_sessions 1")
	assert.Contains(t, string(body), "go_goroutines")

	health := decode[map[string]any](t, do(t, http.MethodGet, ts.URL+"/healthz", ""))
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 1, health["sessions"])
}
