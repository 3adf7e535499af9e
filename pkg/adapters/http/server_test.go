package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/metrics"
	"github.com/aretw0/twoway/pkg/session"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := metrics.New()
	require.NoError(t, c.Register(reg))

	eng := twoway.New(twoway.WithLifecycleHooks(c.Hooks()))
	return NewHandler(session.New(eng), WithGatherer(reg))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestStep_BeforeInitialize(t *testing.T) {
	h := newTestHandler(t)

	assert.Equal(t, http.StatusConflict, do(t, h, "POST", "/step", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, "POST", "/reset", "").Code)
}

func TestInitialize_BadRequest(t *testing.T) {
	h := newTestHandler(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/initialize", "{not json").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/initialize", `{"input":"A⊢"}`).Code)
}

func TestRunToCompletion(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "POST", "/initialize", `{"input":"AB"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view session.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.Initialized)
	assert.Equal(t, "⊢AB⊣", view.Tape)
	assert.Equal(t, 0, view.Head)

	w = do(t, h, "POST", "/step", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp StepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attempts, 1)
	assert.Equal(t, "1. (q0) ► (⊢, 1, ε) ► (q1)", resp.Attempts[0].Trace)
	assert.Equal(t, 1, resp.Head)

	w = do(t, h, "POST", "/step", `{"count": 50}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Attempts, 9)
	assert.True(t, resp.Terminal)
	assert.Equal(t, "ABAB", resp.Output)

	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/step", `{"count": "x"}`).Code)

	w = do(t, h, "GET", "/graph", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "class q4 current;")

	w = do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `twoway_steps_total{outcome="transitioned"} 10`)

	w = do(t, h, "POST", "/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 0, view.Steps)
	assert.Equal(t, "AB", view.Input)
}

func TestStep_KeepsStepCounter(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, http.StatusOK, do(t, h, "POST", "/initialize", `{"input":"AB"}`).Code)

	w := do(t, h, "POST", "/step", `{"count": 3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	steps, ok := body["steps"].(float64)
	require.True(t, ok, "steps should be the engine counter, got %T", body["steps"])
	assert.Equal(t, float64(3), steps)

	attempts, ok := body["attempts"].([]any)
	require.True(t, ok)
	assert.Len(t, attempts, 3)

	var state map[string]any
	require.NoError(t, json.Unmarshal(do(t, h, "GET", "/state", "").Body.Bytes(), &state))
	assert.Equal(t, state["steps"], body["steps"])
}

func TestGetProgram(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "GET", "/program", "")
	require.Equal(t, http.StatusOK, w.Code)

	var p ProgramResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "double", p.Name)
	assert.Equal(t, "AB", p.Alphabet)
	assert.Len(t, p.States, 5)
}

func TestHealthAndCORS(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusOK, do(t, h, "OPTIONS", "/step", "").Code)
}

func TestSubscribeEvents(t *testing.T) {
	sess := session.New(twoway.New())
	srv := httptest.NewServer(NewHandler(sess, WithGatherer(prometheus.NewRegistry())))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: ping\n", line)
	_, _ = reader.ReadString('\n') // data: connected
	_, _ = reader.ReadString('\n') // blank

	_, err = sess.Initialize(ctx, "A")
	require.NoError(t, err)
	_, _, err = sess.Step(ctx, 1)
	require.NoError(t, err)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: step\n", line)
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, `"outcome":"transitioned"`)
}
