package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/evolution"
	"github.com/jackeyunjie/growthd/pkg/learning"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/orchestrator"
	"github.com/jackeyunjie/growthd/pkg/scheduler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a server over in-memory stores only; endpoints that
// need the relational store are not exercised here.
func newTestServer(t *testing.T) (*Server, *memory.SharedMemory) {
	t.Helper()
	mem := memory.NewSharedMemory(memory.NewMemoryStore())
	t.Cleanup(func() { mem.Close() })

	learnEngine := learning.NewEngine(*config.DefaultLearningConfig(), mem, nil)
	collector := learning.NewCollector(*config.DefaultLearningConfig(), mem, learnEngine, nil, nil)
	evoEngine := evolution.NewEngine(*config.DefaultEvolutionConfig(), mem, nil)

	srv := NewServer(Deps{
		Evolution: evoEngine,
		Collector: collector,
	})
	return srv, mem
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestSubmitFeedback_Accepted(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"source_plan_id":"plan-1","source_quadrant":"q1","metrics":{"conversion_rate":0.12},"outcome_value":150}`
	rec := doRequest(srv, http.MethodPost, "/learning/feedback", body)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"feedback_id"`)
	assert.Contains(t, rec.Body.String(), `"outcome"`, "conversion metrics classify as outcome feedback")
}

func TestSubmitFeedback_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/learning/feedback", `{"metrics": "not-a-map"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvolutionReport_UnknownID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/evolution/report/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource not found")
}

func TestConfirmDeploy_NothingPending(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/evolution/deploy/pain_scanner/confirm", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTriggerEvolution_ReturnsReport(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/evolution/trigger", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"report_id"`)

	// The stored report is retrievable through the report endpoint.
	var report struct {
		ReportID string `json:"report_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.NotEmpty(t, report.ReportID)

	rec = doRequest(srv, http.MethodGet, "/evolution/report/"+report.ReportID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartScheduler_InvalidSyncTime(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/scheduler/p0/start", `{"sync_time":"25:99"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync_time")
}

func TestCronFromSyncTime(t *testing.T) {
	expr, err := cronFromSyncTime("06:30")
	require.NoError(t, err)
	assert.Equal(t, "30 6 * * *", expr)

	expr, err = cronFromSyncTime("00:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 * * *", expr)

	_, err = cronFromSyncTime("morning")
	assert.Error(t, err)
}

func TestCountCellStates(t *testing.T) {
	rows := []*ent.CellState{
		{ID: "a", State: cellstate.StateIdle},
		{ID: "b", State: cellstate.StateIdle},
		{ID: "c", State: cellstate.StateDegraded},
	}
	counts := countCellStates(rows)
	assert.Equal(t, 2, counts[string(cellstate.StateIdle)])
	assert.Equal(t, 1, counts[string(cellstate.StateDegraded)])
}

func TestCountAgentStatuses(t *testing.T) {
	rows := []*ent.AgentState{
		{ID: "a", Status: agentstate.StatusActive},
		{ID: "b", Status: agentstate.StatusDegraded},
		{ID: "c", Status: agentstate.StatusActive},
	}
	counts := countAgentStatuses(rows)
	assert.Equal(t, 2, counts[string(agentstate.StatusActive)])
	assert.Equal(t, 1, counts[string(agentstate.StatusDegraded)])
}

func TestUpdateSchedule_MissingBody(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPut, "/scheduler/jobs/p0_daily_sync/schedule", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "cron_expression is required")
}

func TestSecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/evolution/report/nope", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestAbortWithServiceError_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid cron", fmt.Errorf("update: %w", config.ErrInvalidCron), http.StatusBadRequest},
		{"validation error", config.NewValidationError("scheduler", "p0_daily_sync", "cron_expression", errors.New("bad")), http.StatusBadRequest},
		{"unknown job", fmt.Errorf("trigger: %w", scheduler.ErrUnknownJob), http.StatusNotFound},
		{"memory miss", memory.ErrNotFound, http.StatusNotFound},
		{"no pending deployment", evolution.ErrNoPendingDeployment, http.StatusNotFound},
		{"job running", scheduler.ErrJobRunning, http.StatusConflict},
		{"session in progress", orchestrator.ErrSessionInProgress, http.StatusConflict},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			abortWithServiceError(c, tc.err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
