package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/database"
	"github.com/jackeyunjie/growthd/pkg/models"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthz handles GET /healthz: a minimal liveness probe covering only the
// process's own dependencies.
func (s *Server) healthz(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   healthStatusUnhealthy,
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   healthStatusHealthy,
		"database": dbHealth,
	})
}

// startSchedulerRequest is the optional body of POST /scheduler/p0/start.
// sync_time is a daily wall-clock "HH:MM"; cron wins when both are set.
type startSchedulerRequest struct {
	SyncTime         string `json:"sync_time"`
	Cron             string `json:"cron"`
	TargetNotebookID string `json:"target_notebook_id"`
}

// startScheduler handles POST /scheduler/p0/start.
func (s *Server) startScheduler(c *gin.Context) {
	var req startSchedulerRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cronExpr := req.Cron
	if cronExpr == "" && req.SyncTime != "" {
		expr, err := cronFromSyncTime(req.SyncTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cronExpr = expr
	}
	if cronExpr != "" {
		if err := s.scheduler.UpdateSchedule(config.JobP0DailySync, cronExpr); err != nil {
			abortWithServiceError(c, err)
			return
		}
	}

	if err := s.scheduler.Start(context.Background()); err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{"started": true}
	if cronExpr != "" {
		resp["cron_expression"] = cronExpr
	}
	if req.TargetNotebookID != "" {
		resp["target_notebook_id"] = req.TargetNotebookID
	}
	c.JSON(http.StatusOK, resp)
}

// cronFromSyncTime converts a daily "HH:MM" wall-clock into a cron expression.
func cronFromSyncTime(syncTime string) (string, error) {
	t, err := time.Parse("15:04", syncTime)
	if err != nil {
		return "", fmt.Errorf("invalid sync_time %q: expected HH:MM", syncTime)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// triggerSync handles POST /scheduler/p0/trigger: an immediate sync run
// outside the cron schedule.
func (s *Server) triggerSync(c *gin.Context) {
	summary, err := s.scheduler.TriggerNow(c.Request.Context(), config.JobP0DailySync)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, summary)
}

// syncStatus handles GET /scheduler/p0/status.
func (s *Server) syncStatus(c *gin.Context) {
	status, err := s.scheduler.Status(c.Request.Context(), config.JobP0DailySync)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{"job": status}
	if history := s.runner.History(); len(history) > 0 {
		resp["latest_session"] = history[len(history)-1]
	}
	if s.cells != nil {
		if cell, err := s.cells.Get(c.Request.Context(), config.JobP0DailySync); err == nil && cell.RunCount > 0 {
			resp["success_rate"] = float64(cell.SuccessCount) / float64(cell.RunCount)
			resp["avg_duration_ms"] = cell.AvgDurationMs
		}
	}
	c.JSON(http.StatusOK, resp)
}

// updateScheduleRequest is the body of PUT /scheduler/jobs/{job_id}/schedule.
type updateScheduleRequest struct {
	CronExpression string `json:"cron_expression" binding:"required"`
}

// updateSchedule handles PUT /scheduler/jobs/{job_id}/schedule.
func (s *Server) updateSchedule(c *gin.Context) {
	var req updateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.scheduler.UpdateSchedule(c.Param("job_id"), req.CronExpression); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": c.Param("job_id"), "cron_expression": req.CronExpression})
}

// jobHistory handles GET /scheduler/jobs/{job_id}/history.
func (s *Server) jobHistory(c *gin.Context) {
	history, err := s.scheduler.History(c.Request.Context(), c.Param("job_id"), 0)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": c.Param("job_id"), "history": history})
}

// triggerEvolution handles POST /evolution/trigger.
func (s *Server) triggerEvolution(c *gin.Context) {
	report, err := s.evolution.RunCycle(c.Request.Context(), nil)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// evolutionReport handles GET /evolution/report/{report_id}.
func (s *Server) evolutionReport(c *gin.Context) {
	report, err := s.evolution.Report(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// confirmDeploy handles POST /evolution/deploy/{agent_type}/confirm: the
// manual release path for medium-fitness strategies.
func (s *Server) confirmDeploy(c *gin.Context) {
	deployed, err := s.evolution.ConfirmDeploy(c.Request.Context(), c.Param("agent_type"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deployed)
}

// submitFeedback handles POST /learning/feedback: one outcome record for
// the learning loop. The analysis pass runs inline once a batch completes.
func (s *Server) submitFeedback(c *gin.Context) {
	var record models.FeedbackRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := s.collector.Collect(c.Request.Context(), record)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"feedback_id": stored.FeedbackID, "kind": stored.Kind})
}

// dataHealth handles GET /data/health: the lifecycle report plus cell,
// agent, and trigger rollups.
func (s *Server) dataHealth(c *gin.Context) {
	ctx := c.Request.Context()
	health, err := s.lifecycle.CheckHealth(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{
		"tier_distribution": health.TierDistribution,
		"alerts":            health.Alerts,
		"meridians":         health.Meridians,
		"checked_at":        health.CheckedAt,
	}
	if s.cells != nil {
		if rows, err := s.cells.List(ctx); err == nil {
			resp["cell_states"] = countCellStates(rows)
		}
	}
	if s.agentStates != nil {
		if rows, err := s.agentStates.List(ctx); err == nil {
			resp["agent_status"] = countAgentStatuses(rows)
		}
	}
	if s.scheduler != nil {
		resp["recent_triggers"] = s.recentTriggerCounts(ctx)
	}
	c.JSON(http.StatusOK, resp)
}

func countCellStates(rows []*ent.CellState) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[string(row.State)]++
	}
	return counts
}

func countAgentStatuses(rows []*ent.AgentState) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[string(row.Status)]++
	}
	return counts
}

// recentTriggerCounts tallies success and failure over each job's recent runs.
func (s *Server) recentTriggerCounts(ctx context.Context) map[string]gin.H {
	out := make(map[string]gin.H)
	for _, jobID := range []string{config.JobP0DailySync, config.JobP3Evolution, config.JobDataLifecycle} {
		history, err := s.scheduler.History(ctx, jobID, 20)
		if err != nil {
			continue
		}
		succeeded, failed := 0, 0
		for _, run := range history {
			switch run.Status {
			case string(triggerrecord.StatusSuccess):
				succeeded++
			case string(triggerrecord.StatusFailed):
				failed++
			}
		}
		out[jobID] = gin.H{"runs": len(history), "succeeded": succeeded, "failed": failed}
	}
	return out
}
