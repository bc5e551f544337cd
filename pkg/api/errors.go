package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/evolution"
	"github.com/jackeyunjie/growthd/pkg/lineage"
	"github.com/jackeyunjie/growthd/pkg/memory"
	"github.com/jackeyunjie/growthd/pkg/orchestrator"
	"github.com/jackeyunjie/growthd/pkg/scheduler"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *config.ValidationError
	switch {
	case errors.As(err, &validErr), errors.Is(err, config.ErrInvalidCron):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduler.ErrUnknownJob),
		errors.Is(err, memory.ErrNotFound),
		errors.Is(err, lineage.ErrNotFound),
		errors.Is(err, evolution.ErrNoPendingDeployment),
		ent.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, scheduler.ErrJobRunning),
		errors.Is(err, orchestrator.ErrSessionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		// Unexpected error
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
