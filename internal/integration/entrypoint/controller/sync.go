package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/application/store"
	syncmgr "github.com/finance-dashboard/agent/internal/application/sync"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
	"github.com/finance-dashboard/agent/internal/integration/entrypoint/dto"
)

// SyncController handles sync queue endpoints.
type SyncController struct {
	manager *syncmgr.Manager
	monitor adapter.ConnectivityMonitor
	records *store.RecordStore
	queue   adapter.SyncQueueRepository
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(
	manager *syncmgr.Manager,
	monitor adapter.ConnectivityMonitor,
	records *store.RecordStore,
	queue adapter.SyncQueueRepository,
) *SyncController {
	return &SyncController{
		manager: manager,
		monitor: monitor,
		records: records,
		queue:   queue,
	}
}

// Status handles GET /api/sync/status requests.
func (c *SyncController) Status(ctx *gin.Context) {
	pending, err := c.queue.Count(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read sync queue",
		})
		return
	}

	response := dto.SyncStatusResponse{
		Online:   c.monitor.Online(),
		Pending:  pending,
		Degraded: c.records.Degraded(),
	}
	if snapshot, err := c.records.SnapshotTime(ctx.Request.Context()); err == nil && !snapshot.IsZero() {
		response.SnapshotTime = snapshot.UTC().Format(time.RFC3339)
	}

	ctx.JSON(http.StatusOK, response)
}

// Drain handles POST /api/sync/drain requests. A drain already in
// flight is reported as a conflict rather than an error.
func (c *SyncController) Drain(ctx *gin.Context) {
	result, err := c.manager.Drain(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domainerror.ErrDrainInProgress) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "A drain is already in progress",
				Code:  string(domainerror.ErrCodeDrainInProgress),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Drain failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
