// Package router sets up the HTTP routing for the loopback API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	recordController  *controller.RecordController
	captureController *controller.CaptureController
	syncController    *controller.SyncController
	tipsController    *controller.TipsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	captureController *controller.CaptureController,
	syncController *controller.SyncController,
	tipsController *controller.TipsController,
) *Router {
	return &Router{
		healthController:  healthController,
		recordController:  recordController,
		captureController: captureController,
		syncController:    syncController,
		tipsController:    tipsController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Fixed paths are
// registered before the :collection wildcard so gin resolves them
// without ambiguity.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		api.GET("/summary", r.recordController.Summary)

		if r.captureController != nil {
			api.POST("/classify", r.captureController.Classify)
			api.POST("/capture", r.captureController.Capture)
		}

		if r.syncController != nil {
			sync := api.Group("/sync")
			{
				sync.GET("/status", r.syncController.Status)
				sync.POST("/drain", r.syncController.Drain)
			}
		}

		if r.tipsController != nil {
			api.GET("/tips", r.tipsController.List)
		}

		api.GET("/:collection", r.recordController.List)
		api.POST("/:collection", r.recordController.Create)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
