// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/PackPilot/packpilot-backend/config"
	"github.com/PackPilot/packpilot-backend/handlers"
	"github.com/PackPilot/packpilot-backend/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies holds everything needed to set up the routes.
type Dependencies struct {
	Config                *config.Config
	ChecklistHandler      *handlers.ChecklistHandler
	RecommendationHandler *handlers.RecommendationHandler
	HealthHandler         *handlers.HealthHandler
	Logger                *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	v1 := r.Group("/v1")
	{
		checklistRoutes := v1.Group("/checklists")
		{
			checklistRoutes.POST("", deps.ChecklistHandler.CreateChecklist)
			checklistRoutes.GET("", deps.ChecklistHandler.ListChecklists)
			checklistRoutes.GET("/:id", deps.ChecklistHandler.GetChecklist)
			checklistRoutes.DELETE("/:id", deps.ChecklistHandler.DeleteChecklist)
			checklistRoutes.GET("/:id/markdown", deps.ChecklistHandler.GetChecklistMarkdown)
			checklistRoutes.POST("/:id/reschedule", deps.ChecklistHandler.Reschedule)

			itemRoutes := checklistRoutes.Group("/:id/items")
			{
				itemRoutes.POST("", deps.ChecklistHandler.AddItem)
				itemRoutes.PATCH("/:itemId/toggle", deps.ChecklistHandler.ToggleItem)
				itemRoutes.DELETE("/:itemId", deps.ChecklistHandler.RemoveItem)
			}
		}

		v1.GET("/recommendations", deps.RecommendationHandler.GetRecommendations)
	}

	return r
}
