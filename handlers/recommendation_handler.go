package handlers

import (
	"net/http"

	apperrors "github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/internal/engine"
	"github.com/PackPilot/packpilot-backend/types"
	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves transport preparation advice.
type RecommendationHandler struct {
	engine  *engine.Engine
	enabled bool
}

func NewRecommendationHandler(eng *engine.Engine, enabled bool) *RecommendationHandler {
	return &RecommendationHandler{engine: eng, enabled: enabled}
}

// GetRecommendations returns advice strings for a transport method. Without
// a method parameter only the general advice is returned.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	if !h.enabled {
		_ = c.Error(apperrors.NotFound("Feature", "recommendations"))
		return
	}

	method := types.TransportMethod(c.Query("method"))
	if c.Query("method") != "" && !method.IsValid() {
		_ = c.Error(apperrors.ValidationFailed("invalid transport method", c.Query("method")))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"method":          method,
		"recommendations": h.engine.GetRecommendations(method),
	})
}
