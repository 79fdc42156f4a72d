package services

import (
	"context"
	"time"

	"github.com/PackPilot/packpilot-backend/config"
	"github.com/PackPilot/packpilot-backend/internal/rules"
	"github.com/PackPilot/packpilot-backend/internal/templates"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/types"
	"go.uber.org/zap"
)

// HealthService reports whether the engine's static configuration is
// servable: the base template must load and the rule document must have at
// least one transport method.
type HealthService struct {
	engineCfg config.EngineConfig
	version   string
	log       *zap.SugaredLogger
}

func NewHealthService(engineCfg config.EngineConfig, version string) *HealthService {
	return &HealthService{
		engineCfg: engineCfg,
		version:   version,
		log:       logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	templateStatus := h.checkTemplates()
	components["templates"] = templateStatus
	if templateStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	ruleStatus := h.checkRules()
	components["transport_rules"] = ruleStatus
	if ruleStatus.Status == types.HealthStatusDegraded && overallStatus == types.HealthStatusUp {
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkTemplates() types.HealthComponent {
	processor := templates.NewProcessor(h.engineCfg.TemplateDir)
	if _, err := processor.LoadTemplate("base_travel.md"); err != nil {
		h.log.Errorw("Template health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Base template not loadable",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

// checkRules is degraded rather than down: generation still works with an
// empty rule document, just without transport items.
func (h *HealthService) checkRules() types.HealthComponent {
	doc := rules.NewRepository(h.engineCfg.RulesFile).Load()
	if len(doc.TransportMethods) == 0 {
		h.log.Warnw("Rule document health check found no transport methods", "file", h.engineCfg.RulesFile)
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Rule document empty or unreadable",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
