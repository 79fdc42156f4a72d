// Package engine orchestrates checklist generation: template selection and
// rendering, item extraction, then the regional, duration, transport and
// weather adjustment passes.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PackPilot/packpilot-backend/internal/adjust"
	"github.com/PackPilot/packpilot-backend/internal/rules"
	"github.com/PackPilot/packpilot-backend/internal/templates"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/types"
)

// WeatherProvider is the forecast collaborator. Implementations own their
// timeout and retry policy; a returned error means no weather items are
// added.
type WeatherProvider interface {
	GetWeatherSummary(ctx context.Context, location string, start, end time.Time) (*types.WeatherSummary, error)
}

// Engine generates trip checklists. Weather is optional: with a nil
// provider or the feature disabled, generation runs without weather items.
type Engine struct {
	processor      *templates.Processor
	transport      *rules.Resolver
	hinter         TransportHinter
	weather        WeatherProvider
	weatherEnabled bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeather attaches a weather provider. Generation only consults it when
// enabled is true.
func WithWeather(provider WeatherProvider, enabled bool) Option {
	return func(e *Engine) {
		e.weather = provider
		e.weatherEnabled = enabled
	}
}

// WithHinter replaces the default transport condition-flag heuristics.
func WithHinter(h TransportHinter) Option {
	return func(e *Engine) { e.hinter = h }
}

// NewEngine builds an Engine over a template directory and a rules file.
func NewEngine(templateDir, rulesFile string, opts ...Option) *Engine {
	e := &Engine{
		processor: templates.NewProcessor(templateDir),
		transport: rules.NewResolver(rules.NewRepository(rulesFile)),
		hinter:    DefaultHinter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds the full checklist for a trip request. Template failures
// are fatal; weather failures are logged and absorbed.
func (e *Engine) Generate(ctx context.Context, req *types.TripRequest) (*types.TripChecklist, error) {
	log := logger.GetLogger()

	templateType, base, module := selectTemplate(req)
	renderCtx := e.buildContext(req)

	rendered, err := e.processor.CombineTemplates(base, []string{module}, renderCtx)
	if err != nil {
		return nil, err
	}

	items := []types.ChecklistItem{}
	for _, extracted := range templates.ExtractChecklistItems(rendered) {
		items = append(items, types.NewChecklistItem(
			extracted.Name,
			types.NormalizeCategory(extracted.Category),
			extracted.Checked,
		))
	}

	items = append(items, adjust.RegionalItems(req)...)
	items = append(items, adjust.DurationItems(req)...)

	if req.TransportMethod != "" {
		items = append(items, e.transportItems(req)...)
	}

	checklist := types.NewTripChecklist(req, items, templateType)

	if summary := e.fetchWeather(ctx, req); summary != nil {
		checklist.Items = append(checklist.Items, adjust.WeatherItems(summary)...)
		checklist.WeatherData = summary.Snapshot()
	}

	log.Infow("Generated checklist",
		"destination", req.Destination,
		"template", templateType,
		"items", len(checklist.Items))
	return checklist, nil
}

// GetRecommendations returns preparation advice strings for a transport
// method: the general ones plus any method-specific timing advice.
func (e *Engine) GetRecommendations(method types.TransportMethod) []string {
	return e.transport.GetRecommendations(method)
}

// selectTemplate picks the template branch and module for a request.
func selectTemplate(req *types.TripRequest) (types.TemplateType, string, string) {
	if req.Purpose == types.PurposeBusiness {
		if strings.Contains(req.Destination, "Sapporo") {
			return types.TemplateSapporoBusiness, "base_travel.md", "business.md"
		}
		return types.TemplateDomesticBusiness, "base_travel.md", "business.md"
	}
	return types.TemplateLeisureDomestic, "base_travel.md", "leisure.md"
}

// buildContext assembles the rendering variables from the request.
func (e *Engine) buildContext(req *types.TripRequest) templates.Context {
	duration := req.Duration()

	cardCount := "50"
	if duration >= 3 {
		cardCount = "100"
	}

	return templates.Context{
		"destination":          req.Destination,
		"start_date":           req.StartDate.Format("2006-01-02"),
		"end_date":             req.EndDate.Format("2006-01-02"),
		"duration":             duration,
		"purpose":              string(req.Purpose),
		"transport_method":     req.TransportMethod.DisplayName(),
		"hotel_name":           orDefault(req.Accommodation, "undetermined"),
		"business_cards_count": cardCount,
		"recommended_cash":     formatYen(10000 + 10000*duration),
	}
}

func (e *Engine) transportItems(req *types.TripRequest) []types.ChecklistItem {
	return e.transport.GetTransportItems(
		req.TransportMethod,
		req.Duration(),
		true, // only domestic trips are supported
		int(req.StartDate.Month()),
		e.hinter.Hints(req),
	)
}

// fetchWeather retrieves the forecast summary, or nil when the feature is
// off, no provider is wired, or retrieval fails.
func (e *Engine) fetchWeather(ctx context.Context, req *types.TripRequest) *types.WeatherSummary {
	if !e.weatherEnabled || e.weather == nil {
		return nil
	}

	summary, err := e.weather.GetWeatherSummary(ctx, req.Destination, req.StartDate, req.EndDate)
	if err != nil {
		logger.GetLogger().Warnw("Weather lookup failed, generating without weather items",
			"destination", req.Destination, "error", err)
		return nil
	}
	return summary
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// formatYen renders an amount with thousands separators, e.g. 30000 ->
// "30,000".
func formatYen(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
