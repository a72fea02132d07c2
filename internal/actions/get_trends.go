package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

const defaultTrendMonths = 6

type getTrendsHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewGetTrendsHandler creates the get_trends handler.
func NewGetTrendsHandler(p platform.IPlatform, l log.Logger) *getTrendsHandler {
	return &getTrendsHandler{platform: p, l: l}
}

func (h *getTrendsHandler) Name() string { return model.ActionGetTrends }

func (h *getTrendsHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	months := paramInt(params, "months")
	if months <= 0 {
		months = defaultTrendMonths
	}

	trends, err := h.platform.GetTrends(ctx, sc.WorkspaceID, months)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("trend lookup failed: %w", err)
	}

	points := make([]map[string]interface{}, 0, len(trends.Points))
	for _, point := range trends.Points {
		points = append(points, map[string]interface{}{
			"month": point.Month,
			"score": point.Score,
		})
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"months":    trends.Months,
			"direction": trends.Direction,
			"points":    points,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/analytics/trends"},
		},
	}, nil
}
