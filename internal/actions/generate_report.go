package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

type generateReportHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewGenerateReportHandler creates the generate_report handler.
func NewGenerateReportHandler(p platform.IPlatform, l log.Logger) *generateReportHandler {
	return &generateReportHandler{platform: p, l: l}
}

func (h *generateReportHandler) Name() string { return model.ActionGenerateReport }

func (h *generateReportHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	report, err := h.platform.GenerateReport(ctx, sc.WorkspaceID, platform.GenerateReportRequest{
		Framework:   frameworkParam(params),
		Format:      paramString(params, "format"),
		RequestedBy: sc.UserID,
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("report generation failed: %w", err)
	}

	scope := report.Framework
	if scope == "" {
		scope = "all-frameworks"
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"report_id":    report.ID,
			"pages":        report.Pages,
			"sections":     report.Sections,
			"format":       report.Format,
			"download_url": report.DownloadURL,
		},
		Actions: []model.ClientAction{
			{
				Type:     model.ClientActionDownload,
				URL:      report.DownloadURL,
				Filename: fmt.Sprintf("compliance-report-%s.%s", scope, report.Format),
			},
		},
	}, nil
}
