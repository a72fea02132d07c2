package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

const searchResultLimit = 10

type searchDocumentsHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewSearchDocumentsHandler creates the search_documents handler.
func NewSearchDocumentsHandler(p platform.IPlatform, l log.Logger) *searchDocumentsHandler {
	return &searchDocumentsHandler{platform: p, l: l}
}

func (h *searchDocumentsHandler) Name() string { return model.ActionSearchDocuments }

func (h *searchDocumentsHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	query := paramString(params, "query")

	documents, err := h.platform.SearchDocuments(ctx, sc.WorkspaceID, platform.DocumentSearchRequest{
		Query:      query,
		Frameworks: frameworksParam(params),
		Limit:      searchResultLimit,
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("document search failed: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(documents))
	for _, doc := range documents {
		results = append(results, map[string]interface{}{
			"id":        doc.ID,
			"name":      doc.Name,
			"framework": doc.Framework,
			"snippet":   doc.Snippet,
			"score":     doc.Score,
		})
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"query":     query,
			"count":     len(documents),
			"documents": results,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/documents"},
		},
	}, nil
}
