package actions

import (
	"context"
	"fmt"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

type uploadDocumentHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewUploadDocumentHandler creates the prepare_document_upload handler.
// It registers an upload slot; the actual file transfer happens in the
// client against the returned URL.
func NewUploadDocumentHandler(p platform.IPlatform, l log.Logger) *uploadDocumentHandler {
	return &uploadDocumentHandler{platform: p, l: l}
}

func (h *uploadDocumentHandler) Name() string { return model.ActionPrepareDocumentUpload }

func (h *uploadDocumentHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	framework := ""
	if frameworks := frameworksParam(params); len(frameworks) > 0 {
		framework = frameworks[0]
	}

	slot, err := h.platform.CreateUploadSlot(ctx, sc.WorkspaceID, platform.UploadSlotRequest{
		Filename:  paramString(params, "filename"),
		Framework: framework,
		CreatedBy: sc.UserID,
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("upload registration failed: %w", err)
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"slot_id":    slot.ID,
			"upload_url": slot.UploadURL,
			"expires_at": slot.ExpiresAt.Format(time.RFC3339),
			"filename":   paramString(params, "filename"),
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/documents/upload"},
			{Type: model.ClientActionDisplay, Data: map[string]interface{}{"upload_url": slot.UploadURL}},
		},
	}, nil
}
