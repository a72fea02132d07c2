package actions

import (
	"context"
	"errors"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

// Team operation errors surfaced to the user via the failure template.
var (
	ErrInvitePermission = errors.New("only workspace admins and owners can invite members")
	ErrNoInviteEmail    = errors.New("no email address given for the invite")
	ErrTeamOperation    = errors.New("unsupported team operation")
)

const defaultInviteRole = "member"

type teamOperationsHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewTeamOperationsHandler creates the team_operations handler.
func NewTeamOperationsHandler(p platform.IPlatform, l log.Logger) *teamOperationsHandler {
	return &teamOperationsHandler{platform: p, l: l}
}

func (h *teamOperationsHandler) Name() string { return model.ActionTeamOperations }

func (h *teamOperationsHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	operation := paramString(params, "operation")

	switch operation {
	case "invite":
		return h.invite(ctx, sc, params)
	case "list", "":
		return h.list(ctx, sc)
	default:
		// remove and any future operations stay in the workspace settings UI.
		return model.ActionResult{}, fmt.Errorf("%w: %s", ErrTeamOperation, operation)
	}
}

func (h *teamOperationsHandler) invite(ctx context.Context, sc model.Scope, params map[string]interface{}) (model.ActionResult, error) {
	if sc.Role != "admin" && sc.Role != "owner" {
		return model.ActionResult{}, ErrInvitePermission
	}

	email := paramString(params, "email")
	if email == "" {
		return model.ActionResult{}, ErrNoInviteEmail
	}

	member, err := h.platform.InviteMember(ctx, sc.WorkspaceID, platform.InviteMemberRequest{
		Email:     email,
		Role:      defaultInviteRole,
		InvitedBy: sc.UserID,
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("member invite failed: %w", err)
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"operation": "invite",
			"email":     member.Email,
			"status":    member.Status,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/settings/team"},
		},
	}, nil
}

func (h *teamOperationsHandler) list(ctx context.Context, sc model.Scope) (model.ActionResult, error) {
	members, err := h.platform.ListMembers(ctx, sc.WorkspaceID)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("member lookup failed: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(members))
	for _, member := range members {
		results = append(results, map[string]interface{}{
			"email":  member.Email,
			"name":   member.Name,
			"role":   member.Role,
			"status": member.Status,
		})
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"operation": "list",
			"count":     len(members),
			"members":   results,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/settings/team"},
		},
	}, nil
}
