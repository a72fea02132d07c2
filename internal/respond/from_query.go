package respond

import (
	"context"
	"fmt"
	"strings"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/llmprovider"
)

// FromQuery answers a free-form question through the provider chain,
// grounded in the workspace snapshot and the most recent turns. Every
// failure path degrades to FallbackReply.
func (g *ResponseGenerator) FromQuery(ctx context.Context, text string, snapshot model.ContextSnapshot, history []model.Message, hint *model.NLPHint) string {
	system := buildSystemPrompt(snapshot, hint)

	messages := historyMessages(history)
	messages = append(messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: text}},
	})

	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages:    messages,
		Temperature: queryTemperature,
		MaxTokens:   queryMaxTokens,
	})
	if err != nil {
		g.l.Warnf(ctx, "respond: provider chain failed, using fallback: %v", err)
		return FallbackReply
	}

	reply := ""
	if len(resp.Content.Parts) > 0 {
		reply = strings.TrimSpace(resp.Content.Parts[0].Text)
	}
	if reply == "" {
		g.l.Warnf(ctx, "respond: provider returned empty text, using fallback")
		return FallbackReply
	}
	return reply
}

// buildSystemPrompt grounds the model in the current workspace state.
func buildSystemPrompt(snapshot model.ContextSnapshot, hint *model.NLPHint) string {
	var b strings.Builder

	b.WriteString("You are a compliance assistant")
	if snapshot.WorkspaceName != "" {
		b.WriteString(fmt.Sprintf(" for the workspace %q", snapshot.WorkspaceName))
	}
	if snapshot.Industry != "" {
		b.WriteString(fmt.Sprintf(" (%s)", snapshot.Industry))
	}
	b.WriteString(".\n")

	b.WriteString(fmt.Sprintf("Current state: compliance score %d/100, %d unresolved %s (%d critical), %d %s pending review.\n",
		snapshot.ComplianceScore,
		snapshot.UnresolvedIssues, plural(snapshot.UnresolvedIssues, "issue", "issues"),
		snapshot.CriticalIssues,
		snapshot.PendingDocuments, plural(snapshot.PendingDocuments, "document", "documents")))

	if len(snapshot.ActiveFrameworks) > 0 {
		b.WriteString("Active frameworks: " + strings.Join(snapshot.ActiveFrameworks, ", ") + ".\n")
	}
	for _, deadline := range snapshot.UpcomingDeadlines {
		b.WriteString(fmt.Sprintf("Upcoming deadline: %s (%s) due %s.\n",
			deadline.Title, deadline.Framework, deadline.DueAt.Format(time.DateOnly)))
	}
	if hint != nil && hint.Intent != "" && hint.Intent != model.IntentUnknown {
		b.WriteString(fmt.Sprintf("The user's question likely concerns: %s.\n", hint.Intent))
	}

	b.WriteString("Answer briefly and concretely. When the user should act in the product, name the page to open. Do not invent workspace data beyond what is stated above.")
	return b.String()
}

// historyMessages converts the last turns into provider messages.
func historyMessages(history []model.Message) []llmprovider.Message {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == model.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: msg.Content}},
		})
	}
	return messages
}
