package llmprovider

import (
	"context"
	"encoding/json"

	"compliance-assistant/pkg/deepseek"
)

// DeepSeekAdapter exposes pkg/deepseek as a chain Provider. DeepSeek
// has no structured part list, so messages are flattened into the
// completions shape on the way in.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages: toDeepSeekMessages(req.Messages),
	}
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		system := deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		}
		dsReq.Messages = append([]deepseek.Message{system}, dsReq.Messages...)
	}
	if len(req.Tools) > 0 {
		dsReq.Tools = toDeepSeekTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}
	return fromDeepSeekResponse(resp), nil
}

func (a *DeepSeekAdapter) Name() string { return "deepseek" }

func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

// toDeepSeekMessages flattens part lists into completions messages.
// Function responses switch the role to "tool" per the completions
// contract; multiple text parts are joined with newlines.
func toDeepSeekMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		dsMsg := deepseek.Message{Role: msg.Role}
		for _, part := range msg.Parts {
			switch {
			case part.FunctionCall != nil:
				argsJSON, _ := json.Marshal(part.FunctionCall.Args)
				dsMsg.ToolCalls = append(dsMsg.ToolCalls, deepseek.ToolCall{
					ID:   "call_" + part.FunctionCall.Name,
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      part.FunctionCall.Name,
						Arguments: string(argsJSON),
					},
				})
			case part.FunctionResponse != nil:
				dsMsg.Role = "tool"
				dsMsg.ToolCallID = "call_" + part.FunctionResponse.Name
				dsMsg.Name = part.FunctionResponse.Name
				responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
				dsMsg.Content = string(responseJSON)
			case part.Text != "":
				if dsMsg.Content != "" {
					dsMsg.Content += "\n"
				}
				dsMsg.Content += part.Text
			}
		}
		messages = append(messages, dsMsg)
	}
	return messages
}

func toDeepSeekTools(tools []Tool) []deepseek.Tool {
	out := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		out[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromDeepSeekResponse(resp *deepseek.Response) *Response {
	parts := []Part{}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		if choice.Message.Content != "" {
			parts = append(parts, Part{Text: choice.Message.Content})
		}
		for _, tc := range choice.Message.ToolCalls {
			// Malformed arguments degrade to an empty map rather than
			// failing the whole turn.
			args := map[string]interface{}{}
			json.Unmarshal([]byte(tc.Function.Arguments), &args)
			parts = append(parts, Part{
				FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args},
			})
		}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: "deepseek",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
