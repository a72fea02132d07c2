package router

import "compliance-assistant/internal/model"

// RouterOutput is the structured response from the semantic router
type RouterOutput struct {
	Intent     string                 `json:"intent"`
	Confidence int                    `json:"confidence"` // 0-100
	Entities   map[string]interface{} `json:"entities,omitempty"`
	Reasoning  string                 `json:"reasoning"` // Optional: Why this intent was chosen
}

// Hint converts the router output into the classifier's hint shape,
// rescaling confidence from 0-100 to [0,1].
func (o RouterOutput) Hint() *model.NLPHint {
	confidence := float64(o.Confidence) / 100
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return &model.NLPHint{
		Intent:     model.IntentName(o.Intent),
		Confidence: confidence,
		Entities:   o.Entities,
	}
}
