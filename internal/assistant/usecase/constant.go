package usecase

const (
	// defaultHistoryLimit bounds history reads for chat grounding and the
	// history endpoint.
	defaultHistoryLimit = 50

	// routerHistoryWindow is how many recent messages the semantic router
	// sees when classifying.
	routerHistoryWindow = 6
)

// errorTurnReply closes a turn whose real reply could not be persisted, so
// the log never shows an unanswered user message.
const errorTurnReply = "Something went wrong while saving my reply. Please ask me again."
