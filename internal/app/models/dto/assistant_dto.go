package dto

// AssistantMessage is one turn of the assistant conversation. Role is
// "user", "model" or "system" (system entries are outcome reports appended
// by the portal after executing an action).
type AssistantMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// AssistantRequest carries the transcript so far plus the new user message.
// Conversation state lives with the caller; the server holds none.
type AssistantRequest struct {
	History []AssistantMessage `json:"history"`
	Message string             `json:"message" binding:"required"`
}

// AssistantResponse returns the new transcript entries produced by this
// turn. NavigateTo is set when the model called the navigate action; the
// client performs the actual page change.
type AssistantResponse struct {
	Messages   []AssistantMessage `json:"messages"`
	NavigateTo string             `json:"navigate_to,omitempty"`
}

// InterviewRequest asks the mock interviewer for questions about a role or
// company.
type InterviewRequest struct {
	Context string `json:"context" binding:"required"`
}

// InterviewResponse relays the provider's free-text reply.
type InterviewResponse struct {
	Response string `json:"response"`
}
