// Package coach holds the request payloads of the coaching endpoints.
package coach

// SubmitTurnRequest is the body of POST /v1/coach/turns.
type SubmitTurnRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
	UserID         string `json:"user_id"`
}
