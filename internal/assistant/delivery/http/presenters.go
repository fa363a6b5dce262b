package http

// chatReq carries the user's conversational message. The session groups
// turns for conversation memory; it is optional.
type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}
