package requests

// CreateMessageRequest represents a request to append one message to a thread.
type CreateMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ListMessagesQuery carries thread listing parameters.
type ListMessagesQuery struct {
	Limit int `form:"limit"`
}
