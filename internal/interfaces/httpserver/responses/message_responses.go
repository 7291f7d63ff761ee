package responses

import (
	"time"

	"caresma-server/internal/domain/message"
)

// MessagePayload is the wire form of a transcript message.
type MessagePayload struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageFromDomain maps the domain message to DTO.
func MessageFromDomain(m *message.Message) MessagePayload {
	return MessagePayload{
		ID:        m.ID.String(),
		ThreadID:  m.ThreadID.String(),
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// MessageListResponse wraps thread messages for consistent responses.
type MessageListResponse struct {
	Data []MessagePayload `json:"data"`
}

// MessagesFromDomain maps a message slice to its list response.
func MessagesFromDomain(msgs []*message.Message) MessageListResponse {
	data := make([]MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		data = append(data, MessageFromDomain(m))
	}
	return MessageListResponse{Data: data}
}
