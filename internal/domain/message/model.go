package message

import (
	"time"

	"github.com/google/uuid"
)

// Role is the sender type of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidateRole reports whether input is a permitted message role.
func ValidateRole(input string) bool {
	switch Role(input) {
	case RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// DefaultListLimit bounds thread reads when the caller does not supply a
// limit, so a long conversation cannot blow up response size.
const DefaultListLimit = 50

// Message is a single transcript entry belonging to a conversation thread.
type Message struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Count holds per-role message totals for a thread. Total always equals
// UserMessages + AssistantMessages since no other role passes validation.
type Count struct {
	Total             int64 `json:"total"`
	UserMessages      int64 `json:"user_messages"`
	AssistantMessages int64 `json:"assistant_messages"`
}
