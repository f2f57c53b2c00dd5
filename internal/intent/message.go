package intent

import "strings"

// Message roles mirror the wire format the chat widget sends.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of the conversation. The caller supplies the whole
// transcript on every request; nothing is retained server-side between calls.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserText joins all user messages, lowercased, oldest first. Keyword and
// contact extraction operate on this flattened view.
func UserText(messages []Message) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role == RoleUser {
			parts = append(parts, strings.ToLower(msg.Content))
		}
	}
	return strings.Join(parts, " ")
}

// LatestUserMessage returns the most recent user message, if any.
func LatestUserMessage(messages []Message) (Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i], true
		}
	}
	return Message{}, false
}
