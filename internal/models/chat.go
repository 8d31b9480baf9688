package models

// ChatRole tags the author of a transcript turn
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single transcript turn
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatSession is a conversation scoped to one parable. The transcript is
// owned by the caller and only ever appended to.
type ChatSession struct {
	ID         string        `json:"id"`
	ParableID  string        `json:"parable_id"`
	Transcript []ChatMessage `json:"transcript"`
}
