package model

// ChatMessage is one line in the assistant conversation. The conversation is
// append-only and lives only as long as the chat screen.
type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp"`
}
