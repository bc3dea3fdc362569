package session

// Message is one stored conversation turn. Image replies carry their
// metadata so the history can be replayed to the UI.
type Message struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Type     string `json:"type,omitempty"` // "image" for generated images
	ImageURL string `json:"image_url,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Service  string `json:"service,omitempty"`
}

// Session holds the conversation history for one client
type Session struct {
	ID       string
	Messages []Message
}
