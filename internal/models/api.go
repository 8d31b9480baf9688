package models

// ParableListResponse is the response for the filtered parable list
type ParableListResponse struct {
	Query    string    `json:"query"`
	Gospel   string    `json:"gospel"`
	Count    int       `json:"count"`
	Results  []Parable `json:"results"`
	Selected Parable   `json:"selected"`
}

// ParableDetailResponse is a parable with its catalog neighbours
type ParableDetailResponse struct {
	Parable  Parable  `json:"parable"`
	Previous *Parable `json:"previous,omitempty"`
	Next     *Parable `json:"next,omitempty"`
}

// ChatRequest is the request for a chat turn
type ChatRequest struct {
	Session *ChatSession `json:"session,omitempty"`
	Message string       `json:"message" validate:"required"`
}

// ChatResponse is the response for a chat turn
type ChatResponse struct {
	Session ChatSession `json:"session"`
	Reply   string      `json:"reply"`
}
