package domain

import "time"

// Blog is a published editorial post. The legacy platform carried two
// near-identical entities (Blog and BlogPost); they are unified here into
// one type backed by a single collection.
type Blog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Author     string    `json:"author,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	Picture    string    `json:"picture,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
