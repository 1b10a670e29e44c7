package domain

import "time"

// ActivityKind tags an activity feed entry with its source entity.
type ActivityKind string

const (
	ActivityRecipe  ActivityKind = "recipe"
	ActivityComment ActivityKind = "comment"
	ActivityUser    ActivityKind = "user"
)

// ActivityItem is a transient projection used only inside the recent
// activity feed; it is never persisted. Exactly one group of fields is
// populated depending on Kind.
type ActivityItem struct {
	Kind ActivityKind `json:"type"`

	// Kind == ActivityRecipe
	Title string `json:"title,omitempty"`

	// Kind == ActivityComment
	Content    string `json:"content,omitempty"`
	AuthorName string `json:"author_name,omitempty"`

	// Kind == ActivityUser
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
