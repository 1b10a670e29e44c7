package domain

import "time"

// RecipeStatus is the moderation lifecycle state of a recipe.
type RecipeStatus string

const (
	StatusPending  RecipeStatus = "pending"
	StatusApproved RecipeStatus = "approved"
	StatusRejected RecipeStatus = "rejected"
)

// Valid reports whether s is one of the enumerated moderation states.
// Re-transitions are unrestricted: an approved recipe may go back to
// pending or rejected.
func (s RecipeStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Recipe is a submitted recipe under moderation. Status and Featured are
// independent axes: neither mutation touches the other.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	CreatedBy   string       `json:"created_by,omitempty"`
	CreatorName string       `json:"creator_name,omitempty"`
	Status      RecipeStatus `json:"status"`
	Featured    bool         `json:"featured"`
	Views       int64        `json:"views"`
	CreatedAt   time.Time    `json:"created_at"`
}

// RecipeStat is the title/views projection used by the dashboard top list.
type RecipeStat struct {
	Title string `json:"title"`
	Views int64  `json:"views"`
}
