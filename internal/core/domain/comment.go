package domain

import "time"

// Comment is a reader comment on a recipe. Read-only from the admin API's
// perspective. Author and Recipe are weak references: the target may have
// been deleted, in which case the resolved name/title is empty.
type Comment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	Recipe      string    `json:"recipe,omitempty"`
	RecipeTitle string    `json:"recipe_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
