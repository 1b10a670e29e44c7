package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrBlogNotFound   = errors.New("blog not found")

	ErrInvalidStatus = errors.New("invalid recipe status")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidTags   = errors.New("invalid tags payload")

	// ErrInvalidCredentials is returned on login failure and on a password
	// change with a wrong current password. Deliberately distinct from
	// ErrUserNotFound so account existence is not enumerable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)
