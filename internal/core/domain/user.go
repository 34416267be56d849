package domain

import "time"

// User is the authenticated owner of tasks and preferences. The ID is an
// opaque identifier; everything task-related is scoped to it.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	ExpiresIn int64
	User      User
}
