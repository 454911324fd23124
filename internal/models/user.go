package models

import "time"

// User represents a user account record.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	FullName          string
	Bio               string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	IsActive          bool
}

// CreateUserRequest carries the fields a client supplies when registering a
// user. The raw password is hashed before the record is persisted.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the subset of user fields eligible for partial
// update. Identity, credentials and the activation flag are never updatable.
type UpdateUserRequest struct {
	FullName          *string `json:"fullName"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// UserView is the outbound projection of a User. The password hash is never
// part of it.
type UserView struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
	IsActive          bool   `json:"isActive"`
}
