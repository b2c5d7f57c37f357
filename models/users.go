package models

import "github.com/google/uuid"

// User represents a user in the system. The stored password is a bcrypt
// hash and is excluded from every serialized response.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	ProfileImage string    `json:"profile_image,omitempty"`
}

// CreateUserRequest is the payload accepted when registering a new user.
// ConfirmPassword is input-only and never persisted.
type CreateUserRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ProfileImage    string `json:"profile_image"`
}

// UpdateUserRequest carries a partial update. Fields left empty keep the
// values already stored for the user.
type UpdateUserRequest struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profile_image"`
}
