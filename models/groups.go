package models

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a group in the system. UserID identifies the
// administrator owning the group; an admin owns at most one group.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGroupRequest is the payload accepted when creating a group.
type CreateGroupRequest struct {
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"userId"`
}
