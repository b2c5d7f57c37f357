package services

import (
	"github.com/google/uuid"
	"github.com/peoplehub/peoplehub-services/internal/events"
	"github.com/peoplehub/peoplehub-services/internal/hasher"
	"github.com/peoplehub/peoplehub-services/models"
)

// UserRepository adapts the persistence layer for user records. Absence is
// reported as a nil user, not an error; the repository performs no
// validation.
type UserRepository interface {
	GetAllUsers() ([]models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	AddUser(user models.User) (*models.User, error)
	UpdateUser(id uuid.UUID, user models.User) error
	RemoveUser(id uuid.UUID) error
}

// GroupRepository adapts the persistence layer for group records.
type GroupRepository interface {
	GetAllGroups() ([]models.Group, error)
	GetGroupByAdminID(userID uuid.UUID) (*models.Group, error)
	CreateGroup(name string, userID uuid.UUID) (*models.Group, error)
}

// UserService orchestrates user repository calls, applying validation and
// password hashing, and shapes every outcome into a response envelope.
type UserService struct {
	Users  UserRepository
	Hasher hasher.Hasher
	Events events.Publisher
}

// GroupService orchestrates group repository calls.
type GroupService struct {
	Groups GroupRepository
	Events events.Publisher
}
