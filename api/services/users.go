package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehub/peoplehub-services/internal/events"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/rs/zerolog"
)

// GetAllUsers retrieves every user. An empty table is a success with an
// empty list, not an error.
func (s *UserService) GetAllUsers(ctx context.Context) models.Response {
	logger := zerolog.Ctx(ctx)

	users, err := s.Users.GetAllUsers()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users from database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	// Ensure users is not nil, return an empty slice if no users are found
	if users == nil {
		users = []models.User{}
	}

	logger.Info().Int("user_count", len(users)).Msg("Successfully retrieved users")
	return models.Response{StatusCode: http.StatusOK, Body: users}
}

// GetUserByID retrieves a single user. The password hash never appears in
// the body.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) models.Response {
	logger := zerolog.Ctx(ctx)

	user, err := s.Users.GetUserByID(id)
	if err != nil {
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Database error retrieving user")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	if user == nil {
		logger.Warn().Str("user_id", id.String()).Msg("User not found")
		return models.Response{StatusCode: http.StatusNotFound, Body: "User not found."}
	}

	return models.Response{StatusCode: http.StatusOK, Body: *user}
}

// AddUser validates that the email and username are unused, hashes the
// password and persists the new user.
func (s *UserService) AddUser(ctx context.Context, data models.CreateUserRequest) models.Response {
	logger := zerolog.Ctx(ctx)

	username := strings.ToLower(data.Username)

	// Both lookups run regardless of the first result; the caller is never
	// told which field conflicted.
	byEmail, emailErr := s.Users.GetUserByEmail(data.Email)
	byUsername, usernameErr := s.Users.GetUserByUsername(username)
	if emailErr != nil || usernameErr != nil {
		logger.Error().AnErr("email_lookup", emailErr).AnErr("username_lookup", usernameErr).
			Msg("Database error checking user existence")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	if byEmail != nil || byUsername != nil {
		logger.Warn().Str("email", data.Email).Str("username", username).Msg("User already exists")
		return models.Response{StatusCode: http.StatusBadRequest, Body: "User already exists."}
	}

	hashed, err := s.Hasher.Hash(data.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	user := models.User{
		Name:         data.Name,
		Username:     username,
		Email:        data.Email,
		Password:     hashed,
		ProfileImage: data.ProfileImage,
	}

	created, err := s.Users.AddUser(user)
	if err != nil {
		// The unique indexes are the source of truth; the pre-checks above
		// only produce the friendlier message.
		if IsUniqueViolation(err) {
			logger.Warn().Err(err).Msg("Unique constraint rejected new user")
			return models.Response{StatusCode: http.StatusBadRequest, Body: "User already exists."}
		}
		logger.Error().Err(err).Msg("Failed to create user in database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	logger.Info().Str("user_id", created.ID.String()).Msg("User created successfully")
	s.publish(logger, created.ID, "create")

	return models.Response{StatusCode: http.StatusCreated, Body: "User created successfully."}
}

// UpdateUser applies a partial update: set fields are validated for
// uniqueness against other users, a set password is rehashed, and unset
// fields keep their stored values.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, data models.UpdateUserRequest) models.Response {
	logger := zerolog.Ctx(ctx)

	existing, err := s.Users.GetUserByID(id)
	if err != nil {
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Database error retrieving user")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}
	if existing == nil {
		logger.Warn().Str("user_id", id.String()).Msg("User not found")
		return models.Response{StatusCode: http.StatusNotFound, Body: "User not found."}
	}

	username := strings.ToLower(data.Username)

	// Email is checked first; a conflict only counts when the record
	// belongs to a different user.
	if data.Email != "" {
		byEmail, err := s.Users.GetUserByEmail(data.Email)
		if err != nil {
			logger.Error().Err(err).Msg("Database error checking email")
			return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
		}
		if byEmail != nil && byEmail.ID != id {
			logger.Warn().Str("email", data.Email).Msg("Email already in use")
			return models.Response{StatusCode: http.StatusBadRequest, Body: "Email already in use."}
		}
	}
	if data.Username != "" {
		byUsername, err := s.Users.GetUserByUsername(username)
		if err != nil {
			logger.Error().Err(err).Msg("Database error checking username")
			return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
		}
		if byUsername != nil && byUsername.ID != id {
			logger.Warn().Str("username", username).Msg("Username already in use")
			return models.Response{StatusCode: http.StatusBadRequest, Body: "Username already in use."}
		}
	}

	password := existing.Password
	if data.Password != "" {
		password, err = s.Hasher.Hash(data.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash password")
			return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
		}
	}

	merged := models.User{
		ID:           id,
		Name:         orStored(data.Name, existing.Name),
		Username:     orStored(username, existing.Username),
		Email:        orStored(data.Email, existing.Email),
		Password:     password,
		ProfileImage: orStored(data.ProfileImage, existing.ProfileImage),
	}

	if err := s.Users.UpdateUser(id, merged); err != nil {
		if IsUniqueViolation(err) {
			logger.Warn().Err(err).Msg("Unique constraint rejected user update")
			return models.Response{StatusCode: http.StatusBadRequest, Body: uniqueViolationMessage(err)}
		}
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Failed to update user in database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	logger.Info().Str("user_id", id.String()).Msg("User updated successfully")
	s.publish(logger, id, "update")

	return models.Response{StatusCode: http.StatusOK, Body: "User updated successfully."}
}

// RemoveUser deletes an existing user.
func (s *UserService) RemoveUser(ctx context.Context, id uuid.UUID) models.Response {
	logger := zerolog.Ctx(ctx)

	existing, err := s.Users.GetUserByID(id)
	if err != nil {
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Database error retrieving user")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}
	if existing == nil {
		logger.Warn().Str("user_id", id.String()).Msg("User not found")
		return models.Response{StatusCode: http.StatusNotFound, Body: "User not found."}
	}

	if err := s.Users.RemoveUser(id); err != nil {
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Failed to delete user from database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	logger.Info().Str("user_id", id.String()).Msg("User deleted successfully")
	s.publish(logger, id, "delete")

	return models.Response{StatusCode: http.StatusOK, Body: "User deleted successfully."}
}

// publish emits a user lifecycle event. Publish failures never alter the
// response.
func (s *UserService) publish(logger *zerolog.Logger, id uuid.UUID, action string) {
	if s.Events == nil {
		return
	}

	event := events.Event{
		Entity:    "user",
		EntityID:  id,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}
	if err := s.Events.Publish(event); err != nil {
		logger.Warn().Err(err).Str("action", action).Msg("Failed to publish user event")
	}
}

// orStored falls back to the stored value for a field the payload left
// unset.
func orStored(incoming, stored string) string {
	if incoming == "" {
		return stored
	}
	return incoming
}
