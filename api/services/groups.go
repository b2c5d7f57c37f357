package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehub/peoplehub-services/internal/events"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/rs/zerolog"
)

// GetAllGroups retrieves every group.
func (s *GroupService) GetAllGroups(ctx context.Context) models.Response {
	logger := zerolog.Ctx(ctx)

	groups, err := s.Groups.GetAllGroups()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve groups from database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	if groups == nil {
		groups = []models.Group{}
	}

	logger.Info().Int("group_count", len(groups)).Msg("Successfully retrieved groups")
	return models.Response{StatusCode: http.StatusOK, Body: groups}
}

// GetGroupByAdminID retrieves the group owned by the given admin user.
func (s *GroupService) GetGroupByAdminID(ctx context.Context, userID uuid.UUID) models.Response {
	logger := zerolog.Ctx(ctx)

	group, err := s.Groups.GetGroupByAdminID(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Database error retrieving group")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	if group == nil {
		logger.Warn().Str("user_id", userID.String()).Msg("Group not found")
		return models.Response{StatusCode: http.StatusNotFound, Body: "Group not found."}
	}

	return models.Response{StatusCode: http.StatusOK, Body: *group}
}

// CreateGroup creates a group owned by the given admin. An admin owns at
// most one group.
func (s *GroupService) CreateGroup(ctx context.Context, data models.CreateGroupRequest) models.Response {
	logger := zerolog.Ctx(ctx)

	if data.Name == "" || data.UserID == uuid.Nil {
		return models.Response{StatusCode: http.StatusBadRequest, Body: "Name and userId are required."}
	}

	existing, err := s.Groups.GetGroupByAdminID(data.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error checking group existence")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}
	if existing != nil {
		logger.Warn().Str("user_id", data.UserID.String()).Msg("Admin already owns a group")
		return models.Response{StatusCode: http.StatusBadRequest, Body: "Admin already owns a group."}
	}

	group, err := s.Groups.CreateGroup(data.Name, data.UserID)
	if err != nil {
		if IsUniqueViolation(err) {
			logger.Warn().Err(err).Msg("Unique constraint rejected new group")
			return models.Response{StatusCode: http.StatusBadRequest, Body: "Admin already owns a group."}
		}
		logger.Error().Err(err).Msg("Failed to create group in database")
		return models.Response{StatusCode: http.StatusInternalServerError, Body: internalErrorMessage}
	}

	logger.Info().Str("group_id", group.ID.String()).Msg("Group created successfully")
	if s.Events != nil {
		event := events.Event{
			Entity:    "group",
			EntityID:  group.ID,
			Action:    "create",
			Timestamp: time.Now().Unix(),
		}
		if err := s.Events.Publish(event); err != nil {
			logger.Warn().Err(err).Msg("Failed to publish group event")
		}
	}

	return models.Response{StatusCode: http.StatusCreated, Body: *group}
}
