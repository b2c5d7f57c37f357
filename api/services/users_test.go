package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetAllUsersEmpty(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetAllUsers").Return(nil, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.GetAllUsers(context.Background())

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Empty table should still be a success")
	assert.Equal(t, []models.User{}, resp.Body, "Body should be an empty list, not nil")

	mockUsers.AssertExpectations(t)
}

func TestGetAllUsers(t *testing.T) {

	mockUsers := new(MockUserRepository)
	stored := []models.User{
		{ID: uuid.New(), Name: "Alice", Username: "alice", Email: "a@x.com"},
		{ID: uuid.New(), Name: "Bob", Username: "bob", Email: "b@x.com"},
	}
	mockUsers.On("GetAllUsers").Return(stored, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.GetAllUsers(context.Background())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, stored, resp.Body)

	mockUsers.AssertExpectations(t)
}

func TestGetAllUsersDatabaseError(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetAllUsers").Return(nil, assert.AnError)

	svc := &UserService{Users: mockUsers}

	resp := svc.GetAllUsers(context.Background())

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error.", resp.Body, "Internal error detail must not leak to the caller")
}

func TestGetUserByIDStripsPassword(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	stored := &models.User{
		ID:       userID,
		Name:     "Alice",
		Username: "alice",
		Email:    "a@x.com",
		Password: "$2a$10$somestoredhash",
	}
	mockUsers.On("GetUserByID", userID).Return(stored, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.GetUserByID(context.Background(), userID)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := json.Marshal(resp.Body)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &fields))
	assert.NotContains(t, fields, "password", "Password hash must never serialize")
	assert.Equal(t, "alice", fields["username"])

	mockUsers.AssertExpectations(t)
}

func TestGetUserByIDNotFound(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	mockUsers.On("GetUserByID", userID).Return(nil, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.GetUserByID(context.Background(), userID)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found.", resp.Body)
}

func TestAddUser(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockHasher := new(MockHasher)
	mockPublisher := new(MockEventPublisher)

	created := &models.User{ID: uuid.New(), Name: "Alice", Username: "alice", Email: "a@x.com", Password: "hashed-p1"}

	mockUsers.On("GetUserByEmail", "a@x.com").Return(nil, nil)
	mockUsers.On("GetUserByUsername", "alice").Return(nil, nil)
	mockHasher.On("Hash", "p1").Return("hashed-p1", nil)
	mockUsers.On("AddUser", mock.MatchedBy(func(u models.User) bool {
		return u.Username == "alice" && u.Email == "a@x.com" && u.Password == "hashed-p1"
	})).Return(created, nil)
	mockPublisher.On("Publish", mock.Anything).Return(nil)

	svc := &UserService{Users: mockUsers, Hasher: mockHasher, Events: mockPublisher}

	resp := svc.AddUser(context.Background(), models.CreateUserRequest{
		Name:            "Alice",
		Username:        "Alice",
		Email:           "a@x.com",
		Password:        "p1",
		ConfirmPassword: "p1",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully.", resp.Body)

	mockUsers.AssertExpectations(t)
	mockHasher.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestAddUserDuplicateEmail(t *testing.T) {

	mockUsers := new(MockUserRepository)
	existing := &models.User{ID: uuid.New(), Username: "other", Email: "a@x.com"}

	mockUsers.On("GetUserByEmail", "a@x.com").Return(existing, nil)
	mockUsers.On("GetUserByUsername", "newname").Return(nil, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.AddUser(context.Background(), models.CreateUserRequest{
		Username: "newname",
		Email:    "a@x.com",
		Password: "p2",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists.", resp.Body)

	// Both existence lookups run even though the first already conflicted
	mockUsers.AssertCalled(t, "GetUserByEmail", "a@x.com")
	mockUsers.AssertCalled(t, "GetUserByUsername", "newname")
	mockUsers.AssertNotCalled(t, "AddUser", mock.Anything)
}

func TestAddUserCaseInsensitiveUsername(t *testing.T) {

	mockUsers := new(MockUserRepository)
	existing := &models.User{ID: uuid.New(), Username: "alice", Email: "a@x.com"}

	mockUsers.On("GetUserByEmail", "b@x.com").Return(nil, nil)
	mockUsers.On("GetUserByUsername", "alice").Return(existing, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.AddUser(context.Background(), models.CreateUserRequest{
		Username: "Alice",
		Email:    "b@x.com",
		Password: "p2",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists.", resp.Body)
	mockUsers.AssertNotCalled(t, "AddUser", mock.Anything)
}

func TestAddUserUniqueViolation(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockHasher := new(MockHasher)

	mockUsers.On("GetUserByEmail", "a@x.com").Return(nil, nil)
	mockUsers.On("GetUserByUsername", "alice").Return(nil, nil)
	mockHasher.On("Hash", "p1").Return("hashed-p1", nil)
	mockUsers.On("AddUser", mock.Anything).Return(nil, &pq.Error{Code: "23505", Constraint: "users_email_key"})

	svc := &UserService{Users: mockUsers, Hasher: mockHasher}

	resp := svc.AddUser(context.Background(), models.CreateUserRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "p1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists.", resp.Body)
}

func TestUpdateUserNotFound(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	mockUsers.On("GetUserByID", userID).Return(nil, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{Name: "New Name"})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found.", resp.Body)
	mockUsers.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUserEmptyPayload(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockHasher := new(MockHasher)
	userID := uuid.New()
	existing := &models.User{
		ID:           userID,
		Name:         "Alice",
		Username:     "alice",
		Email:        "a@x.com",
		Password:     "storedhash",
		ProfileImage: "alice.png",
	}

	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockUsers.On("UpdateUser", userID, *existing).Return(nil)

	svc := &UserService{Users: mockUsers, Hasher: mockHasher}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User updated successfully.", resp.Body)

	// No field was set, so nothing is re-validated or rehashed
	mockUsers.AssertNotCalled(t, "GetUserByEmail", mock.Anything)
	mockUsers.AssertNotCalled(t, "GetUserByUsername", mock.Anything)
	mockHasher.AssertNotCalled(t, "Hash", mock.Anything)

	mockUsers.AssertExpectations(t)
}

func TestUpdateUserEmailConflict(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	existing := &models.User{ID: userID, Username: "alice", Email: "a@x.com"}
	other := &models.User{ID: uuid.New(), Username: "bob", Email: "b@x.com"}

	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockUsers.On("GetUserByEmail", "b@x.com").Return(other, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{Email: "b@x.com"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already in use.", resp.Body)
	mockUsers.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUserKeepsOwnEmail(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	existing := &models.User{ID: userID, Name: "Alice", Username: "alice", Email: "a@x.com", Password: "storedhash"}

	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockUsers.On("GetUserByEmail", "a@x.com").Return(existing, nil)
	mockUsers.On("UpdateUser", userID, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "a@x.com" && u.Name == "Renamed"
	})).Return(nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{
		Name:  "Renamed",
		Email: "a@x.com",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User updated successfully.", resp.Body)

	mockUsers.AssertExpectations(t)
}

func TestUpdateUserRehashesPassword(t *testing.T) {

	mockUsers := new(MockUserRepository)
	mockHasher := new(MockHasher)
	userID := uuid.New()
	existing := &models.User{ID: userID, Username: "alice", Email: "a@x.com", Password: "oldhash"}

	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockHasher.On("Hash", "newpass").Return("hashed-newpass", nil)
	mockUsers.On("UpdateUser", userID, mock.MatchedBy(func(u models.User) bool {
		return u.Password == "hashed-newpass" && u.Password != "newpass"
	})).Return(nil)

	svc := &UserService{Users: mockUsers, Hasher: mockHasher}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{Password: "newpass"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockUsers.AssertExpectations(t)
	mockHasher.AssertExpectations(t)
}

func TestUpdateUserUniqueViolationOnWrite(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	existing := &models.User{ID: userID, Username: "alice", Email: "a@x.com", Password: "storedhash"}

	// The pre-check sees no conflict but the write loses the race; the
	// unique index remains the source of truth.
	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockUsers.On("GetUserByUsername", "bob").Return(nil, nil)
	mockUsers.On("UpdateUser", userID, mock.Anything).
		Return(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	svc := &UserService{Users: mockUsers}

	resp := svc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{Username: "bob"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already in use.", resp.Body)
}

func TestRemoveUserNotFound(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	mockUsers.On("GetUserByID", userID).Return(nil, nil)

	svc := &UserService{Users: mockUsers}

	resp := svc.RemoveUser(context.Background(), userID)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found.", resp.Body)
	mockUsers.AssertNotCalled(t, "RemoveUser", mock.Anything)
}

func TestRemoveUser(t *testing.T) {

	mockUsers := new(MockUserRepository)
	userID := uuid.New()
	existing := &models.User{ID: userID, Username: "alice", Email: "a@x.com"}

	mockUsers.On("GetUserByID", userID).Return(existing, nil)
	mockUsers.On("RemoveUser", userID).Return(nil).Once()

	svc := &UserService{Users: mockUsers}

	resp := svc.RemoveUser(context.Background(), userID)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User deleted successfully.", resp.Body)

	mockUsers.AssertExpectations(t)
}
