package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {

	w := httptest.NewRecorder()
	WriteResponse(w, models.Response{StatusCode: http.StatusCreated, Body: "User created successfully."})

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var body string
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "User created successfully.", body)
}

func TestWriteResponseNoBody(t *testing.T) {

	w := httptest.NewRecorder()
	WriteResponse(w, models.Response{StatusCode: http.StatusNoContent})

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Zero(t, w.Body.Len())
}

func TestIsUniqueViolation(t *testing.T) {

	pqErr := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	assert.True(t, IsUniqueViolation(pqErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("failed to execute query: %w", pqErr)), "Wrapped errors must still match")
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(assert.AnError))
	assert.False(t, IsUniqueViolation(nil))
}

func TestUniqueViolationMessage(t *testing.T) {

	emailErr := fmt.Errorf("failed to execute query: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"})
	usernameErr := &pq.Error{Code: "23505", Constraint: "users_username_key"}
	unknownErr := &pq.Error{Code: "23505", Constraint: "users_pkey"}

	assert.Equal(t, "Email already in use.", uniqueViolationMessage(emailErr))
	assert.Equal(t, "Username already in use.", uniqueViolationMessage(usernameErr))
	assert.Equal(t, "User already exists.", uniqueViolationMessage(unknownErr))
}
