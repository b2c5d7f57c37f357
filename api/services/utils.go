package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"
	"github.com/peoplehub/peoplehub-services/models"
)

const uniqueViolation = "23505"

// internalErrorMessage is the only error text a caller ever sees for an
// unexpected failure. The cause is logged server-side and correlated via
// the X-Request-ID response header.
const internalErrorMessage = "Internal server error."

// WriteResponse writes the envelope's status code and encodes its body.
func WriteResponse(w http.ResponseWriter, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most current data
	w.Header().Set("Cache-Control", "max-age=0")

	w.WriteHeader(resp.StatusCode)

	if resp.Body != nil {
		if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// IsUniqueViolation reports whether err was caused by a violated unique
// constraint in the store.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

// ViolatedConstraint returns the name of the unique constraint that caused
// err, or an empty string.
func ViolatedConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return pqErr.Constraint
	}
	return ""
}

// uniqueViolationMessage maps a violated constraint on the users table to
// the field-specific message used by update validation.
func uniqueViolationMessage(err error) string {
	constraint := ViolatedConstraint(err)
	switch {
	case strings.Contains(constraint, "email"):
		return "Email already in use."
	case strings.Contains(constraint, "username"):
		return "Username already in use."
	default:
		return "User already exists."
	}
}
