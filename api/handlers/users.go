package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	services "github.com/peoplehub/peoplehub-services/api/services"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/rs/zerolog"
)

func GetUsers(svc *services.UserService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.WriteResponse(w, svc.GetAllUsers(r.Context()))
	}
}

func GetUser(svc *services.UserService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		services.WriteResponse(w, svc.GetUserByID(r.Context(), userID))
	}
}

func CreateUser(svc *services.UserService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		var payload models.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Invalid request payload")
			services.WriteResponse(w, models.Response{StatusCode: http.StatusBadRequest, Body: "Invalid request payload."})
			return
		}

		services.WriteResponse(w, svc.AddUser(r.Context(), payload))
	}
}

func UpdateUser(svc *services.UserService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		var payload models.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Invalid request payload")
			services.WriteResponse(w, models.Response{StatusCode: http.StatusBadRequest, Body: "Invalid request payload."})
			return
		}

		services.WriteResponse(w, svc.UpdateUser(r.Context(), userID, payload))
	}
}

func DeleteUser(svc *services.UserService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		services.WriteResponse(w, svc.RemoveUser(r.Context(), userID))
	}
}

// parseUserID extracts the user id path variable, writing a 400 envelope on
// a malformed id.
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(mux.Vars(r)["user-id"])
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Invalid user ID")
		services.WriteResponse(w, models.Response{StatusCode: http.StatusBadRequest, Body: "Invalid user ID."})
		return uuid.Nil, false
	}
	return userID, true
}
