package handlers

import (
	"encoding/json"
	"net/http"

	services "github.com/peoplehub/peoplehub-services/api/services"
	"github.com/peoplehub/peoplehub-services/models"
	"github.com/rs/zerolog"
)

func GetGroups(svc *services.GroupService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.WriteResponse(w, svc.GetAllGroups(r.Context()))
	}
}

func GetGroupByAdmin(svc *services.GroupService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		services.WriteResponse(w, svc.GetGroupByAdminID(r.Context(), userID))
	}
}

func CreateGroup(svc *services.GroupService) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		var payload models.CreateGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Invalid request payload")
			services.WriteResponse(w, models.Response{StatusCode: http.StatusBadRequest, Body: "Invalid request payload."})
			return
		}

		services.WriteResponse(w, svc.CreateGroup(r.Context(), payload))
	}
}
