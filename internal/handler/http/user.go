package http

import (
	"encoding/json"
	"net/http"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

func (h *Handler) city(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	city, err := h.services.AuthService.City(ctx, userID)
	if err != nil {
		log.Err(err).Msg("city lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CityResponse{Response: models.OK(), City: city}, http.StatusOK)
}

func (h *Handler) updateCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.UpdateCity(ctx, userID, req.City); err != nil {
		log.Err(err).Str("city", req.City).Msg("city update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(), http.StatusOK)
}
