package http

import (
	"encoding/json"
	"net/http"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	settings := models.UserSettings{
		UserID:   userID,
		Theme:    req.Theme,
		Language: req.Language,
	}
	if err := h.services.SettingsService.UpdateSettings(ctx, settings); err != nil {
		log.Err(err).Msg("settings update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(), http.StatusOK)
}
