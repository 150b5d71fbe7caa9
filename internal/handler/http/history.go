package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

func (h *Handler) saveHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	if _, err := h.services.HistoryService.SaveSnapshot(ctx, userID, req); err != nil {
		log.Err(err).Str("city", req.City).Msg("snapshot save failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(), http.StatusOK)
}

// listHistory answers GET /api/history. Optional query parameters: "city"
// narrows to one city, "limit" caps the number of rows.
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	city := r.URL.Query().Get("city")

	var limit int
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			log.Error().Str("limit", rawLimit).Msg("invalid history limit")
			utils.WriteJSON(w, models.Fail("invalid history limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	snapshots, err := h.services.HistoryService.History(ctx, userID, city, limit)
	if err != nil {
		log.Err(err).Str("city", city).Msg("history listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{Response: models.OK(), History: snapshots}, http.StatusOK)
}
