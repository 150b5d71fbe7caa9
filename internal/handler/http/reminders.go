package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

func (h *Handler) addReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	reminder, err := h.services.ReminderService.AddReminder(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("reminder creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ReminderAddedResponse{Response: models.OK(), ID: reminder.ID}, http.StatusOK)
}

// listReminders answers GET /api/reminders. The optional "date" query
// parameter accepts a concrete "2006-01-02" date or the keywords "today" and
// "tomorrow".
func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	dateFilter := r.URL.Query().Get("date")

	reminders, err := h.services.ReminderService.Reminders(ctx, userID, dateFilter)
	if err != nil {
		log.Err(err).Str("date", dateFilter).Msg("reminder listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RemindersResponse{Response: models.OK(), Reminders: reminders}, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	reminderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid reminder id")
		utils.WriteJSON(w, models.Fail("invalid reminder id"), http.StatusBadRequest)
		return
	}

	if err := h.services.ReminderService.DeleteReminder(ctx, userID, reminderID); err != nil {
		log.Err(err).Int64("reminder_id", reminderID).Msg("reminder deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(), http.StatusOK)
}
