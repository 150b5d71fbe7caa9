package http

import (
	"errors"
	"net/http"

	"github.com/okramarenko/meteostation/internal/service"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidDateProvided:     http.StatusBadRequest,
	service.ErrInvalidLoginPassword:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrReminderNotFound:  http.StatusNotFound,
	store.ErrSnapshotNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError converts err into the failure envelope and the matching HTTP
// status. Internal failures are masked behind a generic message so storage
// details never cross the boundary.
func writeError(w http.ResponseWriter, err error) {
	status, matched := statusFromError(err)

	message := http.StatusText(http.StatusInternalServerError)
	if matched != nil && status < http.StatusInternalServerError {
		message = matched.Error()
	}

	utils.WriteJSON(w, models.Fail(message), status)
}
