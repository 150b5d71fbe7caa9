// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/models"
)

// Keyword date filters accepted by Reminders in place of a concrete
// "2006-01-02" date.
const (
	DateFilterToday    = "today"
	DateFilterTomorrow = "tomorrow"
)

// reminderService is the concrete implementation of ReminderService.
type reminderService struct {
	reminderRepository store.ReminderRepository
	logger             *logger.Logger

	// now is stubbed in tests to pin keyword date resolution.
	now func() time.Time
}

// NewReminderService constructs a ReminderService wired to the given
// repository.
func NewReminderService(reminderRepository store.ReminderRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		logger:             logger,
		now:                time.Now,
	}
}

// AddReminder validates and persists a new reminder for the user.
//
// Returns:
//   - ErrInvalidDataProvided if city or text is empty.
//   - ErrInvalidDateProvided if the date is not a valid "2006-01-02" value.
func (s *reminderService) AddReminder(ctx context.Context, userID int64, req models.AddReminderRequest) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if req.City == "" || req.Text == "" {
		log.Error().Int64("id", userID).Msg("invalid reminder data provided")
		return models.Reminder{}, ErrInvalidDataProvided
	}
	if _, err := time.Parse(models.SnapshotDateFormat, req.Date); err != nil {
		log.Error().Int64("id", userID).Str("date", req.Date).Msg("invalid reminder date provided")
		return models.Reminder{}, ErrInvalidDateProvided
	}

	reminder, err := s.reminderRepository.Add(ctx, models.Reminder{
		UserID: userID,
		City:   req.City,
		Text:   req.Text,
		Date:   req.Date,
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("reminder creation failed")
		return models.Reminder{}, fmt.Errorf("reminder creation failed: %w", err)
	}

	return reminder, nil
}

// Reminders lists the user's reminders. dateFilter may be empty (all
// reminders), a concrete "2006-01-02" date, or one of the keywords "today"
// and "tomorrow" resolved against the local wall clock.
func (s *reminderService) Reminders(ctx context.Context, userID int64, dateFilter string) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	date, err := s.resolveDateFilter(dateFilter)
	if err != nil {
		log.Error().Int64("id", userID).Str("date", dateFilter).Msg("invalid reminder date filter")
		return nil, err
	}

	reminders, err := s.reminderRepository.List(ctx, userID, date)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("reminder listing failed")
		return nil, fmt.Errorf("reminder listing failed: %w", err)
	}

	return reminders, nil
}

// DeleteReminder removes the reminder if it belongs to the user. Unknown or
// foreign reminder ids are a silent no-op.
func (s *reminderService) DeleteReminder(ctx context.Context, userID int64, reminderID int64) error {
	log := logger.FromContext(ctx)

	if err := s.reminderRepository.Delete(ctx, userID, reminderID); err != nil {
		log.Err(err).Int64("id", userID).Int64("reminder_id", reminderID).Msg("reminder deletion failed")
		return fmt.Errorf("reminder deletion failed: %w", err)
	}

	return nil
}

func (s *reminderService) resolveDateFilter(dateFilter string) (string, error) {
	switch dateFilter {
	case "":
		return "", nil
	case DateFilterToday:
		return models.SnapshotDate(s.now()), nil
	case DateFilterTomorrow:
		return models.SnapshotDate(s.now().AddDate(0, 0, 1)), nil
	}

	if _, err := time.Parse(models.SnapshotDateFormat, dateFilter); err != nil {
		return "", ErrInvalidDateProvided
	}
	return dateFilter, nil
}
