package store

import (
	"context"
	"fmt"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

// reminderRepository is the SQL-backed implementation of [ReminderRepository]
// against the "reminders" table. Reminders are immutable once created; the
// only mutation is deletion.
type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by the
// provided database connection and logger.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// Add persists a new reminder and returns it with server-assigned fields
// (ID, CreatedAt) filled in.
//
// Error handling:
//   - foreign key violation (unknown user) → [ErrUserNotFound].
func (r *reminderRepository) Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReminder, reminder.UserID, reminder.City, reminder.Text, reminder.Date)

	if err := row.Scan(&reminder.ID, &reminder.CreatedAt); err != nil {
		log.Err(err).Str("func", "*reminderRepository.Add").Msg("error: inserting reminder")

		if isForeignKeyViolation(err) {
			return models.Reminder{}, ErrUserNotFound
		}
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reminder, nil
}

// List returns the user's reminders ordered by due date. A non-empty date
// ("2006-01-02") narrows the result to reminders due on that day.
func (r *reminderRepository) List(ctx context.Context, userID int64, date string) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRemindersQuery(userID, date)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.List").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(&reminder.ID, &reminder.UserID, &reminder.City, &reminder.Text, &reminder.Date, &reminder.CreatedAt); err != nil {
			log.Err(err).Str("func", "*reminderRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

// Delete removes the reminder with the given id if it belongs to userID.
// Deleting a reminder that does not exist (or belongs to another user) is a
// no-op, so the operation is idempotent.
func (r *reminderRepository) Delete(ctx context.Context, userID int64, reminderID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteReminder, reminderID, userID); err != nil {
		log.Err(err).Str("func", "*reminderRepository.Delete").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
