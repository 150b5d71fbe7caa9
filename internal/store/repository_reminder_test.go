package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

func newTestReminderRepo(t *testing.T) (*reminderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &reminderRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestReminderAdd_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()
	reminder := models.Reminder{
		UserID: 1,
		City:   "Kyiv",
		Text:   "take an umbrella",
		Date:   "2026-08-30",
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO reminders").
		WithArgs(reminder.UserID, reminder.City, reminder.Text, reminder.Date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	created, err := repo.Add(ctx, reminder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Text != reminder.Text {
		t.Errorf("expected text preserved, got %s", created.Text)
	}
}

func TestReminderAdd_UnknownUser(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO reminders").
		WillReturnError(sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintForeignKey,
		})

	_, err := repo.Add(ctx, models.Reminder{UserID: 42})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReminderList_All(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "city", "text", "date", "created_at"}).
		AddRow(1, 1, "Kyiv", "take an umbrella", "2026-08-30", now).
		AddRow(2, 1, "Lviv", "warm coat", "2026-08-31", now)

	mock.ExpectQuery("SELECT id, user_id, city, text, date, created_at FROM reminders").
		WithArgs(1).
		WillReturnRows(rows)

	reminders, err := repo.List(ctx, 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(reminders))
	}
	if reminders[0].City != "Kyiv" {
		t.Errorf("expected first reminder for Kyiv, got %s", reminders[0].City)
	}
}

func TestReminderList_FilteredByDate(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "city", "text", "date", "created_at"}).
		AddRow(2, 1, "Lviv", "warm coat", "2026-08-31", time.Now())

	mock.ExpectQuery("SELECT id, user_id, city, text, date, created_at FROM reminders").
		WithArgs(1, "2026-08-31").
		WillReturnRows(rows)

	reminders, err := repo.List(ctx, 1, "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}
	if reminders[0].Date != "2026-08-31" {
		t.Errorf("expected date filter applied, got %s", reminders[0].Date)
	}
}

func TestReminderList_Empty(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, city, text, date, created_at FROM reminders").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city", "text", "date", "created_at"}))

	reminders, err := repo.List(ctx, 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reminders == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(reminders) != 0 {
		t.Fatalf("expected no reminders, got %d", len(reminders))
	}
}

func TestReminderDelete_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM reminders").
		WithArgs(7, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx, 1, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReminderDelete_MissingIsNoOp(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM reminders").
		WithArgs(99, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(ctx, 1, 99); err != nil {
		t.Fatalf("expected no-op delete to succeed, got %v", err)
	}
}

func TestReminderDelete_DBError(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM reminders").
		WillReturnError(errors.New("db failure"))

	err := repo.Delete(ctx, 1, 7)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestReminderAdd_UnknownUserPostgres(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO reminders").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Add(ctx, models.Reminder{UserID: 42})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
