// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, city)
	VALUES ($1, $2, $3, $4)
	RETURNING id, username, email, password_hash, city, created_at;`

	createDefaultSettings = `INSERT INTO user_settings (user_id, theme, language)
	VALUES ($1, $2, $3);`

	findUserByEmail = `SELECT id, username, email, password_hash, city, created_at
	FROM users
	WHERE email = $1;`

	getUserCity = `SELECT city
	FROM users
	WHERE id = $1;`

	updateUserCity = `UPDATE users
	SET city = $1
	WHERE id = $2;`

	getSettings = `SELECT user_id, theme, language
	FROM user_settings
	WHERE user_id = $1;`

	upsertSettings = `INSERT INTO user_settings (user_id, theme, language)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE SET
		theme    = excluded.theme,
		language = excluded.language;`

	createReminder = `INSERT INTO reminders (user_id, city, text, date)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at;`

	deleteReminder = `DELETE FROM reminders
	WHERE id = $1 AND user_id = $2;`

	upsertSnapshot = `INSERT INTO weather_history (user_id, city, date, temp, description, icon, humidity, wind)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (user_id, city, date) DO UPDATE SET
		temp        = excluded.temp,
		description = excluded.description,
		icon        = excluded.icon,
		humidity    = excluded.humidity,
		wind        = excluded.wind
	RETURNING id, user_id, city, date, temp, description, icon, humidity, wind, created_at;`
)

// psql builds queries with $N placeholders, matching the static query
// constants above. Both supported drivers accept this format.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListRemindersQuery builds the reminder listing query: latest due date
// first, newest entry first within a day. A non-empty date narrows the result
// to reminders due on that day.
func buildListRemindersQuery(userID int64, date string) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "city", "text", "date", "created_at").
		From("reminders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")

	if date != "" {
		builder = builder.Where(sq.Eq{"date": date})
	}

	return builder.ToSql()
}

// buildListSnapshotsQuery builds the history listing query: newest days
// first, newest row first within a day, optionally narrowed to a single
// city, capped at limit rows.
func buildListSnapshotsQuery(userID int64, city string, limit int) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "city", "date", "temp", "description", "icon", "humidity", "wind", "created_at").
		From("weather_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit))

	if city != "" {
		builder = builder.Where(sq.Eq{"city": city})
	}

	return builder.ToSql()
}
