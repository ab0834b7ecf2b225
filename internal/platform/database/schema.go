package database

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables and unique indexes if they are missing.
// Uniqueness of username, email and ticket title lives here, in the store,
// so concurrent writers cannot both slip past an application-level check.
// BanList.id intentionally carries no constraint; ids are caller-chosen
// and duplicates are allowed.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS "UserData" (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'basic',
			profile_picture TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL DEFAULT 0,
			CONSTRAINT userdata_username_key UNIQUE (username),
			CONSTRAINT userdata_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS "TicketData" (
			id SERIAL PRIMARY KEY,
			userid INTEGER NOT NULL,
			title TEXT NOT NULL,
			data TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			date_time TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT ticketdata_title_key UNIQUE (title)
		)`,
		`CREATE TABLE IF NOT EXISTS "CommentData" (
			id SERIAL PRIMARY KEY,
			ticketid INTEGER NOT NULL,
			userid INTEGER NOT NULL,
			data TEXT NOT NULL,
			likes INTEGER NOT NULL DEFAULT 0,
			dislikes INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS "BanList" (
			id INTEGER NOT NULL,
			email TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
