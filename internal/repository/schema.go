package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusdesk/campus-info-api/pkg/config"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		program TEXT,
		section TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS timetables (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		program TEXT NOT NULL,
		section TEXT NOT NULL,
		course TEXT NOT NULL,
		day TEXT NOT NULL,
		time TEXT NOT NULL,
		room TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject TEXT NOT NULL,
		date TEXT NOT NULL,
		details TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		department TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_name TEXT NOT NULL,
		original_filename TEXT NOT NULL,
		stored_filename TEXT NOT NULL,
		teacher_id INTEGER NOT NULL
	)`,
}

// InitSchema creates the tables if they do not exist and seeds the
// default admin account on first run. Seeding is keyed on the admin
// email so restarts never duplicate it.
func InitSchema(ctx context.Context, store *Store, seed config.SeedConfig) error {
	for _, stmt := range schemaStatements {
		if _, err := store.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	_, err := store.FetchOne(ctx, "SELECT id FROM users WHERE email = ?", seed.AdminEmail)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check admin seed: %w", err)
	}

	_, err = store.Execute(ctx,
		"INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
		seed.AdminName, seed.AdminEmail, seed.AdminPassword, "admin")
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
