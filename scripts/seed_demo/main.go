// Command seed_demo fills the campus database with a small demo data
// set so the chatbot has something to answer from during development.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/campusdesk/campus-info-api/internal/repository"
	"github.com/campusdesk/campus-info-api/pkg/config"
	"github.com/campusdesk/campus-info-api/pkg/database"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "./db.sqlite", "Path to the SQLite database file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.Database.Path = dbPath

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := repository.NewStore(db, nil)
	if err := repository.InitSchema(ctx, store, cfg.Seed); err != nil {
		log.Fatalf("failed to init schema: %v", err)
	}

	entities := repository.NewEntityRepository(store)
	users := repository.NewUserRepository(store)

	timetables := []map[string]interface{}{
		{"program": "BSc CS", "section": "A", "course": "Algorithms", "day": "Monday", "time": "9:00 AM", "room": "301"},
		{"program": "BSc CS", "section": "A", "course": "DBMS", "day": "Tuesday", "time": "11:00 AM", "room": "204"},
		{"program": "BSc CS", "section": "B", "course": "Operating Systems", "day": "Wednesday", "time": "10:00 AM", "room": "118"},
	}
	schedules := []map[string]interface{}{
		{"subject": "Algorithms", "date": "2026-09-15", "details": "Hall A, bring calculators"},
		{"subject": "DBMS", "date": "2026-09-18", "details": "Hall B"},
	}
	events := []map[string]interface{}{
		{"title": "Tech Fest", "date": "2026-10-02", "description": "Annual technology fair"},
		{"title": "Alumni Meet", "date": "2026-11-20", "description": "Networking evening"},
	}
	contacts := []map[string]interface{}{
		{"name": "Dr. Rao", "department": "Physics", "email": "rao@campus.com"},
		{"name": "Prof. Iyer", "department": "Computer Science", "email": "iyer@campus.com"},
	}

	seedTable(ctx, entities, "timetables", timetables)
	seedTable(ctx, entities, "schedules", schedules)
	seedTable(ctx, entities, "events", events)
	seedTable(ctx, entities, "contacts", contacts)

	if _, err := users.CreateTeacher(ctx, "Prof. Iyer", "iyer@campus.com", "teacher123"); err != nil {
		log.Printf("skipping teacher seed: %v", err)
	}

	log.Println("demo data seeded")
}

func seedTable(ctx context.Context, repo *repository.EntityRepository, table string, rows []map[string]interface{}) {
	for _, row := range rows {
		if _, err := repo.Create(ctx, table, row); err != nil {
			log.Printf("skipping %s row: %v", table, err)
		}
	}
}
