package repository

import (
	"context"

	"github.com/campusdesk/campus-info-api/internal/models"
)

// CampusRepository serves the typed read paths used by the chatbot.
type CampusRepository struct {
	store *Store
}

// NewCampusRepository constructs a CampusRepository.
func NewCampusRepository(store *Store) *CampusRepository {
	return &CampusRepository{store: store}
}

// TimetableFor returns the timetable slots of one program and section.
func (r *CampusRepository) TimetableFor(ctx context.Context, program, section string) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	err := r.store.Select(ctx, &entries,
		"SELECT id, program, section, course, day, time, room FROM timetables WHERE program = ? AND section = ? ORDER BY id",
		program, section)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ExamSchedules returns every exam schedule entry.
func (r *CampusRepository) ExamSchedules(ctx context.Context) ([]models.ExamSchedule, error) {
	var schedules []models.ExamSchedule
	err := r.store.Select(ctx, &schedules,
		"SELECT id, subject, date, details FROM schedules ORDER BY id")
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// Contacts returns every faculty contact.
func (r *CampusRepository) Contacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.store.Select(ctx, &contacts,
		"SELECT id, name, department, email FROM contacts ORDER BY id")
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Events returns every campus event.
func (r *CampusRepository) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.store.Select(ctx, &events,
		"SELECT id, title, date, description FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	return events, nil
}
