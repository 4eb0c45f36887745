package repository

import (
	"context"
	"strings"

	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"

	"github.com/campusdesk/campus-info-api/internal/models"
)

// NoteRepository manages persistence for uploaded course notes.
type NoteRepository struct {
	store *Store
}

// NewNoteRepository constructs a NoteRepository.
func NewNoteRepository(store *Store) *NoteRepository {
	return &NoteRepository{store: store}
}

// List returns every note ordered by id.
func (r *NoteRepository) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := r.store.Select(ctx, &notes,
		"SELECT id, course_name, original_filename, stored_filename, teacher_id FROM notes ORDER BY id")
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Create inserts a note row and returns its id.
func (r *NoteRepository) Create(ctx context.Context, n models.Note) (int64, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO notes (course_name, original_filename, stored_filename, teacher_id) VALUES (?, ?, ?, ?)",
		n.CourseName, n.OriginalFilename, n.StoredFilename, n.TeacherID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

// Delete removes the note row. The stored file is not touched.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.Execute(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SearchByCourse returns notes whose course name contains the
// fragment, case-insensitively.
func (r *NoteRepository) SearchByCourse(ctx context.Context, fragment string) ([]models.Note, error) {
	var notes []models.Note
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.store.Select(ctx, &notes,
		"SELECT id, course_name, original_filename, stored_filename, teacher_id FROM notes WHERE LOWER(course_name) LIKE ? ORDER BY id",
		pattern)
	if err != nil {
		return nil, err
	}
	return notes, nil
}
