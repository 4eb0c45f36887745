package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-info-api/internal/models"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
	"github.com/campusdesk/campus-info-api/pkg/storage"
)

type noteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, n models.Note) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type noteStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// UploadNoteRequest carries the multipart fields of a note upload.
type UploadNoteRequest struct {
	CourseName       string
	TeacherID        int64
	OriginalFilename string
	File             io.Reader
}

// NoteService manages uploaded course documents.
type NoteService struct {
	repo   noteRepository
	files  noteStorage
	logger *zap.Logger
}

// NewNoteService constructs a NoteService.
func NewNoteService(repo noteRepository, files noteStorage, logger *zap.Logger) *NoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, files: files, logger: logger}
}

// List returns every note.
func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Upload stores the file under a unique name and records the note
// row. The original filename is kept for display.
func (s *NoteService) Upload(ctx context.Context, req UploadNoteRequest) (*models.Note, error) {
	if req.CourseName == "" || req.OriginalFilename == "" || req.File == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Course name and file are required.")
	}

	stored := storage.UniqueFilename(req.OriginalFilename)
	if _, err := s.files.SaveStream(stored, req.File); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}

	note := models.Note{
		CourseName:       req.CourseName,
		OriginalFilename: req.OriginalFilename,
		StoredFilename:   stored,
		TeacherID:        req.TeacherID,
	}
	id, err := s.repo.Create(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = id

	s.logger.Info("note uploaded",
		zap.Int64("note_id", id),
		zap.String("course", req.CourseName),
		zap.String("stored_filename", stored))
	return &note, nil
}

// Delete removes the note row only. The stored file is deliberately
// kept so previously shared links keep working.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("note deleted", zap.Int64("note_id", id))
	return nil
}
