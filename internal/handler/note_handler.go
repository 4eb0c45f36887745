package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-info-api/internal/service"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
	"github.com/campusdesk/campus-info-api/pkg/response"
)

// noteFileField is the multipart field carrying the uploaded document.
const noteFileField = "note-pdf"

// NoteHandler wires note uploads to HTTP routes.
type NoteHandler struct {
	notes   *service.NoteService
	metrics *service.MetricsService
}

// NewNoteHandler constructs a new NoteHandler.
func NewNoteHandler(notes *service.NoteService, metrics *service.MetricsService) *NoteHandler {
	return &NoteHandler{notes: notes, metrics: metrics}
}

// List godoc
// @Summary List uploaded notes
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}

// Upload godoc
// @Summary Upload a course note
// @Tags Notes
// @Accept multipart/form-data
// @Produce json
// @Param note-pdf formData file true "Document file"
// @Param course_name formData string true "Course name"
// @Param teacher_id formData int true "Uploading teacher id"
// @Success 201 {object} response.Envelope
// @Router /notes [post]
func (h *NoteHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(noteFileField)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No file was uploaded."))
		return
	}

	courseName := c.PostForm("course_name")
	teacherID, idErr := strconv.ParseInt(c.PostForm("teacher_id"), 10, 64)
	if courseName == "" || idErr != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Course name and teacher ID are required."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "could not read uploaded file"))
		return
	}
	defer file.Close()

	note, err := h.notes.Upload(c.Request.Context(), service.UploadNoteRequest{
		CourseName:       courseName,
		TeacherID:        teacherID,
		OriginalFilename: fileHeader.Filename,
		File:             file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountUpload()
	}
	response.Created(c, note)
}

// Delete godoc
// @Summary Delete a note record
// @Tags Notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 204
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.notes.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
