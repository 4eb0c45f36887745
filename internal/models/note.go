package models

// Note is an uploaded course document. TeacherID is a soft reference:
// deleting the teacher leaves the note row (and its file) behind.
type Note struct {
	ID               int64  `db:"id" json:"id"`
	CourseName       string `db:"course_name" json:"course_name"`
	OriginalFilename string `db:"original_filename" json:"original_filename"`
	StoredFilename   string `db:"stored_filename" json:"stored_filename"`
	TeacherID        int64  `db:"teacher_id" json:"teacher_id"`
}
