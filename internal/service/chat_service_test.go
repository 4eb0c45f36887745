package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campus-info-api/internal/models"
	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type mockCampusReader struct {
	timetable []models.TimetableEntry
	exams     []models.ExamSchedule
	contacts  []models.Contact
	events    []models.Event
	err       error
}

func (m *mockCampusReader) TimetableFor(ctx context.Context, program, section string) ([]models.TimetableEntry, error) {
	return m.timetable, m.err
}

func (m *mockCampusReader) ExamSchedules(ctx context.Context) ([]models.ExamSchedule, error) {
	return m.exams, m.err
}

func (m *mockCampusReader) Contacts(ctx context.Context) ([]models.Contact, error) {
	return m.contacts, m.err
}

func (m *mockCampusReader) Events(ctx context.Context) ([]models.Event, error) {
	return m.events, m.err
}

type mockNoteSearcher struct {
	notes []models.Note
	err   error
	got   string
}

func (m *mockNoteSearcher) SearchByCourse(ctx context.Context, fragment string) ([]models.Note, error) {
	m.got = fragment
	return m.notes, m.err
}

type mockFallback struct {
	reply string
	err   error
	calls int
}

func (m *mockFallback) Generate(ctx context.Context, query string) (string, error) {
	m.calls++
	return m.reply, m.err
}

func TestChatServiceTimetableReply(t *testing.T) {
	campus := &mockCampusReader{timetable: []models.TimetableEntry{
		{Course: "Algorithms", Day: "Monday", Time: "9:00 AM", Room: "301"},
		{Course: "DBMS", Day: "Tuesday", Time: "11:00 AM", Room: "204"},
	}}
	svc := NewChatService(campus, &mockNoteSearcher{}, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{
		Query: "show my timetable", Program: "BSc CS", Section: "A",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Here is the timetable for BSc CS - A:\n"+
			"• Algorithms on Monday at 9:00 AM in 301\n"+
			"• DBMS on Tuesday at 11:00 AM in 204",
		out.Reply)
}

func TestChatServiceTimetableEmpty(t *testing.T) {
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{
		Query: "timetable please", Program: "BBA", Section: "C",
	})
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find a timetable for BBA, Section C. Please check with the admin.", out.Reply)
}

func TestChatServiceNoteReply(t *testing.T) {
	notes := &mockNoteSearcher{notes: []models.Note{
		{CourseName: "Physics 101", OriginalFilename: "chapter1.pdf", StoredFilename: "1700000000000-ab12cd34-chapter1.pdf"},
	}}
	svc := NewChatService(&mockCampusReader{}, notes, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "Can I get notes for physics"})
	require.NoError(t, err)
	assert.Equal(t, "physics", notes.got)
	assert.Equal(t,
		"Found notes for physics:\n"+
			"• chapter1.pdf (link: /uploads/1700000000000-ab12cd34-chapter1.pdf)",
		out.Reply)
}

func TestChatServiceNoteClarification(t *testing.T) {
	notes := &mockNoteSearcher{}
	svc := NewChatService(&mockCampusReader{}, notes, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "give me the notes"})
	require.NoError(t, err)
	assert.Equal(t, "Which course notes are you looking for? e.g., 'DBMS notes'", out.Reply)
	// the store was never queried
	assert.Empty(t, notes.got)
}

func TestChatServiceNoteNoMatches(t *testing.T) {
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "notes for basket weaving"})
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find any notes for 'basket weaving'.", out.Reply)
}

func TestChatServiceFallbackRelaysGeneratedText(t *testing.T) {
	fallback := &mockFallback{reply: "The library closes at 10pm."}
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, fallback, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "when does the library close"})
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, "The library closes at 10pm.", out.Reply)
}

func TestChatServiceFallbackFailureDegradesToCannedReply(t *testing.T) {
	fallback := &mockFallback{err: errors.New("connection refused")}
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, fallback, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "tell me a joke"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, out.Reply)
}

func TestChatServiceNoFallbackConfigured(t *testing.T) {
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, nil, "/uploads", nil)

	out, err := svc.Ask(context.Background(), models.AskRequest{Query: "tell me a joke"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, out.Reply)
}

// Store failures during a data lookup surface to the caller, unlike
// fallback failures which always close to a reply.
func TestChatServiceStoreErrorSurfaces(t *testing.T) {
	campus := &mockCampusReader{err: apperrors.ErrStore}
	svc := NewChatService(campus, &mockNoteSearcher{}, nil, "/uploads", nil)

	_, err := svc.Ask(context.Background(), models.AskRequest{Query: "upcoming exams"})
	require.Error(t, err)
	assert.Equal(t, "STORE_ERROR", apperrors.FromError(err).Code)
}

func TestChatServiceCountsIntents(t *testing.T) {
	svc := NewChatService(&mockCampusReader{}, &mockNoteSearcher{}, nil, "/uploads", nil)

	var seen []Intent
	svc.SetIntentObserver(func(intent Intent) { seen = append(seen, intent) })

	_, err := svc.Ask(context.Background(), models.AskRequest{Query: "upcoming exams"})
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), models.AskRequest{Query: "hello"})
	require.NoError(t, err)

	assert.Equal(t, []Intent{IntentExam, IntentUnknown}, seen)
}
