package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-info-api/internal/models"
)

type campusReader interface {
	TimetableFor(ctx context.Context, program, section string) ([]models.TimetableEntry, error)
	ExamSchedules(ctx context.Context) ([]models.ExamSchedule, error)
	Contacts(ctx context.Context) ([]models.Contact, error)
	Events(ctx context.Context) ([]models.Event, error)
}

type noteSearcher interface {
	SearchByCourse(ctx context.Context, fragment string) ([]models.Note, error)
}

type fallbackResponder interface {
	Generate(ctx context.Context, query string) (string, error)
}

// FallbackReply is returned when no intent matches and the generative
// backend cannot answer either.
const FallbackReply = "I can help with timetables, exams, faculty contacts, notes, and campus events. How can I assist?"

// ChatService answers free-text campus questions. Lookups that hit
// the store may fail with STORE_ERROR; the fallback path never fails,
// it degrades to a canned reply instead.
type ChatService struct {
	campus   campusReader
	notes    noteSearcher
	fallback fallbackResponder
	notesURL string
	logger   *zap.Logger
	onIntent func(intent Intent)
}

// NewChatService constructs a ChatService. notesURL is the public
// prefix under which stored note files are served.
func NewChatService(campus campusReader, notes noteSearcher, fallback fallbackResponder, notesURL string, logger *zap.Logger) *ChatService {
	if notesURL == "" {
		notesURL = "/uploads"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{campus: campus, notes: notes, fallback: fallback, notesURL: notesURL, logger: logger}
}

// SetIntentObserver registers a hook invoked once per classified
// query. The metrics service plugs in here.
func (s *ChatService) SetIntentObserver(fn func(intent Intent)) {
	s.onIntent = fn
}

// Ask classifies the query and builds a reply from the matching
// campus data.
func (s *ChatService) Ask(ctx context.Context, req models.AskRequest) (*models.AskResponse, error) {
	intent := ClassifyIntent(req.Query)
	if s.onIntent != nil {
		s.onIntent(intent)
	}

	var (
		reply string
		err   error
	)
	switch intent {
	case IntentTimetable:
		reply, err = s.timetableReply(ctx, req.Program, req.Section)
	case IntentExam:
		reply, err = s.examReply(ctx)
	case IntentFaculty:
		reply, err = s.facultyReply(ctx)
	case IntentEvent:
		reply, err = s.eventReply(ctx)
	case IntentNote:
		reply, err = s.noteReply(ctx, req.Query)
	default:
		reply = s.fallbackReply(ctx, req.Query)
	}
	if err != nil {
		return nil, err
	}
	return &models.AskResponse{Reply: reply}, nil
}

func (s *ChatService) timetableReply(ctx context.Context, program, section string) (string, error) {
	entries, err := s.campus.TimetableFor(ctx, program, section)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return fmt.Sprintf("I couldn't find a timetable for %s, Section %s. Please check with the admin.", program, section), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is the timetable for %s - %s:", program, section)
	for _, e := range entries {
		fmt.Fprintf(&b, "\n• %s on %s at %s in %s", e.Course, e.Day, e.Time, e.Room)
	}
	return b.String(), nil
}

func (s *ChatService) examReply(ctx context.Context) (string, error) {
	schedules, err := s.campus.ExamSchedules(ctx)
	if err != nil {
		return "", err
	}
	if len(schedules) == 0 {
		return "There are no exam schedules published yet.", nil
	}

	var b strings.Builder
	b.WriteString("Upcoming exams:")
	for _, e := range schedules {
		details := ""
		if e.Details != nil {
			details = *e.Details
		}
		fmt.Fprintf(&b, "\n• %s on %s: %s", e.Subject, e.Date, details)
	}
	return b.String(), nil
}

func (s *ChatService) facultyReply(ctx context.Context) (string, error) {
	contacts, err := s.campus.Contacts(ctx)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return "There are no faculty contacts available yet.", nil
	}

	var b strings.Builder
	b.WriteString("Faculty Contacts:")
	for _, c := range contacts {
		fmt.Fprintf(&b, "\n• %s (%s): %s", c.Name, c.Department, c.Email)
	}
	return b.String(), nil
}

func (s *ChatService) eventReply(ctx context.Context) (string, error) {
	events, err := s.campus.Events(ctx)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "There are no upcoming events announced yet.", nil
	}

	var b strings.Builder
	b.WriteString("Upcoming events:")
	for _, e := range events {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		fmt.Fprintf(&b, "\n• %s on %s: %s", e.Title, e.Date, description)
	}
	return b.String(), nil
}

func (s *ChatService) noteReply(ctx context.Context, query string) (string, error) {
	course := CourseFragment(query)
	if course == "" {
		return "Which course notes are you looking for? e.g., 'DBMS notes'", nil
	}

	notes, err := s.notes.SearchByCourse(ctx, course)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any notes for '%s'.", course), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found notes for %s:", course)
	for _, n := range notes {
		fmt.Fprintf(&b, "\n• %s (link: %s/%s)", n.OriginalFilename, s.notesURL, n.StoredFilename)
	}
	return b.String(), nil
}

// fallbackReply relays the query to the generative backend. Any
// failure there degrades to the canned reply; the chat path never
// errors out because of the fallback.
func (s *ChatService) fallbackReply(ctx context.Context, query string) string {
	if s.fallback == nil {
		return FallbackReply
	}
	reply, err := s.fallback.Generate(ctx, query)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			s.logger.Warn("fallback responder failed", zap.Error(err))
		}
		return FallbackReply
	}
	return reply
}
