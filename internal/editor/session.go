package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// FileSaver persists a partial file update by id.
type FileSaver interface {
	UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error)
}

// Session tracks the active file and its unsaved edits.
type Session struct {
	active *models.File

	buffer   string
	baseline string

	question      string
	savedQuestion string

	saving bool
}

// NewSession returns an empty session with no active file.
func NewSession() *Session {
	return &Session{}
}

// Open makes file the active one and loads its code and question.
// Any unsaved edits of the previous file are discarded.
func (s *Session) Open(file models.File) {
	f := file
	s.active = &f
	s.buffer = file.Code
	s.baseline = file.Code
	s.question = file.QuestionText()
	s.savedQuestion = file.QuestionText()
	s.saving = false
}

// Close clears the session, e.g. after the active file was deleted.
func (s *Session) Close() {
	*s = Session{}
}

// Active returns the active file as last loaded or saved.
func (s *Session) Active() (models.File, bool) {
	if s.active == nil {
		return models.File{}, false
	}
	return *s.active, true
}

// IsActive reports whether the file with id is open.
func (s *Session) IsActive(id string) bool {
	return s.active != nil && s.active.ID == id
}

func (s *Session) Code() string     { return s.buffer }
func (s *Session) Question() string { return s.question }
func (s *Session) Saving() bool     { return s.saving }

// SetCode replaces the live buffer. Without an active file it is ignored.
func (s *Session) SetCode(code string) {
	if s.active == nil {
		return
	}
	s.buffer = code
}

// SetQuestion replaces the live question text.
func (s *Session) SetQuestion(question string) {
	if s.active == nil {
		return
	}
	s.question = question
}

// Rename keeps the cached name of the active file in sync after a rename
// performed elsewhere. Edits are preserved.
func (s *Session) Rename(id, name string) {
	if s.IsActive(id) {
		s.active.Name = name
	}
}

// Move keeps the cached parent of the active file in sync after a move.
func (s *Session) Move(id string, parentID *string) {
	if s.IsActive(id) {
		s.active.ParentID = parentID
	}
}

// Dirty reports whether the buffer or the question differ from what was
// last saved. Surrounding whitespace of the question is not significant.
func (s *Session) Dirty() bool {
	if s.active == nil {
		return false
	}
	return s.buffer != s.baseline ||
		strings.TrimSpace(s.question) != strings.TrimSpace(s.savedQuestion)
}

// Save writes the buffer and the trimmed question to the store and resets
// the baselines to the saved values. There is no concurrency check: the
// last save wins. On failure the session stays dirty.
func (s *Session) Save(ctx context.Context, saver FileSaver) error {
	update, err := s.BeginSave()
	if err != nil {
		return err
	}

	saved, err := saver.UpdateFile(ctx, update)
	if err != nil {
		s.FailSave()
		return fmt.Errorf("save %q: %w", s.active.Name, err)
	}

	s.CompleteSave(update, saved)
	return nil
}

// BeginSave marks a save as started and returns the update to send.
// It exists for callers that perform the store call asynchronously and
// later report back with CompleteSave or FailSave.
func (s *Session) BeginSave() (models.FileUpdate, error) {
	if s.active == nil {
		return models.FileUpdate{}, ErrNoActiveFile
	}
	if s.saving {
		return models.FileUpdate{}, ErrSaveInFlight
	}

	code := s.buffer
	question := strings.TrimSpace(s.question)
	s.saving = true

	return models.FileUpdate{
		ID:       s.active.ID,
		Code:     &code,
		Question: &question,
	}, nil
}

// CompleteSave records a successful save of update. Edits made while the
// save was in flight stay dirty because the baseline is the sent value.
func (s *Session) CompleteSave(update models.FileUpdate, saved models.File) {
	s.saving = false
	if s.active == nil || s.active.ID != update.ID {
		return
	}

	if update.Code != nil {
		s.baseline = *update.Code
		s.active.Code = *update.Code
	}
	if update.Question != nil {
		s.savedQuestion = *update.Question
		q := *update.Question
		s.active.Question = &q
	}
	if saved.UpdatedAt != nil {
		s.active.UpdatedAt = saved.UpdatedAt
	}
}

// FailSave clears the in-flight flag without touching the baselines.
func (s *Session) FailSave() {
	s.saving = false
}
