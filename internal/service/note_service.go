package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "notely/internal/errors"
	"notely/internal/model"
	"notely/internal/repository"
)

// dateFilterLayouts are the accepted formats for the `date` list filter.
var dateFilterLayouts = []string{"2006-01-02", time.RFC3339}

// NoteService handles note use-cases. Every operation is scoped to the
// authenticated user; notes owned by others surface as not found.
type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*model.Note, error)
	List(ctx context.Context, userID uuid.UUID, title, date string) ([]model.Note, error)
	Get(ctx context.Context, userID uuid.UUID, noteID string) (*model.Note, error)
	Update(ctx context.Context, userID uuid.UUID, noteID string, title, content *string) (*model.Note, error)
	Delete(ctx context.Context, userID uuid.UUID, noteID string) error
}

type noteService struct {
	noteRepo repository.NoteRepository
}

// NewNoteService creates a new note service.
func NewNoteService(noteRepo repository.NoteRepository) NoteService {
	return &noteService{noteRepo: noteRepo}
}

// Create persists a note owned by the given user.
func (s *noteService) Create(ctx context.Context, userID uuid.UUID, title, content string) (*model.Note, error) {
	note := &model.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// List returns the user's notes newest-first. An empty title or date means
// no filter; a date that does not parse is a validation error.
func (s *noteService) List(ctx context.Context, userID uuid.UUID, title, date string) ([]model.Note, error) {
	filter := repository.NoteFilter{Title: title}

	if date != "" {
		parsed, err := parseDateFilter(date)
		if err != nil {
			return nil, apperrors.ErrInvalidDateFilter
		}
		filter.CreatedAfter = &parsed
	}

	notes, err := s.noteRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get returns a single note owned by the user.
func (s *noteService) Get(ctx context.Context, userID uuid.UUID, noteID string) (*model.Note, error) {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return nil, apperrors.ErrInvalidNoteID
	}

	note, err := s.noteRepo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return note, nil
}

// Update applies a partial update to a note owned by the user. Nil fields
// are left untouched.
func (s *noteService) Update(ctx context.Context, userID uuid.UUID, noteID string, title, content *string) (*model.Note, error) {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return nil, apperrors.ErrInvalidNoteID
	}

	note, err := s.noteRepo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// Delete removes a note owned by the user. Deleting an already-deleted or
// foreign note reports not found.
func (s *noteService) Delete(ctx context.Context, userID uuid.UUID, noteID string) error {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return apperrors.ErrInvalidNoteID
	}

	affected, err := s.noteRepo.DeleteByIDAndOwner(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

func parseDateFilter(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateFilterLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
