package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notely/internal/model"
)

// NoteFilter narrows a listing. Title is a case-insensitive substring match;
// CreatedAfter is a creation-time lower bound.
type NoteFilter struct {
	Title        string
	CreatedAfter *time.Time
}

// NoteRepository defines persistence operations for notes. Every lookup and
// mutation is scoped to the owning user; a note owned by someone else is
// indistinguishable from a missing one.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	ListByOwner(ctx context.Context, userID uuid.UUID, filter NoteFilter) ([]model.Note, error)
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository builds a GORM-backed repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) ListByOwner(ctx context.Context, userID uuid.UUID, filter NoteFilter) ([]model.Note, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAfter)
	}

	var notes []model.Note
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Note{})
	return res.RowsAffected, res.Error
}
