package repository

import (
	"errors"

	"github.com/classpulse/engage-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines data access for per-user reactions
type ReactionRepository interface {
	WithTx(tx *gorm.DB) ReactionRepository
	Transaction(fn func(tx *gorm.DB) error) error
	FindByUser(contentType domain.ContentType, contentID, userID uint64, forUpdate bool) (*domain.Reaction, error)
	Create(reaction *domain.Reaction) error
	UpdateKind(id uint64, kind domain.ReactionKind) error
	Delete(id uint64) error
	ListByContent(contentType domain.ContentType, contentID uint64) ([]domain.Reaction, error)
	FindByUserAndContents(userID uint64, contentType domain.ContentType, contentIDs []uint64) ([]domain.Reaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *reactionRepository) WithTx(tx *gorm.DB) ReactionRepository {
	return &reactionRepository{db: tx}
}

// Transaction runs fn inside a database transaction
func (r *reactionRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// FindByUser returns the user's current reaction on a content item, or nil
// if none exists. With forUpdate the row is locked for the enclosing
// transaction (MySQL only; SQLite used in tests has no FOR UPDATE).
func (r *reactionRepository) FindByUser(contentType domain.ContentType, contentID, userID uint64, forUpdate bool) (*domain.Reaction, error) {
	query := r.db.Where("content_type = ? AND content_id = ? AND user_id = ?", contentType, contentID, userID)
	if forUpdate && r.db.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var reaction domain.Reaction
	if err := query.First(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// Create inserts a new reaction row. The unique index over
// (content_type, content_id, user_id) rejects a concurrent duplicate.
func (r *reactionRepository) Create(reaction *domain.Reaction) error {
	return r.db.Create(reaction).Error
}

// UpdateKind switches an existing reaction to a different kind
func (r *reactionRepository) UpdateKind(id uint64, kind domain.ReactionKind) error {
	return r.db.Model(&domain.Reaction{}).
		Where("id = ?", id).
		Update("reaction", kind).Error
}

// Delete removes a reaction row
func (r *reactionRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Reaction{}, id).Error
}

// ListByContent returns all reactions on a content item in creation order
func (r *reactionRepository) ListByContent(contentType domain.ContentType, contentID uint64) ([]domain.Reaction, error) {
	var reactions []domain.Reaction
	err := r.db.Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("id ASC").
		Find(&reactions).Error
	return reactions, err
}

// FindByUserAndContents batch-loads one user's reactions across content items
func (r *reactionRepository) FindByUserAndContents(userID uint64, contentType domain.ContentType, contentIDs []uint64) ([]domain.Reaction, error) {
	if len(contentIDs) == 0 {
		return nil, nil
	}
	var reactions []domain.Reaction
	err := r.db.Where("user_id = ? AND content_type = ? AND content_id IN ?", userID, contentType, contentIDs).
		Find(&reactions).Error
	return reactions, err
}
