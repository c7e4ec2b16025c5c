package repository

import (
	"errors"

	"github.com/classpulse/engage-backend/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository is the existence gate over posts and reels. It is a
// read-only collaborator; content lifecycle belongs to the content service.
type ContentRepository interface {
	WithTx(tx *gorm.DB) ContentRepository
	Info(contentType domain.ContentType, contentID uint64) (*domain.ContentInfo, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *contentRepository) WithTx(tx *gorm.DB) ContentRepository {
	return &contentRepository{db: tx}
}

// Info reports whether the content item exists and who owns it
func (r *contentRepository) Info(contentType domain.ContentType, contentID uint64) (*domain.ContentInfo, error) {
	var result struct {
		UserID uint64 `gorm:"column:user_id"`
	}

	query := r.db.Select("user_id").Where("id = ?", contentID)
	switch contentType {
	case domain.ContentTypeReel:
		query = query.Model(&domain.Reel{})
	default:
		query = query.Model(&domain.Post{})
	}

	if err := query.First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.ContentInfo{Exists: false}, nil
		}
		return nil, err
	}

	return &domain.ContentInfo{Exists: true, OwnerID: result.UserID}, nil
}
