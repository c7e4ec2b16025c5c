package repository

import (
	"github.com/classpulse/engage-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository resolves user IDs to display profiles. Read-only
// collaborator; accounts belong to the auth service.
type UserRepository interface {
	FindByIDs(ids []uint64) ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByIDs batch-loads users; unknown IDs are simply absent from the result
func (r *userRepository) FindByIDs(ids []uint64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []domain.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
