package migration

import (
	"github.com/classpulse/engage-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the engagement tables. Existing tables are
// altered in place, so the unique reaction index survives re-runs.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Reel{},
		&domain.Reaction{},
		&domain.Comment{},
		&domain.CommentReply{},
	)
}
