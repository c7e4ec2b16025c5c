package domain

import "time"

// ContentType identifies which collection a reaction/comment target lives in
type ContentType string

const (
	ContentTypePost ContentType = "post"
	ContentTypeReel ContentType = "reel"
)

// Valid reports whether the content type is one of the known kinds
func (t ContentType) Valid() bool {
	return t == ContentTypePost || t == ContentTypeReel
}

// MaxCommentLength returns the comment text cap for this content type
func (t ContentType) MaxCommentLength() int {
	if t == ContentTypeReel {
		return MaxReelCommentLength
	}
	return MaxPostCommentLength
}

// Post is a feed post. Owned by the content service; this module only
// reads it for existence and ownership checks.
type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;index" json:"user_id"`
	Caption   string    `gorm:"column:caption;type:text" json:"caption"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for posts
func (Post) TableName() string {
	return "posts"
}

// Reel is a short video. Owned by the content service; this module only
// reads it for existence and ownership checks.
type Reel struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;index" json:"user_id"`
	Caption   string    `gorm:"column:caption;type:text" json:"caption"`
	VideoURL  string    `gorm:"column:video_url;type:varchar(500)" json:"video_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for reels
func (Reel) TableName() string {
	return "reels"
}

// ContentInfo is the existence-gate result for a content item
type ContentInfo struct {
	Exists  bool
	OwnerID uint64
}
