package domain

import "time"

// Comment text caps per content type; replies always use the post cap
const (
	MaxPostCommentLength = 1000
	MaxReelCommentLength = 500
	MaxReplyLength       = 1000
)

// Comment is a top-level comment on a content item. Replies live in their
// own table keyed by comment_id; deleting a comment removes its replies.
type Comment struct {
	ID          uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentType ContentType `gorm:"column:content_type;type:varchar(10);index:idx_comments_content" json:"content_type"`
	ContentID   uint64      `gorm:"column:content_id;index:idx_comments_content" json:"content_id"`
	UserID      uint64      `gorm:"column:user_id;index" json:"user_id"`
	Text        string      `gorm:"column:text;type:varchar(1000)" json:"text"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for comments
func (Comment) TableName() string {
	return "comments"
}

// CommentReply is a reply nested under a comment
type CommentReply struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;index" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;index" json:"user_id"`
	Text      string    `gorm:"column:text;type:varchar(1000)" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for comment replies
func (CommentReply) TableName() string {
	return "comment_replies"
}

// CreateCommentRequest is the body of an add-comment call
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateReplyRequest is the body of an add-reply call
type CreateReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ReplyResponse is a reply formatted for API output
type ReplyResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	User      UserBrief `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentResponse is a comment with its fully materialized reply list
type CommentResponse struct {
	ID         uint64          `json:"id"`
	UserID     uint64          `json:"userId"`
	User       UserBrief       `json:"user"`
	Text       string          `json:"text"`
	Replies    []ReplyResponse `json:"replies"`
	ReplyCount int             `json:"replyCount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CreateReplyResponse pairs the created reply with the parent's new size
type CreateReplyResponse struct {
	Reply   ReplyResponse      `json:"reply"`
	Comment ReplyCountFragment `json:"comment"`
}

// ReplyCountFragment is the parent comment fragment returned after a reply
type ReplyCountFragment struct {
	ID         uint64 `json:"id"`
	ReplyCount int    `json:"replyCount"`
}

// ToReplyResponse maps a reply row plus its resolved author
func (r *CommentReply) ToReplyResponse(author UserBrief) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		User:      author,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// ToResponse maps a comment row plus its resolved author and replies
func (c *Comment) ToResponse(author UserBrief, replies []ReplyResponse) CommentResponse {
	if replies == nil {
		replies = []ReplyResponse{}
	}
	return CommentResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		User:       author,
		Text:       c.Text,
		Replies:    replies,
		ReplyCount: len(replies),
		CreatedAt:  c.CreatedAt,
	}
}

// ListOptions is the pagination/sort window for comment and reply reads
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize clamps the window and sort to supported values
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 || o.Limit > 100 {
		o.Limit = 20
	}
	if o.SortBy != "created_at" && o.SortBy != "id" {
		o.SortBy = "created_at"
	}
	if o.SortOrder != "asc" && o.SortOrder != "desc" {
		o.SortOrder = "desc"
	}
}

// Offset returns the row offset for the current page
func (o *ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}
