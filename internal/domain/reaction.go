package domain

import "time"

// ReactionKind is one of the six fixed reaction categories
type ReactionKind string

const (
	ReactionHappy ReactionKind = "happy"
	ReactionSad   ReactionKind = "sad"
	ReactionAngry ReactionKind = "angry"
	ReactionHug   ReactionKind = "hug"
	ReactionWow   ReactionKind = "wow"
	ReactionLike  ReactionKind = "like"
)

// ReactionKinds lists all kinds in their canonical order
var ReactionKinds = []ReactionKind{
	ReactionHappy,
	ReactionSad,
	ReactionAngry,
	ReactionHug,
	ReactionWow,
	ReactionLike,
}

// Valid reports whether the kind is one of the six known kinds
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionHappy, ReactionSad, ReactionAngry, ReactionHug, ReactionWow, ReactionLike:
		return true
	}
	return false
}

// Reaction apply actions
const (
	ReactionActionLiked   = "liked"
	ReactionActionUpdated = "reaction_updated"
	ReactionActionUnliked = "unliked"
)

// Reaction is one user's reaction on one content item. The unique index over
// (content_type, content_id, user_id) enforces at most one reaction per user
// per content item at the store level.
type Reaction struct {
	ID          uint64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentType ContentType  `gorm:"column:content_type;type:varchar(10);uniqueIndex:uq_reactions_content_user;index:idx_reactions_content" json:"content_type"`
	ContentID   uint64       `gorm:"column:content_id;uniqueIndex:uq_reactions_content_user;index:idx_reactions_content" json:"content_id"`
	UserID      uint64       `gorm:"column:user_id;uniqueIndex:uq_reactions_content_user;index:idx_reactions_user" json:"user_id"`
	Kind        ReactionKind `gorm:"column:reaction;type:varchar(10)" json:"reaction"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for reactions
func (Reaction) TableName() string {
	return "reactions"
}

// ApplyReactionRequest is the body of a reaction apply call
type ApplyReactionRequest struct {
	Reaction ReactionKind `json:"reaction"`
}

// ReactionBucket is the aggregate for one reaction kind on one content item
type ReactionBucket struct {
	Count int         `json:"count"`
	Users []UserBrief `json:"users"`
}

// ReactionSummary maps reaction kinds to their buckets; empty buckets are
// omitted entirely.
type ReactionSummary map[ReactionKind]ReactionBucket

// ApplyReactionResponse is the result of a toggle/switch reaction call
type ApplyReactionResponse struct {
	Action    string          `json:"action"`
	Reaction  *ReactionKind   `json:"reaction"`
	LikeCount int             `json:"likeCount"`
	IsLiked   bool            `json:"isLiked"`
	Reactions ReactionSummary `json:"reactions"`
}
