package repository

import (
	"errors"
	"fmt"

	"github.com/classpulse/engage-backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository defines data access for comments and their replies
type CommentRepository interface {
	WithTx(tx *gorm.DB) CommentRepository
	Create(comment *domain.Comment) error
	FindByID(contentType domain.ContentType, contentID, commentID uint64) (*domain.Comment, error)
	ListByContent(contentType domain.ContentType, contentID uint64, opts *domain.ListOptions) ([]domain.Comment, int64, error)
	DeleteWithReplies(commentID uint64) error

	CreateReply(reply *domain.CommentReply) error
	FindReplyByID(commentID, replyID uint64) (*domain.CommentReply, error)
	ListReplies(commentID uint64, opts *domain.ListOptions) ([]domain.CommentReply, int64, error)
	ListRepliesForComments(commentIDs []uint64) ([]domain.CommentReply, error)
	CountReplies(commentID uint64) (int64, error)
	DeleteReply(replyID uint64) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepository{db: tx}
}

// Create inserts a new comment
func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID returns a comment scoped to its content item, or nil if absent
func (r *commentRepository) FindByID(contentType domain.ContentType, contentID, commentID uint64) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.Where("id = ? AND content_type = ? AND content_id = ?", commentID, contentType, contentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByContent returns one page of comments plus the full list length
func (r *commentRepository) ListByContent(contentType domain.ContentType, contentID uint64, opts *domain.ListOptions) ([]domain.Comment, int64, error) {
	var comments []domain.Comment
	var total int64

	query := r.db.Model(&domain.Comment{}).
		Where("content_type = ? AND content_id = ?", contentType, contentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause(opts)).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// DeleteWithReplies removes a comment and all of its replies in a transaction
func (r *commentRepository) DeleteWithReplies(commentID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&domain.CommentReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Comment{}, commentID).Error
	})
}

// CreateReply inserts a new reply
func (r *commentRepository) CreateReply(reply *domain.CommentReply) error {
	return r.db.Create(reply).Error
}

// FindReplyByID returns a reply scoped to its parent comment, or nil if absent
func (r *commentRepository) FindReplyByID(commentID, replyID uint64) (*domain.CommentReply, error) {
	var reply domain.CommentReply
	err := r.db.Where("id = ? AND comment_id = ?", replyID, commentID).
		First(&reply).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reply, nil
}

// ListReplies returns one page of a comment's replies plus the full length
func (r *commentRepository) ListReplies(commentID uint64, opts *domain.ListOptions) ([]domain.CommentReply, int64, error) {
	var replies []domain.CommentReply
	var total int64

	query := r.db.Model(&domain.CommentReply{}).Where("comment_id = ?", commentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause(opts)).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&replies).Error
	if err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}

// ListRepliesForComments batch-loads all replies for a set of comments in
// creation order, so a comment page needs one query instead of N.
func (r *commentRepository) ListRepliesForComments(commentIDs []uint64) ([]domain.CommentReply, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var replies []domain.CommentReply
	err := r.db.Where("comment_id IN ?", commentIDs).
		Order("id ASC").
		Find(&replies).Error
	return replies, err
}

// CountReplies returns the reply count for a comment
func (r *commentRepository) CountReplies(commentID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CommentReply{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

// DeleteReply removes a single reply
func (r *commentRepository) DeleteReply(replyID uint64) error {
	return r.db.Delete(&domain.CommentReply{}, replyID).Error
}

// orderClause builds the ORDER BY for a normalized list window. A stable id
// tiebreaker keeps pagination deterministic for same-second timestamps.
func orderClause(opts *domain.ListOptions) string {
	if opts.SortBy == "id" {
		return fmt.Sprintf("id %s", opts.SortOrder)
	}
	return fmt.Sprintf("created_at %s, id %s", opts.SortOrder, opts.SortOrder)
}
