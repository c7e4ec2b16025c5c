package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/classpulse/engage-backend/internal/common"
	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/classpulse/engage-backend/internal/repository"
)

var (
	ErrEmptyText   = errors.New("text must not be empty")
	ErrTextTooLong = errors.New("text exceeds maximum length")
)

// CommentService implements the comment thread engine: comments and replies
// on posts and reels, with ownership-based delete authorization.
type CommentService interface {
	AddComment(ctx context.Context, userID uint64, contentType domain.ContentType, contentID uint64, text string) (*domain.CommentResponse, error)
	AddReply(ctx context.Context, userID uint64, contentType domain.ContentType, contentID, commentID uint64, text string) (*domain.CreateReplyResponse, error)
	GetComments(ctx context.Context, contentType domain.ContentType, contentID uint64, opts *domain.ListOptions) ([]domain.CommentResponse, int64, error)
	GetReplies(ctx context.Context, contentType domain.ContentType, contentID, commentID uint64, opts *domain.ListOptions) ([]domain.ReplyResponse, int64, error)
	DeleteComment(ctx context.Context, userID uint64, contentType domain.ContentType, contentID, commentID uint64) error
	DeleteReply(ctx context.Context, userID uint64, contentType domain.ContentType, contentID, commentID, replyID uint64) error
}

type commentService struct {
	comments repository.CommentRepository
	contents repository.ContentRepository
	profiles ProfileResolver
}

// NewCommentService creates a new CommentService
func NewCommentService(
	comments repository.CommentRepository,
	contents repository.ContentRepository,
	profiles ProfileResolver,
) CommentService {
	return &commentService{
		comments: comments,
		contents: contents,
		profiles: profiles,
	}
}

// AddComment appends a comment to a content item's thread
func (s *commentService) AddComment(ctx context.Context, userID uint64, contentType domain.ContentType, contentID uint64, text string) (*domain.CommentResponse, error) {
	if err := validateTarget(contentType, contentID); err != nil {
		return nil, err
	}
	if err := validateText(text, contentType.MaxCommentLength()); err != nil {
		return nil, err
	}
	if _, err := s.requireContent(contentType, contentID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ContentType: contentType,
		ContentID:   contentID,
		UserID:      userID,
		Text:        strings.TrimSpace(text),
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	profiles, err := s.profiles.Resolve(ctx, []uint64{userID})
	if err != nil {
		return nil, err
	}

	resp := comment.ToResponse(profiles[userID], nil)
	return &resp, nil
}

// AddReply appends a reply to an existing comment
func (s *commentService) AddReply(ctx context.Context, userID uint64, contentType domain.ContentType, contentID, commentID uint64, text string) (*domain.CreateReplyResponse, error) {
	if err := validateTarget(contentType, contentID); err != nil {
		return nil, err
	}
	if err := validateText(text, domain.MaxReplyLength); err != nil {
		return nil, err
	}
	if _, err := s.requireContent(contentType, contentID); err != nil {
		return nil, err
	}

	comment, err := s.comments.FindByID(contentType, contentID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, common.ErrCommentNotFound
	}

	reply := &domain.CommentReply{
		CommentID: commentID,
		UserID:    userID,
		Text:      strings.TrimSpace(text),
	}
	if err := s.comments.CreateReply(reply); err != nil {
		return nil, err
	}

	replyCount, err := s.comments.CountReplies(commentID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profiles.Resolve(ctx, []uint64{userID})
	if err != nil {
		return nil, err
	}

	return &domain.CreateReplyResponse{
		Reply: reply.ToReplyResponse(profiles[userID]),
		Comment: domain.ReplyCountFragment{
			ID:         commentID,
			ReplyCount: int(replyCount),
		},
	}, nil
}

// GetComments returns one page of a content item's comments, each with its
// fully materialized reply list. Total counts the whole thread, not the page.
func (s *commentService) GetComments(ctx context.Context, contentType domain.ContentType, contentID uint64, opts *domain.ListOptions) ([]domain.CommentResponse, int64, error) {
	if err := validateTarget(contentType, contentID); err != nil {
		return nil, 0, err
	}
	if _, err := s.requireContent(contentType, contentID); err != nil {
		return nil, 0, err
	}
	opts.Normalize()

	comments, total, err := s.comments.ListByContent(contentType, contentID, opts)
	if err != nil {
		return nil, 0, err
	}

	commentIDs := make([]uint64, len(comments))
	userIDs := make([]uint64, 0, len(comments))
	for i := range comments {
		commentIDs[i] = comments[i].ID
		userIDs = append(userIDs, comments[i].UserID)
	}

	replies, err := s.comments.ListRepliesForComments(commentIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range replies {
		userIDs = append(userIDs, replies[i].UserID)
	}

	profiles, err := s.profiles.Resolve(ctx, userIDs)
	if err != nil {
		return nil, 0, err
	}

	repliesByComment := make(map[uint64][]domain.ReplyResponse)
	for i := range replies {
		r := &replies[i]
		repliesByComment[r.CommentID] = append(repliesByComment[r.CommentID], r.ToReplyResponse(profiles[r.UserID]))
	}

	result := make([]domain.CommentResponse, len(comments))
	for i := range comments {
		c := &comments[i]
		result[i] = c.ToResponse(profiles[c.UserID], repliesByComment[c.ID])
	}

	return result, total, nil
}

// GetReplies returns one page of a comment's replies
func (s *commentService) GetReplies(ctx context.Context, contentType domain.ContentType, contentID, commentID uint64, opts *domain.ListOptions) ([]domain.ReplyResponse, int64, error) {
	if err := validateTarget(contentType, contentID); err != nil {
		return nil, 0, err
	}
	if _, err := s.requireContent(contentType, contentID); err != nil {
		return nil, 0, err
	}

	comment, err := s.comments.FindByID(contentType, contentID, commentID)
	if err != nil {
		return nil, 0, err
	}
	if comment == nil {
		return nil, 0, common.ErrCommentNotFound
	}
	opts.Normalize()

	replies, total, err := s.comments.ListReplies(commentID, opts)
	if err != nil {
		return nil, 0, err
	}

	userIDs := make([]uint64, len(replies))
	for i := range replies {
		userIDs[i] = replies[i].UserID
	}
	profiles, err := s.profiles.Resolve(ctx, userIDs)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.ReplyResponse, len(replies))
	for i := range replies {
		result[i] = replies[i].ToReplyResponse(profiles[replies[i].UserID])
	}

	return result, total, nil
}

// DeleteComment removes a comment and all its replies. Allowed for the
// comment author or the owner of the parent content item.
func (s *commentService) DeleteComment(_ context.Context, userID uint64, contentType domain.ContentType, contentID, commentID uint64) error {
	if err := validateTarget(contentType, contentID); err != nil {
		return err
	}
	info, err := s.requireContent(contentType, contentID)
	if err != nil {
		return err
	}

	comment, err := s.comments.FindByID(contentType, contentID, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return common.ErrCommentNotFound
	}

	if userID != comment.UserID && userID != info.OwnerID {
		return common.ErrForbidden
	}

	return s.comments.DeleteWithReplies(commentID)
}

// DeleteReply removes a single reply. Allowed for the reply author, the
// parent comment's author, or the owner of the parent content item.
func (s *commentService) DeleteReply(_ context.Context, userID uint64, contentType domain.ContentType, contentID, commentID, replyID uint64) error {
	if err := validateTarget(contentType, contentID); err != nil {
		return err
	}
	info, err := s.requireContent(contentType, contentID)
	if err != nil {
		return err
	}

	comment, err := s.comments.FindByID(contentType, contentID, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return common.ErrCommentNotFound
	}

	reply, err := s.comments.FindReplyByID(commentID, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return common.ErrReplyNotFound
	}

	if userID != reply.UserID && userID != comment.UserID && userID != info.OwnerID {
		return common.ErrForbidden
	}

	return s.comments.DeleteReply(replyID)
}

// requireContent runs the existence gate, failing NotFound for missing content
func (s *commentService) requireContent(contentType domain.ContentType, contentID uint64) (*domain.ContentInfo, error) {
	info, err := s.contents.Info(contentType, contentID)
	if err != nil {
		return nil, err
	}
	if !info.Exists {
		return nil, common.ErrContentNotFound
	}
	return info, nil
}

func validateTarget(contentType domain.ContentType, contentID uint64) error {
	if !contentType.Valid() {
		return ErrInvalidContentType
	}
	if contentID == 0 {
		return ErrInvalidContentID
	}
	return nil
}

// validateText enforces non-emptiness and the rune-count cap
func validateText(text string, maxLen int) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return ErrTextTooLong
	}
	return nil
}
