package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/classpulse/engage-backend/internal/common"
	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/classpulse/engage-backend/internal/repository"
	"github.com/classpulse/engage-backend/pkg/cache"
	"github.com/classpulse/engage-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidContentType  = errors.New("invalid content type")
	ErrInvalidContentID    = errors.New("invalid content id")
	ErrInvalidReactionKind = errors.New("invalid reaction kind")
)

// ReactionService implements the toggle/switch reaction engine and its
// query operations.
type ReactionService interface {
	Apply(ctx context.Context, contentType domain.ContentType, contentID, userID uint64, kind domain.ReactionKind) (*domain.ApplyReactionResponse, error)
	GetReactions(ctx context.Context, contentType domain.ContentType, contentID uint64) (domain.ReactionSummary, error)
	GetMyReactions(ctx context.Context, userID uint64, contentType domain.ContentType, contentIDs []uint64) (map[uint64]*domain.ReactionKind, error)
}

type reactionService struct {
	reactions repository.ReactionRepository
	contents  repository.ContentRepository
	profiles  ProfileResolver
	cache     cache.Service
}

// NewReactionService creates a new ReactionService
func NewReactionService(
	reactions repository.ReactionRepository,
	contents repository.ContentRepository,
	profiles ProfileResolver,
	cacheService cache.Service,
) ReactionService {
	return &reactionService{
		reactions: reactions,
		contents:  contents,
		profiles:  profiles,
		cache:     cacheService,
	}
}

// Apply toggles or switches a user's reaction on a content item. The
// existence check, the current-reaction read and the mutation run in one
// database transaction so concurrent calls never produce two reactions for
// the same user; the unique index on (content_type, content_id, user_id)
// backs the invariant at the store level. Errors on this path propagate to
// the caller after rollback.
func (s *reactionService) Apply(ctx context.Context, contentType domain.ContentType, contentID, userID uint64, kind domain.ReactionKind) (*domain.ApplyReactionResponse, error) {
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}
	if contentID == 0 {
		return nil, ErrInvalidContentID
	}
	if kind == "" {
		kind = domain.ReactionLike
	}
	if !kind.Valid() {
		return nil, ErrInvalidReactionKind
	}

	var (
		action  string
		current *domain.ReactionKind
		rows    []domain.Reaction
	)

	err := s.reactions.Transaction(func(tx *gorm.DB) error {
		info, err := s.contents.WithTx(tx).Info(contentType, contentID)
		if err != nil {
			return err
		}
		if !info.Exists {
			return common.ErrContentNotFound
		}

		repo := s.reactions.WithTx(tx)
		existing, err := repo.FindByUser(contentType, contentID, userID, true)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			// No prior reaction: add
			reaction := &domain.Reaction{
				ContentType: contentType,
				ContentID:   contentID,
				UserID:      userID,
				Kind:        kind,
			}
			if err := repo.Create(reaction); err != nil {
				return err
			}
			action = domain.ReactionActionLiked
			k := kind
			current = &k

		case existing.Kind == kind:
			// Same kind: toggle off
			if err := repo.Delete(existing.ID); err != nil {
				return err
			}
			action = domain.ReactionActionUnliked
			current = nil

		default:
			// Different kind: switch in place
			if err := repo.UpdateKind(existing.ID, kind); err != nil {
				return err
			}
			action = domain.ReactionActionUpdated
			k := kind
			current = &k
		}

		rows, err = repo.ListByContent(contentType, contentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cerr := s.cache.InvalidateReactions(ctx, string(contentType), contentID); cerr != nil {
			logger.Warn("cache: failed to invalidate reactions %s/%d: %v", contentType, contentID, cerr)
		}
	}

	summary, err := s.summarize(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &domain.ApplyReactionResponse{
		Action:    action,
		Reaction:  current,
		LikeCount: len(rows),
		IsLiked:   current != nil,
		Reactions: summary,
	}, nil
}

// GetReactions returns the per-kind aggregate for a content item. Content
// with no reactions yields an empty mapping, not an error.
func (s *reactionService) GetReactions(ctx context.Context, contentType domain.ContentType, contentID uint64) (domain.ReactionSummary, error) {
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}
	if contentID == 0 {
		return nil, ErrInvalidContentID
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if data, err := s.cache.GetReactions(ctx, string(contentType), contentID); err == nil {
			var cached domain.ReactionSummary
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.reactions.ListByContent(contentType, contentID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, rows)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cerr := s.cache.SetReactions(ctx, string(contentType), contentID, summary); cerr != nil {
			logger.Warn("cache: failed to set reactions %s/%d: %v", contentType, contentID, cerr)
		}
	}

	return summary, nil
}

// GetMyReactions batch-looks-up one user's reaction across content items.
// IDs the user never reacted to map to null.
func (s *reactionService) GetMyReactions(ctx context.Context, userID uint64, contentType domain.ContentType, contentIDs []uint64) (map[uint64]*domain.ReactionKind, error) {
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}

	result := make(map[uint64]*domain.ReactionKind, len(contentIDs))
	for _, id := range contentIDs {
		result[id] = nil
	}

	rows, err := s.reactions.FindByUserAndContents(userID, contentType, contentIDs)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		k := rows[i].Kind
		result[rows[i].ContentID] = &k
	}

	return result, nil
}

// summarize groups reaction rows into per-kind buckets with resolved user
// profiles, preserving reaction creation order inside each bucket.
func (s *reactionService) summarize(ctx context.Context, rows []domain.Reaction) (domain.ReactionSummary, error) {
	summary := make(domain.ReactionSummary)
	if len(rows) == 0 {
		return summary, nil
	}

	userIDs := make([]uint64, 0, len(rows))
	for i := range rows {
		userIDs = append(userIDs, rows[i].UserID)
	}

	profiles, err := s.profiles.Resolve(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		bucket := summary[rows[i].Kind]
		bucket.Count++
		bucket.Users = append(bucket.Users, profiles[rows[i].UserID])
		summary[rows[i].Kind] = bucket
	}

	return summary, nil
}
