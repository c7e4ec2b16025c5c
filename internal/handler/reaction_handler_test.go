package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/classpulse/engage-backend/internal/common"
	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReactionService struct {
	applyResult *domain.ApplyReactionResponse
	applyErr    error
	lastKind    domain.ReactionKind
}

func (s *stubReactionService) Apply(_ context.Context, _ domain.ContentType, _, _ uint64, kind domain.ReactionKind) (*domain.ApplyReactionResponse, error) {
	s.lastKind = kind
	return s.applyResult, s.applyErr
}

func (s *stubReactionService) GetReactions(_ context.Context, _ domain.ContentType, _ uint64) (domain.ReactionSummary, error) {
	return domain.ReactionSummary{}, nil
}

func (s *stubReactionService) GetMyReactions(_ context.Context, _ uint64, _ domain.ContentType, _ []uint64) (map[uint64]*domain.ReactionKind, error) {
	return map[uint64]*domain.ReactionKind{}, nil
}

func newReactionRouter(svc *stubReactionService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if userID != 0 {
		router.Use(func(c *gin.Context) {
			c.Set("userID", userID)
		})
	}
	h := NewReactionHandler(svc)
	router.POST("/api/v1/contents/:content_type/:id/reactions", h.Apply)
	router.GET("/api/v1/contents/:content_type/:id/reactions", h.GetReactions)
	return router
}

func likedResponse() *domain.ApplyReactionResponse {
	k := domain.ReactionLike
	return &domain.ApplyReactionResponse{
		Action:    domain.ReactionActionLiked,
		Reaction:  &k,
		LikeCount: 1,
		IsLiked:   true,
		Reactions: domain.ReactionSummary{},
	}
}

func TestApplyHandler_RequiresAuth(t *testing.T) {
	router := newReactionRouter(&stubReactionService{applyResult: likedResponse()}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents/post/1/reactions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplyHandler_EmptyBodyDefaultsToLike(t *testing.T) {
	svc := &stubReactionService{applyResult: likedResponse()}
	router := newReactionRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents/post/1/reactions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ReactionKind(""), svc.lastKind)

	var body common.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestApplyHandler_PassesRequestedKind(t *testing.T) {
	svc := &stubReactionService{applyResult: likedResponse()}
	router := newReactionRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents/post/1/reactions",
		strings.NewReader(`{"reaction":"hug"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ReactionHug, svc.lastKind)
}

func TestApplyHandler_MissingContentMapsTo404(t *testing.T) {
	svc := &stubReactionService{applyErr: common.ErrContentNotFound}
	router := newReactionRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents/post/42/reactions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyHandler_BadContentID(t *testing.T) {
	svc := &stubReactionService{applyResult: likedResponse()}
	router := newReactionRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents/post/abc/reactions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint64
	}{
		{"empty", "", nil},
		{"single", "5", []uint64{5}},
		{"multiple with spaces", "1, 2, 3", []uint64{1, 2, 3}},
		{"drops malformed", "1,abc,3", []uint64{1, 3}},
		{"drops zero", "0,4", []uint64{4}},
		{"trailing comma", "1,2,", []uint64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIDList(tt.input))
		})
	}
}
