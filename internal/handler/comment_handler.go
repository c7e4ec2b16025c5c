package handler

import (
	"errors"
	"net/http"

	"github.com/classpulse/engage-backend/internal/common"
	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/classpulse/engage-backend/internal/middleware"
	"github.com/classpulse/engage-backend/internal/service"
	"github.com/classpulse/engage-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment and reply HTTP requests
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment handles POST /contents/:content_type/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "text is required", err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), userID, contentType, contentID, req.Text)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	common.CreatedResponse(c, comment)
}

// CreateReply handles POST /contents/:content_type/:id/comments/:comment_id/replies
func (h *CommentHandler) CreateReply(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}
	commentID, err := ginutil.ParamUint64(c, "comment_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}

	var req domain.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "text is required", err)
		return
	}

	result, err := h.service.AddReply(c.Request.Context(), userID, contentType, contentID, commentID, req.Text)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	common.CreatedResponse(c, result)
}

// GetComments handles GET /contents/:content_type/:id/comments
func (h *CommentHandler) GetComments(c *gin.Context) {
	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}

	opts := listOptionsFromQuery(c)
	comments, total, err := h.service.GetComments(c.Request.Context(), contentType, contentID, opts)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	common.SuccessWithMeta(c, comments, common.NewMeta(opts.Page, opts.Limit, total))
}

// GetReplies handles GET /contents/:content_type/:id/comments/:comment_id/replies
func (h *CommentHandler) GetReplies(c *gin.Context) {
	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}
	commentID, err := ginutil.ParamUint64(c, "comment_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}

	opts := listOptionsFromQuery(c)
	replies, total, err := h.service.GetReplies(c.Request.Context(), contentType, contentID, commentID, opts)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	common.SuccessWithMeta(c, replies, common.NewMeta(opts.Page, opts.Limit, total))
}

// DeleteComment handles DELETE /contents/:content_type/:id/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}
	commentID, err := ginutil.ParamUint64(c, "comment_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, contentType, contentID, commentID); err != nil {
		handleCommentError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true})
}

// DeleteReply handles DELETE /contents/:content_type/:id/comments/:comment_id/replies/:reply_id
func (h *CommentHandler) DeleteReply(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}
	commentID, err := ginutil.ParamUint64(c, "comment_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}
	replyID, err := ginutil.ParamUint64(c, "reply_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid reply id", err)
		return
	}

	if err := h.service.DeleteReply(c.Request.Context(), userID, contentType, contentID, commentID, replyID); err != nil {
		handleCommentError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true})
}

// listOptionsFromQuery reads the pagination window from query parameters
func listOptionsFromQuery(c *gin.Context) *domain.ListOptions {
	return &domain.ListOptions{
		Page:      ginutil.QueryInt(c, "page", 1),
		Limit:     ginutil.QueryInt(c, "limit", 20),
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
}

// handleCommentError maps service errors to HTTP responses
func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrInvalidContentID),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrTextTooLong):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, common.ErrContentNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrReplyNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "not allowed to delete this item", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error", err)
	}
}
