package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/classpulse/engage-backend/internal/common"
	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/classpulse/engage-backend/internal/middleware"
	"github.com/classpulse/engage-backend/internal/service"
	"github.com/classpulse/engage-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ReactionHandler handles reaction HTTP requests
type ReactionHandler struct {
	service service.ReactionService
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(service service.ReactionService) *ReactionHandler {
	return &ReactionHandler{service: service}
}

// Apply handles POST /contents/:content_type/:id/reactions
func (h *ReactionHandler) Apply(c *gin.Context) {
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

	// Missing or empty body defaults to a plain like
	var req domain.ApplyReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Reaction = ""
	}

	result, err := h.service.Apply(c.Request.Context(), contentType, contentID, userID, req.Reaction)
	if err != nil {
		handleReactionError(c, err)
		return
	}

	middleware.CountReactionWrite(result.Action)
	common.SuccessResponse(c, result)
}

// GetReactions handles GET /contents/:content_type/:id/reactions
func (h *ReactionHandler) GetReactions(c *gin.Context) {
	contentType := domain.ContentType(c.Param("content_type"))
	contentID, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return
	}

	summary, err := h.service.GetReactions(c.Request.Context(), contentType, contentID)
	if err != nil {
		handleReactionError(c, err)
		return
	}

	common.SuccessResponse(c, summary)
}

// GetMyReactions handles GET /reactions/me?content_type=post&content_ids=1,2,3
func (h *ReactionHandler) GetMyReactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	contentType := domain.ContentType(c.Query("content_type"))
	contentIDs := parseIDList(c.Query("content_ids"))

	result, err := h.service.GetMyReactions(c.Request.Context(), userID, contentType, contentIDs)
	if err != nil {
		handleReactionError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// parseIDList splits a comma-separated ID list, silently dropping entries
// that are not well-formed identifiers.
func parseIDList(raw string) []uint64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// handleReactionError maps service errors to HTTP responses
func handleReactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrInvalidContentID),
		errors.Is(err, service.ErrInvalidReactionKind):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, common.ErrContentNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error", err)
	}
}
