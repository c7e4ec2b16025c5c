package routes

import (
	"github.com/classpulse/engage-backend/internal/handler"
	"github.com/classpulse/engage-backend/internal/middleware"
	"github.com/classpulse/engage-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Setup configures the engagement API routes. Reads accept anonymous
// requests with optional auth context; every mutation requires a token.
func Setup(
	router *gin.Engine,
	reactions *handler.ReactionHandler,
	comments *handler.CommentHandler,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)
	writeLimit := middleware.RateLimit(redisClient, middleware.WriteRateLimitConfig())

	// Reactions (nested under a content item). The static /contents prefix
	// keeps the wildcard segment from clashing with /reactions/me in gin's
	// route tree.
	content := api.Group("/contents/:content_type/:id")
	content.POST("/reactions", auth, writeLimit, reactions.Apply)
	content.GET("/reactions", optionalAuth, reactions.GetReactions)

	// Batch lookup of the caller's own reactions
	api.GET("/reactions/me", auth, reactions.GetMyReactions)

	// Comments (nested under a content item)
	thread := content.Group("/comments")
	thread.GET("", optionalAuth, comments.GetComments)
	thread.POST("", auth, writeLimit, comments.CreateComment)
	thread.DELETE("/:comment_id", auth, comments.DeleteComment)

	// Replies (nested under a comment)
	replies := thread.Group("/:comment_id/replies")
	replies.GET("", optionalAuth, comments.GetReplies)
	replies.POST("", auth, writeLimit, comments.CreateReply)
	replies.DELETE("/:reply_id", auth, comments.DeleteReply)
}
