package repository

import (
	"testing"

	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedComments(t *testing.T, repo CommentRepository, n int) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		c := domain.Comment{
			ContentType: domain.ContentTypePost,
			ContentID:   1,
			UserID:      uint64(i + 1),
			Text:        "comment",
		}
		require.NoError(t, repo.Create(&c))
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCommentRepo_FindByIDScopedToContent(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ids := seedComments(t, repo, 1)

	found, err := repo.FindByID(domain.ContentTypePost, 1, ids[0])
	require.NoError(t, err)
	require.NotNil(t, found)

	// Same ID requested under the wrong content item resolves to nothing
	wrongItem, err := repo.FindByID(domain.ContentTypePost, 2, ids[0])
	require.NoError(t, err)
	assert.Nil(t, wrongItem)

	wrongType, err := repo.FindByID(domain.ContentTypeReel, 1, ids[0])
	require.NoError(t, err)
	assert.Nil(t, wrongType)
}

func TestCommentRepo_ListByContentPaginates(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ids := seedComments(t, repo, 5)

	opts := &domain.ListOptions{Page: 1, Limit: 2, SortBy: "id", SortOrder: "desc"}
	opts.Normalize()
	page, total, err := repo.ListByContent(domain.ContentTypePost, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID, "newest first")

	opts = &domain.ListOptions{Page: 3, Limit: 2, SortBy: "id", SortOrder: "desc"}
	opts.Normalize()
	last, total, err := repo.ListByContent(domain.ContentTypePost, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, last, 1)
	assert.Equal(t, ids[0], last[0].ID)
}

func TestCommentRepo_DeleteWithReplies(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ids := seedComments(t, repo, 2)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateReply(&domain.CommentReply{
			CommentID: ids[0],
			UserID:    8,
			Text:      "reply",
		}))
	}
	require.NoError(t, repo.CreateReply(&domain.CommentReply{
		CommentID: ids[1],
		UserID:    8,
		Text:      "survivor",
	}))

	require.NoError(t, repo.DeleteWithReplies(ids[0]))

	gone, err := repo.FindByID(domain.ContentTypePost, 1, ids[0])
	require.NoError(t, err)
	assert.Nil(t, gone)

	count, err := repo.CountReplies(ids[0])
	require.NoError(t, err)
	assert.Zero(t, count)

	// The sibling comment's reply is untouched
	count, err = repo.CountReplies(ids[1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepo_ListRepliesForComments(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ids := seedComments(t, repo, 3)

	for _, commentID := range ids[:2] {
		for i := 0; i < 2; i++ {
			require.NoError(t, repo.CreateReply(&domain.CommentReply{
				CommentID: commentID,
				UserID:    8,
				Text:      "reply",
			}))
		}
	}

	replies, err := repo.ListRepliesForComments(ids)
	require.NoError(t, err)
	assert.Len(t, replies, 4)
	for i := 1; i < len(replies); i++ {
		assert.Less(t, replies[i-1].ID, replies[i].ID, "creation order")
	}

	none, err := repo.ListRepliesForComments(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCommentRepo_ReplyLookupAndDelete(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ids := seedComments(t, repo, 1)

	reply := domain.CommentReply{CommentID: ids[0], UserID: 8, Text: "reply"}
	require.NoError(t, repo.CreateReply(&reply))

	found, err := repo.FindReplyByID(ids[0], reply.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	wrongParent, err := repo.FindReplyByID(ids[0]+1, reply.ID)
	require.NoError(t, err)
	assert.Nil(t, wrongParent)

	require.NoError(t, repo.DeleteReply(reply.ID))
	gone, err := repo.FindReplyByID(ids[0], reply.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestContentRepo_Info(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	require.NoError(t, db.Create(&domain.Post{UserID: 99, Caption: "hi"}).Error)
	require.NoError(t, db.Create(&domain.Reel{UserID: 42, Caption: "clip", VideoURL: "v.mp4"}).Error)

	post, err := repo.Info(domain.ContentTypePost, 1)
	require.NoError(t, err)
	assert.True(t, post.Exists)
	assert.Equal(t, uint64(99), post.OwnerID)

	reel, err := repo.Info(domain.ContentTypeReel, 1)
	require.NoError(t, err)
	assert.True(t, reel.Exists)
	assert.Equal(t, uint64(42), reel.OwnerID)

	missing, err := repo.Info(domain.ContentTypePost, 404)
	require.NoError(t, err)
	assert.False(t, missing.Exists)
}

func TestUserRepo_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, db.Create(&domain.User{Name: "amy", Avatar: "a.png"}).Error)
	require.NoError(t, db.Create(&domain.User{Name: "ben"}).Error)

	users, err := repo.FindByIDs([]uint64{1, 2, 999})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	none, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
