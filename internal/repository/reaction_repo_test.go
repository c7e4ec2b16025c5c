package repository

import (
	"testing"

	"github.com/classpulse/engage-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Reel{},
		&domain.Reaction{},
		&domain.Comment{},
		&domain.CommentReply{},
	))
	return db
}

func TestReactionRepo_CreateAndFindByUser(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	missing, err := repo.FindByUser(domain.ContentTypePost, 1, 7, false)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(&domain.Reaction{
		ContentType: domain.ContentTypePost,
		ContentID:   1,
		UserID:      7,
		Kind:        domain.ReactionHappy,
	})
	require.NoError(t, err)

	found, err := repo.FindByUser(domain.ContentTypePost, 1, 7, false)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.ReactionHappy, found.Kind)

	// Same ID on the other content type is a different row space
	other, err := repo.FindByUser(domain.ContentTypeReel, 1, 7, false)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestReactionRepo_UniqueIndexRejectsSecondReaction(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	row := domain.Reaction{
		ContentType: domain.ContentTypePost,
		ContentID:   1,
		UserID:      7,
		Kind:        domain.ReactionLike,
	}
	require.NoError(t, repo.Create(&row))

	dup := domain.Reaction{
		ContentType: domain.ContentTypePost,
		ContentID:   1,
		UserID:      7,
		Kind:        domain.ReactionSad,
	}
	assert.Error(t, repo.Create(&dup))
}

func TestReactionRepo_UpdateKindAndDelete(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	row := domain.Reaction{
		ContentType: domain.ContentTypePost,
		ContentID:   1,
		UserID:      7,
		Kind:        domain.ReactionLike,
	}
	require.NoError(t, repo.Create(&row))

	require.NoError(t, repo.UpdateKind(row.ID, domain.ReactionWow))
	found, err := repo.FindByUser(domain.ContentTypePost, 1, 7, false)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.ReactionWow, found.Kind)

	require.NoError(t, repo.Delete(row.ID))
	gone, err := repo.FindByUser(domain.ContentTypePost, 1, 7, false)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestReactionRepo_ListByContentKeepsCreationOrder(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	for u := uint64(1); u <= 3; u++ {
		require.NoError(t, repo.Create(&domain.Reaction{
			ContentType: domain.ContentTypePost,
			ContentID:   1,
			UserID:      u,
			Kind:        domain.ReactionLike,
		}))
	}

	rows, err := repo.ListByContent(domain.ContentTypePost, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint64(1), rows[0].UserID)
	assert.Equal(t, uint64(3), rows[2].UserID)

	empty, err := repo.ListByContent(domain.ContentTypePost, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReactionRepo_FindByUserAndContents(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&domain.Reaction{
		ContentType: domain.ContentTypePost, ContentID: 1, UserID: 7, Kind: domain.ReactionHug,
	}))
	require.NoError(t, repo.Create(&domain.Reaction{
		ContentType: domain.ContentTypePost, ContentID: 3, UserID: 7, Kind: domain.ReactionSad,
	}))
	require.NoError(t, repo.Create(&domain.Reaction{
		ContentType: domain.ContentTypePost, ContentID: 2, UserID: 8, Kind: domain.ReactionLike,
	}))

	rows, err := repo.FindByUserAndContents(7, domain.ContentTypePost, []uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	none, err := repo.FindByUserAndContents(7, domain.ContentTypePost, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReactionRepo_ToggleInsideTransaction(t *testing.T) {
	repo := NewReactionRepository(setupTestDB(t))

	err := repo.Transaction(func(tx *gorm.DB) error {
		scoped := repo.WithTx(tx)
		existing, err := scoped.FindByUser(domain.ContentTypePost, 1, 7, true)
		if err != nil {
			return err
		}
		if existing == nil {
			return scoped.Create(&domain.Reaction{
				ContentType: domain.ContentTypePost,
				ContentID:   1,
				UserID:      7,
				Kind:        domain.ReactionLike,
			})
		}
		return scoped.Delete(existing.ID)
	})
	require.NoError(t, err)

	found, err := repo.FindByUser(domain.ContentTypePost, 1, 7, false)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
