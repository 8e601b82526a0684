package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/rocketscienceinc/seabattle/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: a new game record
	game := entity.NewGameRecord(entity.RoleServer, time.Now())

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a finished game record
		game := entity.NewGameRecord(entity.RoleClient, time.Now().UTC().Truncate(time.Second))
		game.RecordShot(entity.ShotHit)
		game.RecordShot(entity.ShotMiss)
		game.RecordIncoming()
		game.Finish(entity.OutcomeWin, game.StartedAt.Add(time.Minute))

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, entity.StatusFinished, retrievedGame.Status)
		assert.Equal(t, entity.OutcomeWin, retrievedGame.Outcome)
		assert.Equal(t, 2, retrievedGame.ShotsFired)
		assert.Equal(t, 1, retrievedGame.Hits)
		assert.Equal(t, 1, retrievedGame.ShotsReceived)
		assert.True(t, game.StartedAt.Equal(retrievedGame.StartedAt))
	})

	t.Run("GetByID_Updated", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored ongoing game that finishes later
		game := entity.NewGameRecord(entity.RoleServer, time.Now())
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		game.Finish(entity.OutcomeLose, time.Now())
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the latest state is returned
		require.NoError(t, err)
		assert.True(t, retrievedGame.IsFinished())
		assert.Equal(t, entity.OutcomeLose, retrievedGame.Outcome)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_TTL(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a repository with a one hour TTL
	game := entity.NewGameRecord(entity.RoleServer, time.Now())

	// When: a record is stored
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// Then: the key expires
	ttl, err := st.Storage.TTL(ctx, gameKeyPrefix+game.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGameRecord(entity.RoleServer, time.Now())

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
