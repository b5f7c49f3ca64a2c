package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/ai"
	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/repository"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

type memPlayerRepo struct {
	players map[string]*entity.Player
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{players: make(map[string]*entity.Player)}
}

func (that *memPlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	copied := *player
	that.players[player.ID] = &copied

	return nil
}

func (that *memPlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}

	copied := *player

	return &copied, nil
}

type memGameRepo struct {
	games map[string]*entity.Game
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{games: make(map[string]*entity.Game)}
}

func (that *memGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games[game.ID] = game

	return nil
}

func (that *memGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}

	return game, nil
}

func (that *memGameRepo) DeleteByID(_ context.Context, id string) error {
	delete(that.games, id)

	return nil
}

type memResultRepo struct {
	recorded []entity.Game
}

func (that *memResultRepo) Record(_ context.Context, game *entity.Game) error {
	that.recorded = append(that.recorded, *game)

	return nil
}

type gamePlayFixture struct {
	playerRepo *memPlayerRepo
	gameRepo   *memGameRepo
	resultRepo *memResultRepo
	players    PlayerService
	gamePlay   GamePlayService
}

func newGamePlayFixture(t *testing.T) *gamePlayFixture {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	playerRepo := newMemPlayerRepo()
	gameRepo := newMemGameRepo()
	resultRepo := &memResultRepo{}

	playerService := NewPlayerService(playerRepo)
	gameService := NewGameService(gameRepo)
	botService := NewBotService(ai.NewMinimaxSelector())

	return &gamePlayFixture{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		players:    playerService,
		gamePlay:   NewGamePlayService(logger, playerService, gameService, botService, resultRepo),
	}
}

func (that *gamePlayFixture) seedPlayer(t *testing.T, id string) {
	t.Helper()

	require.NoError(t, that.playerRepo.CreateOrUpdate(context.Background(), &entity.Player{ID: id}))
}

func TestGamePlayService_NewGame(t *testing.T) {
	t.Run("Bot game is seated and started immediately", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")

		// When: creating a game against the computer
		game, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.WithBotType)

		// Then: two seats, human X, bot O, game ongoing
		require.NoError(t, err)
		require.Len(t, game.Players, 2)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, tictactoe.PlayerX, game.Players[0].Mark)
		assert.Equal(t, "Arnold", game.Players[0].Name)
		require.True(t, game.Players[1].IsBot())
		assert.Equal(t, tictactoe.PlayerO, game.Players[1].Mark)
	})

	t.Run("PvP game waits for the second player", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")

		game, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusWaiting, game.Status)
		require.Len(t, game.Players, 1)
	})

	t.Run("Refuses a second live game for the same player", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")

		_, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.WithBotType)
		require.NoError(t, err)

		_, err = fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.WithBotType)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
	})
}

func TestGamePlayService_JoinGameByID(t *testing.T) {
	t.Run("Second player starts the game", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")
		fixture.seedPlayer(t, "p2")

		created, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)
		require.NoError(t, err)

		// When: the second player joins
		game, err := fixture.gamePlay.JoinGameByID(ctx, created.ID, "p2", "Bella")

		// Then: fixed marks and an ongoing game
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		require.Len(t, game.Players, 2)
		assert.Equal(t, tictactoe.PlayerX, game.Players[0].Mark)
		assert.Equal(t, tictactoe.PlayerO, game.Players[1].Mark)
		assert.Equal(t, "Bella", game.Players[1].Name)
	})

	t.Run("Rejects a third player", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")
		fixture.seedPlayer(t, "p2")
		fixture.seedPlayer(t, "p3")

		created, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)
		require.NoError(t, err)

		_, err = fixture.gamePlay.JoinGameByID(ctx, created.ID, "p2", "Bella")
		require.NoError(t, err)

		_, err = fixture.gamePlay.JoinGameByID(ctx, created.ID, "p3", "Casey")

		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("Bot answers in the same call", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")

		_, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.WithBotType)
		require.NoError(t, err)

		// When: the human plays a corner
		game, result, err := fixture.gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: the bot replied immediately and the human holds the turn again
		require.NoError(t, err)
		assert.False(t, result.GameOver)
		assert.Equal(t, tictactoe.PlayerX, game.Turn)
		assert.Equal(t, tictactoe.PlayerX, game.Board[0])

		var bots int
		for _, mark := range game.Board {
			if mark == tictactoe.PlayerO {
				bots++
			}
		}
		assert.Equal(t, 1, bots)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")
		fixture.seedPlayer(t, "p2")

		created, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)
		require.NoError(t, err)
		_, err = fixture.gamePlay.JoinGameByID(ctx, created.ID, "p2", "Bella")
		require.NoError(t, err)

		// When: O tries to open
		_, _, err = fixture.gamePlay.MakeTurn(ctx, "p2", 0)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects a move before the game starts", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")

		_, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)
		require.NoError(t, err)

		_, _, err = fixture.gamePlay.MakeTurn(ctx, "p1", 0)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Finished game is archived", func(t *testing.T) {
		ctx := context.Background()
		fixture := newGamePlayFixture(t)
		fixture.seedPlayer(t, "p1")
		fixture.seedPlayer(t, "p2")

		created, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.PvPType)
		require.NoError(t, err)
		_, err = fixture.gamePlay.JoinGameByID(ctx, created.ID, "p2", "Bella")
		require.NoError(t, err)

		// X takes the top row while O wanders
		moves := []struct {
			playerID string
			cell     int
		}{
			{"p1", 0}, {"p2", 3}, {"p1", 1}, {"p2", 4},
		}
		for _, move := range moves {
			_, _, err = fixture.gamePlay.MakeTurn(ctx, move.playerID, move.cell)
			require.NoError(t, err)
		}

		game, result, err := fixture.gamePlay.MakeTurn(ctx, "p1", 2)

		require.NoError(t, err)
		assert.True(t, result.GameOver)
		assert.Equal(t, tictactoe.PlayerX, result.Winner)
		assert.Equal(t, entity.StatusFinished, game.Status)

		require.Len(t, fixture.resultRepo.recorded, 1)
		assert.Equal(t, game.ID, fixture.resultRepo.recorded[0].ID)
		assert.Equal(t, tictactoe.PlayerX, fixture.resultRepo.recorded[0].Winner)

		// and no further moves are accepted
		_, _, err = fixture.gamePlay.MakeTurn(ctx, "p2", 5)
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestGamePlayService_CleanupGame(t *testing.T) {
	ctx := context.Background()
	fixture := newGamePlayFixture(t)
	fixture.seedPlayer(t, "p1")

	game, err := fixture.gamePlay.NewGame(ctx, "p1", "Arnold", entity.WithBotType)
	require.NoError(t, err)

	// When: cleaning up
	fixture.gamePlay.CleanupGame(ctx, game)

	// Then: the game is gone and the player is released
	_, err = fixture.gameRepo.GetByID(ctx, game.ID)
	assert.ErrorIs(t, err, repository.ErrGameNotFound)

	released, err := fixture.playerRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, released.GameID)
	assert.Empty(t, released.Mark)
}
