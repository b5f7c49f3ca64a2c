package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/repository"
)

// GamePlayService orchestrates the full match flow: creating and joining
// games, applying human turns, letting the bot answer, and archiving finished
// games.
type GamePlayService interface {
	NewGame(ctx context.Context, playerID, playerName, gameType string) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID, playerName string) (*entity.Game, error)
	CurrentGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, entity.MoveResult, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type resultRepo interface {
	Record(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	resultRepo    resultRepo
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, resultRepo resultRepo) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		resultRepo:    resultRepo,
	}
}

// NewGame creates a game for the player. A bot game is seated and started
// immediately; a PvP game waits for a second player to join.
func (that *gamePlayService) NewGame(ctx context.Context, playerID, playerName, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		if existing, getErr := that.gameService.GetGameByID(ctx, player.GameID); getErr == nil && !existing.IsFinished() {
			return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, existing.ID)
		}
	}

	player.Name = playerName

	game, err := that.gameService.CreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsWithBot() {
		botPlayer := entity.NewBotPlayer(game.ID)
		game.Start(player, botPlayer)

		if err = that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
			return nil, fmt.Errorf("failed to update bot player: %w", err)
		}
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// JoinGameByID seats a second player into a waiting PvP game and starts it.
func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID, playerName string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if len(game.Players) >= 2 || !game.IsWaiting() {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, gameID)
	}

	player.Name = playerName
	game.Start(game.Players[0], player)

	for _, seated := range game.Players {
		if err = that.playerService.UpdatePlayer(ctx, seated); err != nil {
			return nil, fmt.Errorf("failed to update player: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// CurrentGame returns the game the player is seated in.
func (that *gamePlayService) CurrentGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, repository.ErrGameNotFound
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn applies the player's move. In a bot game the computer answers in
// the same call; any client-side thinking delay is purely presentational. The
// returned MoveResult reflects the state after the full exchange.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, entity.MoveResult, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, entity.MoveResult{}, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, entity.MoveResult{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, entity.MoveResult{}, err
	}

	if game.Turn != player.Mark {
		return game, entity.MoveResult{}, apperror.ErrNotYourTurn
	}

	result, err := game.MakeMove(cell)
	if err != nil {
		return game, result, fmt.Errorf("failed to make turn: %w", err)
	}

	if !result.GameOver && game.IsBotTurn() {
		if result, err = that.botService.MakeTurn(game); err != nil {
			return game, result, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		if recordErr := that.resultRepo.Record(ctx, game); recordErr != nil {
			that.logger.Error("failed to record game result", "gameID", game.ID, "error", recordErr)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, result, fmt.Errorf("failed to update game: %w", err)
	}

	return game, result, nil
}

// CleanupGame deletes a finished game and releases its players.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		player.GameID = ""
		player.Mark = ""

		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}

	log.Info("game cleaned up")
}
