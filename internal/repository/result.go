package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// GameResult is one archived row: who won a finished game and when.
type GameResult struct {
	GameID     string
	GameType   string
	Winner     string // mark, or the tie marker for a draw
	FinishedAt time.Time
}

type ResultRepository interface {
	Record(ctx context.Context, game *entity.Game) error
	ListRecent(ctx context.Context, limit int) ([]GameResult, error)
}

type dbResult struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &dbResult{
		conn: conn,
	}
}

func (that *dbResult) Record(ctx context.Context, game *entity.Game) error {
	query := `INSERT INTO results (game_id, game_type, winner, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, game.ID, game.Type, game.Winner, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("can't record game result: %w", err)
	}

	return nil
}

func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]GameResult, error) {
	query := `SELECT game_id, game_type, winner, finished_at FROM results ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list game results: %w", err)
	}
	defer rows.Close()

	var results []GameResult

	for rows.Next() {
		var result GameResult
		if err = rows.Scan(&result.GameID, &result.GameType, &result.Winner, &result.FinishedAt); err != nil {
			return nil, fmt.Errorf("can't scan game result: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read game results: %w", err)
	}

	return results, nil
}
