// Package sqlite provides a SQLite-backed implementation of the storage
// interface, using the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

//go:embed schema.sql
var schema string

// Store persists application state in SQLite
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite store at the given path and applies the
// embedded schema
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// User operations

func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			password_hash = excluded.password_hash`,
		string(user.ID), user.Username, user.Email, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.getUserWhere(ctx, "id = ?", string(id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUserWhere(ctx, "email = ?", email)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getUserWhere(ctx, "username = ?", username)
}

func (s *Store) getUserWhere(ctx context.Context, where string, arg any) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash FROM users WHERE "+where, arg)

	var user model.User
	var id string
	if err := row.Scan(&id, &user.Username, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.ID = model.UserID(id)
	return &user, nil
}

// Token operations

func (s *Store) SaveToken(ctx context.Context, token model.Token, userID model.UserID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (token, user_id) VALUES (?, ?)
		ON CONFLICT (token) DO UPDATE SET user_id = excluded.user_id`,
		string(token), string(userID))
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) GetTokenUser(ctx context.Context, token model.Token) (model.UserID, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT user_id FROM tokens WHERE token = ?", string(token))

	var userID string
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrTokenNotFound
		}
		return "", fmt.Errorf("get token: %w", err)
	}
	return model.UserID(userID), nil
}

func (s *Store) DeleteToken(ctx context.Context, token model.Token) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM tokens WHERE token = ?", string(token)); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Result operations

func (s *Store) AppendResult(ctx context.Context, result *model.MatchResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, player1, player2, winner, player1_score,
			player2_score, mode, duration, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(result.ID), result.Player1, result.Player2, result.Winner,
		result.Player1Score, result.Player2Score, string(result.Mode),
		result.Duration, result.Timestamp)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (s *Store) ListResults(ctx context.Context) ([]*model.MatchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player1, player2, winner, player1_score, player2_score,
			mode, duration, timestamp
		FROM results ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*model.MatchResult
	for rows.Next() {
		var result model.MatchResult
		var id, mode string
		if err := rows.Scan(&id, &result.Player1, &result.Player2, &result.Winner,
			&result.Player1Score, &result.Player2Score, &mode,
			&result.Duration, &result.Timestamp); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		result.ID = model.ResultID(id)
		result.Mode = model.GameMode(mode)
		results = append(results, &result)
	}
	return results, rows.Err()
}

// Room operations

func (s *Store) SaveRoom(ctx context.Context, room *model.Room) error {
	players, err := json.Marshal(room.Players)
	if err != nil {
		return fmt.Errorf("marshal players: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rooms (id, host_username, mode, status, players, max_players)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			host_username = excluded.host_username,
			mode = excluded.mode,
			status = excluded.status,
			players = excluded.players,
			max_players = excluded.max_players`,
		string(room.ID), room.HostUsername, string(room.Mode),
		string(room.Status), string(players), room.MaxPlayers)
	if err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

func (s *Store) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, host_username, mode, status, players, max_players
		FROM rooms WHERE id = ?`, string(id))

	var room model.Room
	var roomID, mode, status, players string
	if err := row.Scan(&roomID, &room.HostUsername, &mode, &status,
		&players, &room.MaxPlayers); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	room.ID = model.RoomID(roomID)
	room.Mode = model.GameMode(mode)
	room.Status = model.RoomStatus(status)
	if err := json.Unmarshal([]byte(players), &room.Players); err != nil {
		return nil, fmt.Errorf("unmarshal players: %w", err)
	}
	return &room, nil
}

func (s *Store) DeleteRoom(ctx context.Context, id model.RoomID) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM rooms WHERE id = ?", string(id)); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// Live game operations

func (s *Store) SaveLiveGame(ctx context.Context, game *model.LiveGame) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO live_games (id, player1, player2, player1_score,
			player2_score, mode, time_remaining, player1_alive, player2_alive)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			player1_score = excluded.player1_score,
			player2_score = excluded.player2_score,
			time_remaining = excluded.time_remaining,
			player1_alive = excluded.player1_alive,
			player2_alive = excluded.player2_alive`,
		string(game.ID), game.Player1, game.Player2, game.Player1Score,
		game.Player2Score, string(game.Mode), game.TimeRemaining,
		game.Player1Alive, game.Player2Alive)
	if err != nil {
		return fmt.Errorf("save live game: %w", err)
	}
	return nil
}

func (s *Store) ListLiveGames(ctx context.Context) ([]*model.LiveGame, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player1, player2, player1_score, player2_score, mode,
			time_remaining, player1_alive, player2_alive
		FROM live_games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list live games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var games []*model.LiveGame
	for rows.Next() {
		var game model.LiveGame
		var id, mode string
		if err := rows.Scan(&id, &game.Player1, &game.Player2,
			&game.Player1Score, &game.Player2Score, &mode,
			&game.TimeRemaining, &game.Player1Alive, &game.Player2Alive); err != nil {
			return nil, fmt.Errorf("scan live game: %w", err)
		}
		game.ID = model.LiveGameID(id)
		game.Mode = model.GameMode(mode)
		games = append(games, &game)
	}
	return games, rows.Err()
}
