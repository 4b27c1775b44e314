package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamshelldy/runfromcats-backend/internal/apperror"
	"github.com/iamshelldy/runfromcats-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, sessionID string) (*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT OR REPLACE INTO users (session_id, name) VALUES (?, ?)`

	_, err := that.conn.ExecContext(ctx, query, user.SessionID, user.Name)
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) Find(ctx context.Context, sessionID string) (*entity.User, error) {
	query := `SELECT session_id, name FROM users WHERE session_id = ?`

	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, sessionID).Scan(&user.SessionID, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}
