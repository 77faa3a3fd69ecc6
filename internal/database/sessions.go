package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/VarshiniKilaru09/quotes-project/internal/models"
)

type CreateSessionParams struct {
	Token    string
	Username string
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) error {
	query := `
		INSERT INTO sessions (token, username)
		VALUES ($1, $2)
	`
	_, err := q.db.Exec(ctx, query, arg.Token, arg.Username)
	return err
}

func (q *Queries) GetSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT token, username, created_at
		FROM sessions
		WHERE token = $1
	`
	var session models.Session
	err := q.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.Username,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (q *Queries) DeleteSessionByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := q.db.Exec(ctx, query, token)
	return err
}
