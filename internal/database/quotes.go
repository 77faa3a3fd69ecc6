package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/VarshiniKilaru09/quotes-project/internal/models"
)

var ErrQuoteNotFound = errors.New("quote not found")

type CreateQuoteParams struct {
	ID     string
	Owner  string
	Text   string
	Author string
	Date   string
	Public bool
}

func (q *Queries) CreateQuote(ctx context.Context, arg CreateQuoteParams) (*models.Quote, error) {
	query := `
		INSERT INTO quotes (id, owner, text, author, date, public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner, text, author, date, public
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.Owner,
		arg.Text,
		arg.Author,
		arg.Date,
		arg.Public,
	)

	var quote models.Quote
	err := row.Scan(
		&quote.ID,
		&quote.Owner,
		&quote.Text,
		&quote.Author,
		&quote.Date,
		&quote.Public,
	)
	if err != nil {
		return nil, err
	}

	quote.Comments = []models.Comment{}
	return &quote, nil
}

func (q *Queries) QuoteExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM quotes WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (q *Queries) GetQuoteByID(ctx context.Context, id string) (*models.Quote, error) {
	query := `
		SELECT id, owner, text, author, date, public
		FROM quotes
		WHERE id = $1
	`
	var quote models.Quote
	err := q.db.QueryRow(ctx, query, id).Scan(
		&quote.ID,
		&quote.Owner,
		&quote.Text,
		&quote.Author,
		&quote.Date,
		&quote.Public,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	quotes := []models.Quote{quote}
	if err := q.attachComments(ctx, quotes); err != nil {
		return nil, err
	}

	return &quotes[0], nil
}

func (q *Queries) ListQuotesByOwner(ctx context.Context, owner string) ([]models.Quote, error) {
	query := `
		SELECT id, owner, text, author, date, public
		FROM quotes
		WHERE owner = $1
		ORDER BY created_at
	`
	return q.listQuotes(ctx, query, owner)
}

func (q *Queries) ListPublicQuotes(ctx context.Context) ([]models.Quote, error) {
	query := `
		SELECT id, owner, text, author, date, public
		FROM quotes
		WHERE public
		ORDER BY created_at
	`
	return q.listQuotes(ctx, query)
}

func (q *Queries) ListAllQuotes(ctx context.Context) ([]models.Quote, error) {
	query := `
		SELECT id, owner, text, author, date, public
		FROM quotes
		ORDER BY created_at
	`
	return q.listQuotes(ctx, query)
}

func (q *Queries) listQuotes(ctx context.Context, query string, args ...interface{}) ([]models.Quote, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var quote models.Quote
		err := rows.Scan(
			&quote.ID,
			&quote.Owner,
			&quote.Text,
			&quote.Author,
			&quote.Date,
			&quote.Public,
		)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if quotes == nil {
		return []models.Quote{}, nil
	}

	if err := q.attachComments(ctx, quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

type UpdateQuoteTextParams struct {
	ID     string
	Text   string
	Author string
}

func (q *Queries) UpdateQuoteText(ctx context.Context, arg UpdateQuoteTextParams) (bool, error) {
	query := `
		UPDATE quotes
		SET text = $1, author = $2
		WHERE id = $3
	`
	res, err := q.db.Exec(ctx, query, arg.Text, arg.Author, arg.ID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteQuote(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM quotes WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
