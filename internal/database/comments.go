package database

import (
	"context"

	"github.com/VarshiniKilaru09/quotes-project/internal/models"
)

type AddCommentParams struct {
	ID      string
	QuoteID string
	Text    string
	Author  string
	Date    string
	Public  bool
}

// AddComment appends a comment to the end of the quote's comment sequence.
func (q *Queries) AddComment(ctx context.Context, arg AddCommentParams) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, quote_id, text, author, date, public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, text, author, date, public
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.QuoteID,
		arg.Text,
		arg.Author,
		arg.Date,
		arg.Public,
	)

	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.Text,
		&comment.Author,
		&comment.Date,
		&comment.Public,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// UpdateCommentText replaces the text of the comment matched by both the
// quote id and the comment id.
func (q *Queries) UpdateCommentText(ctx context.Context, quoteID, commentID, text string) (bool, error) {
	query := `
		UPDATE comments
		SET text = $1
		WHERE quote_id = $2 AND id = $3
	`
	res, err := q.db.Exec(ctx, query, text, quoteID, commentID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// DeleteComment removes the comment from the quote's sequence. Deleting an
// id that is not present on the quote is a no-op.
func (q *Queries) DeleteComment(ctx context.Context, quoteID, commentID string) (bool, error) {
	query := `DELETE FROM comments WHERE quote_id = $1 AND id = $2`
	res, err := q.db.Exec(ctx, query, quoteID, commentID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) ListCommentsForQuote(ctx context.Context, quoteID string) ([]models.Comment, error) {
	query := `
		SELECT id, text, author, date, public
		FROM comments
		WHERE quote_id = $1
		ORDER BY seq
	`
	rows, err := q.db.Query(ctx, query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.Text,
			&comment.Author,
			&comment.Date,
			&comment.Public,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if comments == nil {
		return []models.Comment{}, nil
	}

	return comments, nil
}

// attachComments loads the comment sequences for a batch of quotes with a
// single query and fills them in insertion order.
func (q *Queries) attachComments(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	ids := make([]string, 0, len(quotes))
	for i := range quotes {
		quotes[i].Comments = []models.Comment{}
		ids = append(ids, quotes[i].ID)
	}

	query := `
		SELECT quote_id, id, text, author, date, public
		FROM comments
		WHERE quote_id = ANY($1)
		ORDER BY seq
	`
	rows, err := q.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byQuote := make(map[string][]models.Comment)
	for rows.Next() {
		var quoteID string
		var comment models.Comment
		err := rows.Scan(
			&quoteID,
			&comment.ID,
			&comment.Text,
			&comment.Author,
			&comment.Date,
			&comment.Public,
		)
		if err != nil {
			return err
		}
		byQuote[quoteID] = append(byQuote[quoteID], comment)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range quotes {
		if comments, ok := byQuote[quotes[i].ID]; ok {
			quotes[i].Comments = comments
		}
	}

	return nil
}
