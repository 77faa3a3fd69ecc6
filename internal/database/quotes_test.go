package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VarshiniKilaru09/quotes-project/internal/models"
)

func createTestQuote(t *testing.T, params CreateQuoteParams) *models.Quote {
	quote, err := testStore.CreateQuote(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, quote)
	return quote
}

func TestCreateQuote(t *testing.T) {
	params := CreateQuoteParams{
		ID:     "quote_create_0000000ub",
		Owner:  "quote_owner",
		Text:   "The unexamined life is not worth living",
		Author: "Socrates",
		Date:   "2024-01-15",
		Public: true,
	}

	createdQuote, err := testStore.CreateQuote(context.Background(), params)

	require.NoError(t, err)
	require.NotNil(t, createdQuote)

	require.Equal(t, params.ID, createdQuote.ID)
	require.Equal(t, params.Owner, createdQuote.Owner)
	require.Equal(t, params.Text, createdQuote.Text)
	require.Equal(t, params.Author, createdQuote.Author)
	require.Equal(t, params.Date, createdQuote.Date)
	require.True(t, createdQuote.Public)
	require.Empty(t, createdQuote.Comments)

	exists, err := testStore.QuoteExists(context.Background(), params.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetQuoteByID(t *testing.T) {
	created := createTestQuote(t, CreateQuoteParams{
		ID:    "quote_get_00000000ub",
		Owner: "quote_get_owner",
		Text:  "Quote to fetch", Author: "Someone",
	})

	found, err := testStore.GetQuoteByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "Quote to fetch", found.Text)
	require.NotNil(t, found.Comments)
	require.Empty(t, found.Comments)

	missing, err := testStore.GetQuoteByID(context.Background(), "no_such_quote_id_0000")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListQuotes(t *testing.T) {
	owner := "quote_list_owner"
	other := "quote_list_other"

	createTestQuote(t, CreateQuoteParams{ID: "quote_list_own_priv_0", Owner: owner, Text: "own private", Author: "a"})
	createTestQuote(t, CreateQuoteParams{ID: "quote_list_own_publ_0", Owner: owner, Text: "own public", Author: "a", Public: true})
	createTestQuote(t, CreateQuoteParams{ID: "quote_list_oth_priv_0", Owner: other, Text: "other private", Author: "b"})
	createTestQuote(t, CreateQuoteParams{ID: "quote_list_oth_publ_0", Owner: other, Text: "other public", Author: "b", Public: true})

	owned, err := testStore.ListQuotesByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	for _, quote := range owned {
		require.Equal(t, owner, quote.Owner)
	}

	public, err := testStore.ListPublicQuotes(context.Background())
	require.NoError(t, err)
	publicIDs := make(map[string]bool)
	for _, quote := range public {
		require.True(t, quote.Public)
		publicIDs[quote.ID] = true
	}
	require.True(t, publicIDs["quote_list_own_publ_0"])
	require.True(t, publicIDs["quote_list_oth_publ_0"])
	require.False(t, publicIDs["quote_list_own_priv_0"])

	all, err := testStore.ListAllQuotes(context.Background())
	require.NoError(t, err)
	allIDs := make(map[string]bool)
	for _, quote := range all {
		allIDs[quote.ID] = true
	}
	// The unscoped list includes private quotes of every owner.
	require.True(t, allIDs["quote_list_own_priv_0"])
	require.True(t, allIDs["quote_list_oth_priv_0"])
}

func TestUpdateQuoteText(t *testing.T) {
	created := createTestQuote(t, CreateQuoteParams{
		ID:    "quote_update_000000ub",
		Owner: "quote_update_owner",
		Text:  "old text", Author: "old author",
		Date: "2024-02-02", Public: true,
	})

	updated, err := testStore.UpdateQuoteText(context.Background(), UpdateQuoteTextParams{
		ID:     created.ID,
		Text:   "new text",
		Author: "new author",
	})
	require.NoError(t, err)
	require.True(t, updated)

	found, err := testStore.GetQuoteByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "new text", found.Text)
	require.Equal(t, "new author", found.Author)
	// Owner, date and public flag stay untouched by an edit.
	require.Equal(t, created.Owner, found.Owner)
	require.Equal(t, created.Date, found.Date)
	require.True(t, found.Public)

	updated, err = testStore.UpdateQuoteText(context.Background(), UpdateQuoteTextParams{
		ID: "no_such_quote_id_0000", Text: "x", Author: "y",
	})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestDeleteQuote(t *testing.T) {
	created := createTestQuote(t, CreateQuoteParams{
		ID:    "quote_delete_000000ub",
		Owner: "quote_delete_owner",
		Text:  "to be deleted", Author: "a",
	})

	deleted, err := testStore.DeleteQuote(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := testStore.GetQuoteByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	deleted, err = testStore.DeleteQuote(context.Background(), created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
