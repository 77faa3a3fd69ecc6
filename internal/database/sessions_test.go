package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	token := uuid.New().String()

	err := testStore.CreateSession(context.Background(), CreateSessionParams{
		Token:    token,
		Username: "session_user",
	})
	require.NoError(t, err)

	session, err := testStore.GetSessionByToken(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, token, session.Token)
	require.Equal(t, "session_user", session.Username)
	require.NotZero(t, session.CreatedAt)

	err = testStore.DeleteSessionByToken(context.Background(), token)
	require.NoError(t, err)

	session, err = testStore.GetSessionByToken(context.Background(), token)
	require.NoError(t, err)
	require.Nil(t, session)

	// Deleting an already-deleted token must stay a no-op.
	err = testStore.DeleteSessionByToken(context.Background(), token)
	require.NoError(t, err)
}

func TestGetSessionByToken_Unknown(t *testing.T) {
	session, err := testStore.GetSessionByToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	require.Nil(t, session)
}
