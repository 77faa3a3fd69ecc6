package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogEventAndGetEventsSince(t *testing.T) {
	username := "events_user"

	err := testStore.LogEvent(context.Background(), username, "quote_created", map[string]string{"id": "q1"})
	require.NoError(t, err)
	err = testStore.LogEvent(context.Background(), username, "quote_deleted", map[string]string{"id": "q1"})
	require.NoError(t, err)

	events, err := testStore.GetEventsSince(context.Background(), username, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "quote_created", events[0].EventType)
	require.Equal(t, "quote_deleted", events[1].EventType)
	require.Less(t, events[0].ID, events[1].ID)

	var payload struct {
		EventType string          `json:"event_type"`
		Payload   json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	require.Equal(t, "quote_created", payload.EventType)

	// Asking from the last seen id yields only the tail.
	tail, err := testStore.GetEventsSince(context.Background(), username, events[0].ID)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.Equal(t, "quote_deleted", tail[0].EventType)

	none, err := testStore.GetEventsSince(context.Background(), "someone_else", 0)
	require.NoError(t, err)
	require.Empty(t, none)
}
