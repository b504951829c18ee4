package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicket_Name(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
	}{
		{name: "Lowercase", username: "alice", want: "ticket-alice"},
		{name: "Mixed case", username: "Alice", want: "ticket-alice"},
		{name: "Digits", username: "Wolf_42", want: "ticket-wolf_42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := &Ticket{Username: tt.username}
			require.Equal(t, tt.want, ticket.Name())
		})
	}
}

func TestTicketTypes(t *testing.T) {
	types := TicketTypes()
	require.Len(t, types, 3)

	seen := make(map[string]bool)
	for _, tt := range types {
		require.NotEmpty(t, tt.Key)
		require.NotEmpty(t, tt.Label)
		require.False(t, seen[tt.Key], "duplicate key %s", tt.Key)
		seen[tt.Key] = true

		got, ok := TicketTypeByKey(tt.Key)
		require.True(t, ok)
		require.Equal(t, tt, got)
	}

	_, ok := TicketTypeByKey("unknown")
	require.False(t, ok)
}
