package ticketing

import (
	"testing"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name    string
		data    discordgo.MessageComponentInteractionData
		want    Intent
		wantErr error
	}{
		{
			name: "Open menu",
			data: discordgo.MessageComponentInteractionData{CustomID: OpenTicketButtonID},
			want: OpenTicketMenu{},
		},
		{
			name: "Select account",
			data: discordgo.MessageComponentInteractionData{CustomID: TicketTypeSelectID, Values: []string{"account"}},
			want: SelectTicketType{Type: entities.TicketTypeAccount},
		},
		{
			name:    "Select unknown type",
			data:    discordgo.MessageComponentInteractionData{CustomID: TicketTypeSelectID, Values: []string{"billing"}},
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "Select nothing",
			data:    discordgo.MessageComponentInteractionData{CustomID: TicketTypeSelectID},
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "Select two",
			data:    discordgo.MessageComponentInteractionData{CustomID: TicketTypeSelectID, Values: []string{"account", "technical"}},
			wantErr: ErrInvalidSelection,
		},
		{
			name: "Close",
			data: discordgo.MessageComponentInteractionData{CustomID: CloseTicketButtonID},
			want: CloseTicket{},
		},
		{
			name:    "Unknown component",
			data:    discordgo.MessageComponentInteractionData{CustomID: "claim_ticket_button"},
			wantErr: ErrUnknownComponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntent(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
