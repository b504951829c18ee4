package entities

import (
	"fmt"
	"strings"
	"time"
)

// Ticket is a support request. It only lives for the duration of the interaction that creates it.
type Ticket struct {
	// GuildID is the ID of the guild that the ticket is in.
	GuildID string

	// ChannelID is the ID of the channel created for the ticket. Empty until the channel exists.
	ChannelID string

	// UserID is the ID of the user that created the ticket.
	UserID string

	// Username is the username of the user that created the ticket.
	Username string

	// Type is the type the user picked.
	Type TicketType

	// CreatedAt is the time that the ticket was created.
	CreatedAt time.Time
}

// Name is the name of the ticket channel.
// For example, if the users username is "Wolf", the ticket name will be "ticket-wolf".
func (t *Ticket) Name() string {
	return fmt.Sprintf("ticket-%s", strings.ToLower(t.Username))
}

// TicketType is one of the choices offered in the ticket menu.
type TicketType struct {
	// Key is the value carried by the menu option.
	Key string

	// Label is the text shown to the user. It is also the type tag written to the log and the ticket channel.
	Label string

	// Description is shown under the label in the menu.
	Description string

	// Emoji is shown next to the label in the menu.
	Emoji string
}

var (
	TicketTypeTechnical = TicketType{
		Key:         "technical",
		Label:       "Problème technique",
		Description: "Assistance pour bugs.",
		Emoji:       "🖥️",
	}

	TicketTypeInformation = TicketType{
		Key:         "information",
		Label:       "Demande d'information",
		Description: "Question générale.",
		Emoji:       "❓",
	}

	TicketTypeAccount = TicketType{
		Key:         "account",
		Label:       "Problème de compte",
		Description: "Compte bloqué ou erreur.",
		Emoji:       "🔑",
	}
)

// TicketTypes returns the ticket types in the order they are offered.
func TicketTypes() []TicketType {
	return []TicketType{
		TicketTypeTechnical,
		TicketTypeInformation,
		TicketTypeAccount,
	}
}

// TicketTypeByKey finds a ticket type from the value of a menu option.
func TicketTypeByKey(key string) (TicketType, bool) {
	for _, tt := range TicketTypes() {
		if tt.Key == key {
			return tt, true
		}
	}
	return TicketType{}, false
}
