package ticketing

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/discordgo"
)

const (
	// OpenTicketButtonID is the ID for the create ticket button.
	OpenTicketButtonID = "open_ticket_button"

	// TicketTypeSelectID is the ID for the ticket type menu.
	TicketTypeSelectID = "ticket_type_select"

	// CloseTicketButtonID is the ID for the close ticket button.
	CloseTicketButtonID = "close_ticket_button"
)

var (
	// ErrUnknownComponent is returned when a component interaction does not belong to the ticket workflow.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrInvalidSelection is returned when the ticket type menu does not carry exactly one known type.
	ErrInvalidSelection = errors.New("invalid ticket type selection")
)

// Intent is what a user asks for by pressing a ticket component.
type Intent interface {
	intent()
}

// OpenTicketMenu asks for the ticket type menu.
type OpenTicketMenu struct{}

// SelectTicketType asks for a ticket of the given type.
type SelectTicketType struct {
	Type entities.TicketType
}

// CloseTicket asks for the ticket channel the component lives in to be closed.
type CloseTicket struct{}

func (OpenTicketMenu) intent()   {}
func (SelectTicketType) intent() {}
func (CloseTicket) intent()      {}

// ParseIntent decodes the intent of a component interaction.
func ParseIntent(data discordgo.MessageComponentInteractionData) (Intent, error) {
	switch data.CustomID {
	case OpenTicketButtonID:
		return OpenTicketMenu{}, nil
	case TicketTypeSelectID:
		if len(data.Values) != 1 {
			return nil, fmt.Errorf("%w: got %d values", ErrInvalidSelection, len(data.Values))
		}
		tt, ok := entities.TicketTypeByKey(data.Values[0])
		if !ok {
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidSelection, data.Values[0])
		}
		return SelectTicketType{Type: tt}, nil
	case CloseTicketButtonID:
		return CloseTicket{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, data.CustomID)
	}
}
