package ticketing

import (
	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/discordgo"
)

const (
	// colorGreen is the color of the ticket created log embed.
	colorGreen = 0x2ecc71

	// colorRed is the color of the ticket closed log embed.
	colorRed = 0xe74c3c
)

// PromptMessage is the message carrying the create ticket button.
func PromptMessage(content string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    messages.OpenTicketLabel,
						Style:    discordgo.SuccessButton,
						Disabled: false,
						CustomID: OpenTicketButtonID,
					},
				},
			},
		},
	}
}

// closeTicketMessage is posted in every new ticket channel.
func closeTicketMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    messages.CloseTicketLabel,
						Style:    discordgo.DangerButton,
						Disabled: false,
						CustomID: CloseTicketButtonID,
					},
				},
			},
		},
	}
}

// ticketTypeMenu is the single choice menu over every ticket type.
func ticketTypeMenu() discordgo.MessageComponent {
	types := entities.TicketTypes()

	opts := make([]discordgo.SelectMenuOption, 0, len(types))
	for _, tt := range types {
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       tt.Label,
			Value:       tt.Key,
			Description: tt.Description,
			Emoji:       discordgo.ComponentEmoji{Name: tt.Emoji},
		})
	}

	minValues := 1
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    TicketTypeSelectID,
				Placeholder: messages.TicketTypePlaceholder,
				MinValues:   &minValues,
				MaxValues:   1,
				Options:     opts,
			},
		},
	}
}

// TicketOverwrites are the permissions of a ticket channel: hidden from @everyone, readable and writable by the
// requesting user and the staff role.
func TicketOverwrites(guildID, userID, staffRoleID string) []*discordgo.PermissionOverwrite {
	const readWrite = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages

	return []*discordgo.PermissionOverwrite{
		// Deny @everyone from seeing the ticket. The @everyone role has the ID of the guild.
		{
			ID:    guildID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: 0,
			Deny:  discordgo.PermissionViewChannel,
		},
		// The creator of the ticket can see the ticket.
		{
			ID:    userID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: readWrite,
			Deny:  0,
		},
		// Add the staff role.
		{
			ID:    staffRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: readWrite,
			Deny:  0,
		},
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
