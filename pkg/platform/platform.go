// Package platform is the boundary between the bot and Discord. Handlers only talk to Discord through the Platform
// interface, so they can be exercised against the in-memory implementation in the fake package.
package platform

import (
	"errors"
	"time"

	"github.com/Jacobbrewer1/discordgo"
)

// ErrNotFound is returned when an object the bot writes to does not exist.
var ErrNotFound = errors.New("not found")

// Lookup resolves guild objects. Absence is not an error; callers branch on ok.
type Lookup interface {
	// ChannelByID gets a channel by its ID.
	ChannelByID(channelID string) (*discordgo.Channel, bool)

	// RoleByName gets a role of the guild by its display name.
	RoleByName(guildID, name string) (*discordgo.Role, bool)

	// CategoryByName gets a category of the guild by its display name.
	CategoryByName(guildID, name string) (*discordgo.Channel, bool)
}

// Platform is everything the bot reads from and writes to Discord.
type Platform interface {
	Lookup

	// SendMessage sends a message to a channel.
	SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// CreateChannel creates a channel in the guild.
	CreateChannel(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	// DeleteChannel deletes a channel outright.
	DeleteChannel(channelID string) error

	// AddMemberRole grants a role to a member of the guild.
	AddMemberRole(guildID, userID, roleID string) error

	// Respond sends the single response an interaction allows.
	Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// RecentMessages gets up to limit of the latest messages of a channel, newest first.
	RecentMessages(channelID string, limit int) ([]*discordgo.Message, error)

	// Latency is the heartbeat round trip to the gateway.
	Latency() time.Duration

	// BotUser is the user the bot is logged in as. Nil until the session is ready.
	BotUser() *discordgo.User
}
