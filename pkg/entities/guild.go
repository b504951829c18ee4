package entities

// GuildConfig is the configuration of the guild the bot looks after. It is built once at startup and never mutated.
type GuildConfig struct {
	// WelcomeChannelID is the ID of the channel that welcome messages are posted in.
	WelcomeChannelID string

	// LogChannelID is the ID of the channel that audit embeds are posted in.
	LogChannelID string

	// NewMemberRoleName is the display name of the role granted to members when they join.
	NewMemberRoleName string

	// WelcomeImageURL is the image shown in the welcome embed.
	WelcomeImageURL string

	// Ticketing is the ticketing configuration.
	Ticketing TicketingConfig
}
