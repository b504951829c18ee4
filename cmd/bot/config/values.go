package config

const (
	// AppName is the name of the application.
	AppName = "concierge"

	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `BOT_TOKEN`

	// EnvMonitoringPort is the environment variable for the monitoring port.
	EnvMonitoringPort = `MONITORING_PORT`
)

// The guild the bot looks after.
const (
	// SupportCategoryName is the category ticket channels are created in.
	SupportCategoryName = "Support"

	// StaffRoleID is the role that can see and close tickets.
	StaffRoleID = "1366951587288846397"

	// WelcomeChannelID is where new members are welcomed.
	WelcomeChannelID = "1298738614850555954"

	// TicketRequestChannelID is where the create ticket prompt is posted.
	TicketRequestChannelID = "1366953530597834792"

	// LogChannelID is where audit embeds are posted.
	LogChannelID = "1366957862709891082"

	// NewMemberRoleName is the role granted to members when they join.
	NewMemberRoleName = "Nouveaux"

	// WelcomeImageURL is the image of the welcome embed.
	WelcomeImageURL = "https://i.ibb.co/ZpCDj4WK/Chat-GPT-Image-1-avr-2025-16-21-38-jpg.jpg"
)
