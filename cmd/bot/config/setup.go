package config

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/kelseyhightower/envconfig"
)

// Config is the configuration of the bot.
type Config struct {
	// BotToken is the token for the bot.
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8080"`

	// Guild is the guild the bot looks after.
	Guild entities.GuildConfig `ignored:"true"`
}

// Load reads the configuration from the environment.
func Load(l *slog.Logger) (*Config, error) {
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	l.Debug("Configuration loaded", slog.String("port", c.MonitoringPort))

	c.Guild = Guild()
	return c, nil
}

// Guild is the configuration of the guild the bot looks after.
func Guild() entities.GuildConfig {
	return entities.GuildConfig{
		WelcomeChannelID:  WelcomeChannelID,
		LogChannelID:      LogChannelID,
		NewMemberRoleName: NewMemberRoleName,
		WelcomeImageURL:   WelcomeImageURL,
		Ticketing: entities.TicketingConfig{
			RequestChannelID: TicketRequestChannelID,
			CategoryName:     SupportCategoryName,
			StaffRoleID:      StaffRoleID,
		},
	}
}
