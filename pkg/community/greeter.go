package community

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
)

// Greeter welcomes members joining the guild.
type Greeter struct {
	// l is the logger.
	l *slog.Logger

	// p is the platform.
	p platform.Platform

	// cfg is the guild configuration.
	cfg entities.GuildConfig
}

// NewGreeter creates a new Greeter.
func NewGreeter(l *slog.Logger, p platform.Platform, cfg entities.GuildConfig) *Greeter {
	return &Greeter{
		l:   l.With(slog.String(logging.KeyHandler, "greeter")),
		p:   p,
		cfg: cfg,
	}
}

// MemberJoined grants the new member role, logs the arrival and posts the welcome message. The role and the welcome
// message are each skipped when they cannot be found. Failing to write to the log channel stops the greeting.
func (g *Greeter) MemberJoined(m *discordgo.Member) error {
	if m == nil || m.User == nil {
		return errors.New("member joined without a user")
	}

	l := g.l.With(
		slog.String(logging.KeyGuildID, m.GuildID),
		slog.String(logging.KeyUserID, m.User.ID),
	)

	role, ok := g.p.RoleByName(m.GuildID, g.cfg.NewMemberRoleName)
	if ok {
		if err := g.p.AddMemberRole(m.GuildID, m.User.ID, role.ID); err != nil {
			l.Error("Error adding role to new member",
				slog.String("role", role.Name),
				slog.String(logging.KeyError, err.Error()),
			)
		} else {
			l.Info(fmt.Sprintf("Role '%s' added to %s", role.Name, m.User.Username))
		}
	} else {
		l.Error(fmt.Sprintf("Role '%s' not found", g.cfg.NewMemberRoleName))
	}

	if _, err := g.p.SendMessage(g.cfg.LogChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.LogMemberJoinedTitle,
				Description: fmt.Sprintf(messages.LogMemberJoinedFmt, m.User.Mention(), m.User.Username),
				Color:       colorGreen,
			},
		},
	}); err != nil {
		return fmt.Errorf("error logging new member: %w", err)
	}

	ch, ok := g.p.ChannelByID(g.cfg.WelcomeChannelID)
	if !ok {
		l.Error("Welcome channel not found", slog.String(logging.KeyChannelID, g.cfg.WelcomeChannelID))
		return nil
	}

	if _, err := g.p.SendMessage(ch.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{welcomeEmbed(m.User, g.cfg.WelcomeImageURL)},
	}); err != nil {
		return fmt.Errorf("error sending welcome message: %w", err)
	}
	return nil
}

func welcomeEmbed(u *discordgo.User, imageURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(messages.WelcomeTitleFmt, u.Username),
		Description: fmt.Sprintf(messages.WelcomeDescriptionFmt, u.Mention()),
		Color:       colorBlue,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: u.AvatarURL(""),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: messages.WelcomeFooter,
		},
	}

	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{
			URL: imageURL,
		}
	}
	return embed
}
