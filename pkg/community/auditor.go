package community

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
)

// Auditor writes deleted messages to the log channel.
type Auditor struct {
	// l is the logger.
	l *slog.Logger

	// p is the platform.
	p platform.Platform

	// cfg is the guild configuration.
	cfg entities.GuildConfig
}

// NewAuditor creates a new Auditor.
func NewAuditor(l *slog.Logger, p platform.Platform, cfg entities.GuildConfig) *Auditor {
	return &Auditor{
		l:   l.With(slog.String(logging.KeyHandler, "auditor")),
		p:   p,
		cfg: cfg,
	}
}

// MessageDeleted logs the deleted message. The deleted message is only known when it was cached, otherwise there is
// nothing to log. Messages written by the bot are not logged.
func (a *Auditor) MessageDeleted(channelID string, deleted *discordgo.Message) error {
	if deleted == nil || deleted.Author == nil {
		a.l.Debug("Deleted message not cached, skipping", slog.String(logging.KeyChannelID, channelID))
		return nil
	}

	if bot := a.p.BotUser(); bot != nil && deleted.Author.ID == bot.ID {
		return nil
	}

	channelName := channelID
	if ch, ok := a.p.ChannelByID(channelID); ok {
		channelName = ch.Name
	}

	if _, err := a.p.SendMessage(a.cfg.LogChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.LogMessageDeletedTitle,
				Description: fmt.Sprintf(messages.LogMessageDeletedFmt, deleted.Author.Mention(), deleted.Content),
				Color:       colorRed,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf(messages.LogMessageDeletedFooter, channelName),
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("error logging deleted message: %w", err)
	}
	return nil
}
