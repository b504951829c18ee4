package main

import (
	"fmt"

	"github.com/Jacobbrewer1/concierge/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/discordgo"
)

// RegisterDiscordHandlers adds every gateway event handler to the session.
func (a *App) RegisterDiscordHandlers() {
	// Bot joined guild.
	a.s.AddHandler(guildJoinedHandler(a))

	// Bot left guild.
	a.s.AddHandler(guildLeaveHandler(a))

	// The prompt is posted again on every ready, including after a reconnect.
	a.s.AddHandler(discordHandler(a, "ready", func(r *discordgo.Ready) error {
		a.Info(fmt.Sprintf("Logged in as %s", r.User.Username))
		return a.tickets.Announce()
	}))

	a.s.AddHandler(discordHandler(a, "member_add", func(m *discordgo.GuildMemberAdd) error {
		return a.greeter.MemberJoined(m.Member)
	}))

	a.s.AddHandler(discordHandler(a, "message_delete", func(m *discordgo.MessageDelete) error {
		return a.auditor.MessageDeleted(m.ChannelID, m.BeforeDelete)
	}))

	a.s.AddHandler(discordHandler(a, "message_create", func(m *discordgo.MessageCreate) error {
		return a.commands.HandleMessage(m.Message)
	}))

	a.s.AddHandler(discordHandler(a, "interaction", func(i *discordgo.InteractionCreate) error {
		return a.tickets.HandleInteraction(i.Interaction)
	}))
}

func guildJoinedHandler(a IApp) func(s *discordgo.Session, g *discordgo.GuildCreate) {
	return func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		a.Log().Info(fmt.Sprintf("Joined guild %s", g.Name))

		// Increment the total number of guilds.
		monitoring.TotalDiscordGuilds.Inc()
	}
}

func guildLeaveHandler(a IApp) func(s *discordgo.Session, g *discordgo.GuildDelete) {
	return func(_ *discordgo.Session, g *discordgo.GuildDelete) {
		a.Log().Info(fmt.Sprintf("Left guild %s", g.ID))

		// Decrement the total number of guilds.
		monitoring.TotalDiscordGuilds.Dec()
	}
}
