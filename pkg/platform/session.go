package platform

import (
	"fmt"
	"time"

	"github.com/Jacobbrewer1/discordgo"
)

var _ Platform = (*Session)(nil)

// Session is the Platform backed by a discordgo session. Lookups are served from the state cache first and fall back
// to the REST API.
type Session struct {
	// s is the discord session.
	s *discordgo.Session
}

// NewSession creates a new Platform backed by the session.
func NewSession(s *discordgo.Session) *Session {
	return &Session{
		s: s,
	}
}

func (p *Session) ChannelByID(channelID string) (*discordgo.Channel, bool) {
	if channelID == "" {
		return nil, false
	}

	if p.s.State != nil {
		if ch, err := p.s.State.Channel(channelID); err == nil && ch != nil {
			return ch, true
		}
	}

	ch, err := p.s.Channel(channelID)
	if err != nil || ch == nil {
		return nil, false
	}
	return ch, true
}

func (p *Session) RoleByName(guildID, name string) (*discordgo.Role, bool) {
	roles, err := p.guildRoles(guildID)
	if err != nil {
		return nil, false
	}

	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

func (p *Session) CategoryByName(guildID, name string) (*discordgo.Channel, bool) {
	channels, err := p.guildChannels(guildID)
	if err != nil {
		return nil, false
	}

	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch, true
		}
	}
	return nil, false
}

func (p *Session) guildRoles(guildID string) ([]*discordgo.Role, error) {
	if p.s.State != nil {
		if g, err := p.s.State.Guild(guildID); err == nil {
			p.s.State.RLock()
			cached := append([]*discordgo.Role(nil), g.Roles...)
			p.s.State.RUnlock()

			if len(cached) > 0 {
				return cached, nil
			}
		}
	}

	roles, err := p.s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("error getting roles: %w", err)
	}
	return roles, nil
}

func (p *Session) guildChannels(guildID string) ([]*discordgo.Channel, error) {
	if p.s.State != nil {
		if g, err := p.s.State.Guild(guildID); err == nil {
			p.s.State.RLock()
			cached := append([]*discordgo.Channel(nil), g.Channels...)
			p.s.State.RUnlock()

			if len(cached) > 0 {
				return cached, nil
			}
		}
	}

	channels, err := p.s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("error getting channels: %w", err)
	}
	return channels, nil
}

func (p *Session) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	m, err := p.s.ChannelMessageSendComplex(channelID, msg)
	if err != nil {
		return nil, fmt.Errorf("error sending message to channel %s: %w", channelID, err)
	}
	return m, nil
}

func (p *Session) CreateChannel(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	ch, err := p.s.GuildChannelCreateComplex(guildID, data)
	if err != nil {
		return nil, fmt.Errorf("error creating channel %s: %w", data.Name, err)
	}
	return ch, nil
}

func (p *Session) DeleteChannel(channelID string) error {
	if _, err := p.s.ChannelDelete(channelID); err != nil {
		return fmt.Errorf("error deleting channel %s: %w", channelID, err)
	}
	return nil
}

func (p *Session) AddMemberRole(guildID, userID, roleID string) error {
	if err := p.s.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
		return fmt.Errorf("error adding role %s to member %s: %w", roleID, userID, err)
	}
	return nil
}

func (p *Session) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	if err := p.s.InteractionRespond(i, resp); err != nil {
		return fmt.Errorf("error responding to interaction: %w", err)
	}
	return nil
}

func (p *Session) RecentMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	msgs, err := p.s.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return nil, fmt.Errorf("error getting messages of channel %s: %w", channelID, err)
	}
	return msgs, nil
}

func (p *Session) Latency() time.Duration {
	return p.s.HeartbeatLatency()
}

func (p *Session) BotUser() *discordgo.User {
	if p.s.State == nil {
		return nil
	}
	return p.s.State.User
}
