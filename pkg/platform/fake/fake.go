// Package fake provides an in-memory platform.Platform. It records every outbound call so tests can assert on what the
// bot would have sent to Discord.
package fake

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
)

// Sent is a message sent to a channel.
type Sent struct {
	ChannelID string
	Message   *discordgo.MessageSend
}

// Response is a response to an interaction.
type Response struct {
	Interaction *discordgo.Interaction
	Response    *discordgo.InteractionResponse
}

// RoleGrant is a role given to a member.
type RoleGrant struct {
	GuildID string
	UserID  string
	RoleID  string
}

var _ platform.Platform = (*Platform)(nil)

// Platform is an in-memory guild. The zero value is not usable, use New.
type Platform struct {
	mu sync.Mutex

	channels map[string]*discordgo.Channel
	roles    map[string][]*discordgo.Role
	history  map[string][]*discordgo.Message

	sent      []Sent
	responses []Response
	grants    []RoleGrant
	created   []*discordgo.Channel
	deleted   []string

	// sendErrs fails sends to the channel with the given error.
	sendErrs map[string]error

	// roleErr fails every role grant.
	roleErr error

	// respondErr fails every interaction response.
	respondErr error

	// historyErr fails every RecentMessages call.
	historyErr error

	latency time.Duration
	botUser *discordgo.User
	nextID  int
}

// New creates an empty fake platform logged in as a bot user with ID "bot".
func New() *Platform {
	return &Platform{
		channels: make(map[string]*discordgo.Channel),
		roles:    make(map[string][]*discordgo.Role),
		history:  make(map[string][]*discordgo.Message),
		sendErrs: make(map[string]error),
		botUser: &discordgo.User{
			ID:       "bot",
			Username: "concierge",
			Bot:      true,
		},
		nextID: 1000,
	}
}

// AddChannel adds a channel (or category) to the guild.
func (p *Platform) AddChannel(ch *discordgo.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels[ch.ID] = ch
}

// AddRole adds a role to the guild.
func (p *Platform) AddRole(guildID string, r *discordgo.Role) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roles[guildID] = append(p.roles[guildID], r)
}

// AddHistory appends messages to the history of a channel, oldest first.
func (p *Platform) AddHistory(channelID string, msgs ...*discordgo.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.history[channelID] = append(p.history[channelID], msgs...)
}

// FailSendsTo makes every send to the channel return err.
func (p *Platform) FailSendsTo(channelID string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sendErrs[channelID] = err
}

// FailRoleGrants makes every role grant return err.
func (p *Platform) FailRoleGrants(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roleErr = err
}

// FailResponses makes every interaction response return err.
func (p *Platform) FailResponses(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.respondErr = err
}

// FailHistory makes every RecentMessages call return err.
func (p *Platform) FailHistory(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.historyErr = err
}

// SetLatency sets the heartbeat latency reported.
func (p *Platform) SetLatency(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.latency = d
}

// SetBotUser sets the user the bot is logged in as.
func (p *Platform) SetBotUser(u *discordgo.User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.botUser = u
}

func (p *Platform) ChannelByID(channelID string) (*discordgo.Channel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch, ok := p.channels[channelID]
	return ch, ok
}

func (p *Platform) RoleByName(guildID, name string) (*discordgo.Role, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range p.roles[guildID] {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

func (p *Platform) CategoryByName(guildID, name string) (*discordgo.Channel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.channels {
		if ch.GuildID == guildID && ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch, true
		}
	}
	return nil, false
}

func (p *Platform) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err, ok := p.sendErrs[channelID]; ok {
		return nil, err
	}
	if _, ok := p.channels[channelID]; !ok {
		return nil, fmt.Errorf("channel %s: %w", channelID, platform.ErrNotFound)
	}

	p.sent = append(p.sent, Sent{ChannelID: channelID, Message: msg})

	m := &discordgo.Message{
		ID:        p.newID(),
		ChannelID: channelID,
		Content:   msg.Content,
		Author:    p.botUser,
	}
	p.history[channelID] = append(p.history[channelID], m)
	return m, nil
}

func (p *Platform) CreateChannel(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := &discordgo.Channel{
		ID:                   p.newID(),
		GuildID:              guildID,
		Name:                 data.Name,
		Type:                 data.Type,
		ParentID:             data.ParentID,
		PermissionOverwrites: data.PermissionOverwrites,
	}
	p.channels[ch.ID] = ch
	p.created = append(p.created, ch)
	return ch, nil
}

func (p *Platform) DeleteChannel(channelID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.channels[channelID]; !ok {
		return fmt.Errorf("channel %s: %w", channelID, platform.ErrNotFound)
	}
	delete(p.channels, channelID)
	delete(p.history, channelID)
	p.deleted = append(p.deleted, channelID)
	return nil
}

func (p *Platform) AddMemberRole(guildID, userID, roleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.roleErr != nil {
		return p.roleErr
	}
	p.grants = append(p.grants, RoleGrant{GuildID: guildID, UserID: userID, RoleID: roleID})
	return nil
}

func (p *Platform) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.respondErr != nil {
		return p.respondErr
	}
	p.responses = append(p.responses, Response{Interaction: i, Response: resp})
	return nil
}

func (p *Platform) RecentMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.historyErr != nil {
		return nil, p.historyErr
	}

	h := p.history[channelID]
	out := make([]*discordgo.Message, 0, len(h))
	for idx := len(h) - 1; idx >= 0 && len(out) < limit; idx-- {
		out = append(out, h[idx])
	}
	return out, nil
}

func (p *Platform) Latency() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latency
}

func (p *Platform) BotUser() *discordgo.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.botUser
}

// Sent returns every message sent, in order.
func (p *Platform) Sent() []Sent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Sent(nil), p.sent...)
}

// SentTo returns the messages sent to a channel, in order.
func (p *Platform) SentTo(channelID string) []*discordgo.MessageSend {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*discordgo.MessageSend
	for _, s := range p.sent {
		if s.ChannelID == channelID {
			out = append(out, s.Message)
		}
	}
	return out
}

// EmbedsTo returns the embeds sent to a channel, in order.
func (p *Platform) EmbedsTo(channelID string) []*discordgo.MessageEmbed {
	var out []*discordgo.MessageEmbed
	for _, m := range p.SentTo(channelID) {
		out = append(out, m.Embeds...)
	}
	return out
}

// Responses returns every interaction response, in order.
func (p *Platform) Responses() []Response {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Response(nil), p.responses...)
}

// RoleGrants returns every role grant, in order.
func (p *Platform) RoleGrants() []RoleGrant {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]RoleGrant(nil), p.grants...)
}

// Created returns every channel created, in order.
func (p *Platform) Created() []*discordgo.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*discordgo.Channel(nil), p.created...)
}

// Deleted returns the IDs of every channel deleted, in order.
func (p *Platform) Deleted() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.deleted...)
}

// newID must be called with the lock held.
func (p *Platform) newID() string {
	p.nextID++
	return strconv.Itoa(p.nextID)
}
