package ticketing

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/concierge/pkg/ticketing/monitoring"
	"github.com/Jacobbrewer1/discordgo"
)

// transcriptLimit is the number of messages kept in the transcript of a closed ticket.
const transcriptLimit = 100

// ErrNotInGuild is returned for ticket interactions that do not come from a guild member.
var ErrNotInGuild = errors.New("interaction is not from a guild member")

// Service runs the ticket workflow: the prompt, the type menu, the ticket channel and closing it.
type Service struct {
	// l is the logger.
	l *slog.Logger

	// p is the platform the workflow talks to.
	p platform.Platform

	// cfg is the guild configuration.
	cfg entities.GuildConfig

	// now returns the current time.
	now func() time.Time
}

// NewService creates a new ticket workflow.
func NewService(l *slog.Logger, p platform.Platform, cfg entities.GuildConfig) *Service {
	return &Service{
		l:   l.With(slog.String(logging.KeyHandler, "ticketing")),
		p:   p,
		cfg: cfg,
		now: time.Now,
	}
}

// Announce posts the create ticket prompt in the ticket request channel. A missing channel is logged and ignored.
func (s *Service) Announce() error {
	channelID := s.cfg.Ticketing.RequestChannelID

	ch, ok := s.p.ChannelByID(channelID)
	if !ok {
		s.l.Error("Ticket request channel not found", slog.String(logging.KeyChannelID, channelID))
		return nil
	}

	if _, err := s.p.SendMessage(ch.ID, PromptMessage(messages.TicketPrompt)); err != nil {
		return fmt.Errorf("error sending ticket prompt: %w", err)
	}
	return nil
}

// HandleInteraction routes a component interaction to the step of the workflow it asks for. Interactions of other
// types are ignored. When a step fails before anything was sent back to the user, the user gets a generic error.
func (s *Service) HandleInteraction(i *discordgo.Interaction) error {
	if i.Type != discordgo.InteractionMessageComponent {
		return nil
	}

	rt := &responseTracker{Platform: s.p}
	err := s.dispatch(rt, i)
	if err != nil && !rt.responded {
		if rerr := rt.Respond(i, ephemeral(messages.ErrUserErrorProcessing)); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}
	return err
}

func (s *Service) dispatch(p platform.Platform, i *discordgo.Interaction) error {
	intent, err := ParseIntent(i.MessageComponentData())
	if err != nil {
		return fmt.Errorf("error parsing intent: %w", err)
	}

	if i.Member == nil || i.Member.User == nil {
		return ErrNotInGuild
	}

	switch in := intent.(type) {
	case OpenTicketMenu:
		return s.openMenu(p, i)
	case SelectTicketType:
		return s.createTicket(p, i, in.Type)
	case CloseTicket:
		return s.closeTicket(p, i)
	default:
		return fmt.Errorf("unhandled intent %T", intent)
	}
}

// openMenu responds to the user only with the ticket type menu.
func (s *Service) openMenu(p platform.Platform, i *discordgo.Interaction) error {
	err := p.Respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    messages.ChooseTicketType,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{ticketTypeMenu()},
		},
	})
	if err != nil {
		return fmt.Errorf("error sending ticket menu: %w", err)
	}
	return nil
}

// createTicket creates the private ticket channel for the user.
func (s *Service) createTicket(p platform.Platform, i *discordgo.Interaction, tt entities.TicketType) error {
	user := i.Member.User
	l := s.l.With(
		slog.String(logging.KeyGuildID, i.GuildID),
		slog.String(logging.KeyUserID, user.ID),
	)

	category, ok := p.CategoryByName(i.GuildID, s.cfg.Ticketing.CategoryName)
	if !ok {
		l.Warn("Ticket category not found", slog.String("category", s.cfg.Ticketing.CategoryName))
		if err := p.Respond(i, ephemeral(fmt.Sprintf(messages.ErrCategoryNotFoundFmt, s.cfg.Ticketing.CategoryName))); err != nil {
			return fmt.Errorf("error responding to interaction: %w", err)
		}
		return nil
	}

	ticket := &entities.Ticket{
		GuildID:   i.GuildID,
		UserID:    user.ID,
		Username:  user.Username,
		Type:      tt,
		CreatedAt: s.now().UTC(),
	}

	// Create the ticket channel only the staff role and the creator can see.
	ch, err := p.CreateChannel(i.GuildID, discordgo.GuildChannelCreateData{
		Name:                 ticket.Name(),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             category.ID,
		PermissionOverwrites: TicketOverwrites(i.GuildID, user.ID, s.cfg.Ticketing.StaffRoleID),
	})
	if err != nil {
		return fmt.Errorf("error creating ticket channel: %w", err)
	}
	ticket.ChannelID = ch.ID

	if _, err := p.SendMessage(s.cfg.LogChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.LogTicketCreatedTitle,
				Description: fmt.Sprintf(messages.LogTicketCreatedFmt, user.Mention(), tt.Label),
				Color:       colorGreen,
				Timestamp:   ticket.CreatedAt.Format(time.RFC3339),
			},
		},
	}); err != nil {
		return fmt.Errorf("error logging ticket creation: %w", err)
	}

	if _, err := p.SendMessage(ch.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf(messages.TicketWelcomeFmt, user.Mention(), tt.Label),
	}); err != nil {
		return fmt.Errorf("error sending ticket welcome: %w", err)
	}

	if err := p.Respond(i, ephemeral(messages.TicketCreated)); err != nil {
		return fmt.Errorf("error responding to interaction: %w", err)
	}

	if _, err := p.SendMessage(ch.ID, closeTicketMessage()); err != nil {
		return fmt.Errorf("error sending close button: %w", err)
	}

	monitoring.TicketsOpened.WithLabelValues(tt.Key).Inc()
	l.Info("Ticket created",
		slog.String(logging.KeyChannelID, ch.ID),
		slog.String("type", tt.Key),
	)
	return nil
}

// closeTicket deletes the ticket channel the close button was pressed in. Only the staff role can close tickets.
func (s *Service) closeTicket(p platform.Platform, i *discordgo.Interaction) error {
	closer := i.Member.User
	l := s.l.With(
		slog.String(logging.KeyGuildID, i.GuildID),
		slog.String(logging.KeyUserID, closer.ID),
		slog.String(logging.KeyChannelID, i.ChannelID),
	)

	if !hasRole(i.Member, s.cfg.Ticketing.StaffRoleID) {
		monitoring.CloseDenied.Inc()
		l.Info("Close attempt without the staff role")
		if err := p.Respond(i, ephemeral(messages.ErrCloseNotAllowed)); err != nil {
			return fmt.Errorf("error responding to interaction: %w", err)
		}
		return nil
	}

	if err := p.Respond(i, ephemeral(messages.TicketClosed)); err != nil {
		return fmt.Errorf("error responding to interaction: %w", err)
	}

	channelName := i.ChannelID
	if ch, ok := p.ChannelByID(i.ChannelID); ok {
		channelName = ch.Name
	}

	// The transcript is best effort, it must not keep the channel alive.
	if err := s.logClosed(p, i.ChannelID, channelName, closer); err != nil {
		l.Warn("Error logging ticket transcript", slog.String(logging.KeyError, err.Error()))
	}

	if err := p.DeleteChannel(i.ChannelID); err != nil {
		return fmt.Errorf("error deleting ticket channel: %w", err)
	}

	monitoring.TicketsClosed.Inc()
	l.Info("Ticket closed")
	return nil
}

// logClosed posts the closed ticket embed with the transcript of the channel attached.
func (s *Service) logClosed(p platform.Platform, channelID, channelName string, closer *discordgo.User) error {
	msgs, err := p.RecentMessages(channelID, transcriptLimit)
	if err != nil {
		return fmt.Errorf("error getting ticket history: %w", err)
	}

	now := s.now().UTC()
	_, err = p.SendMessage(s.cfg.LogChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.LogTicketClosedTitle,
				Description: fmt.Sprintf(messages.LogTicketClosedFmt, closer.Mention(), channelName),
				Color:       colorRed,
				Timestamp:   now.Format(time.RFC3339),
			},
		},
		Files: []*discordgo.File{
			{
				Name:        fmt.Sprintf("%s-%d.txt", channelName, now.UnixMilli()),
				ContentType: "text/plain",
				Reader:      strings.NewReader(Transcript(msgs)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error sending transcript: %w", err)
	}
	return nil
}

// Transcript renders messages, given newest first, as one line per message oldest first.
func Transcript(msgs []*discordgo.Message) string {
	if len(msgs) == 0 {
		return messages.TranscriptEmpty
	}

	sb := new(strings.Builder)
	for idx := len(msgs) - 1; idx >= 0; idx-- {
		m := msgs[idx]

		author := "?"
		if m.Author != nil {
			author = m.Author.Username
		}

		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", m.Timestamp.UTC().Format(time.RFC3339), author, m.Content))
	}
	return sb.String()
}

func hasRole(member *discordgo.Member, roleID string) bool {
	return member != nil && roleID != "" && slices.Contains(member.Roles, roleID)
}

// responseTracker remembers whether the interaction has been responded to.
type responseTracker struct {
	platform.Platform
	responded bool
}

func (r *responseTracker) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	r.responded = true
	return r.Platform.Respond(i, resp)
}
