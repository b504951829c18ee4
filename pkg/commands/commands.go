// Package commands handles the "!" prefix commands posted in guild channels.
package commands

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Jacobbrewer1/concierge/pkg/commands/monitoring"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/concierge/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Prefix starts every command.
const Prefix = "!"

const (
	// defaultRate is how many commands per second are let through once the burst is spent.
	defaultRate = rate.Limit(1)

	// defaultBurst is how many commands can run back to back.
	defaultBurst = 5

	// colorHelp is the color of the help embed.
	colorHelp = 0x00AE86
)

// Command is a prefix command.
type Command struct {
	// Name is what follows the prefix, in lower case.
	Name string

	// Description is shown by the help command.
	Description string

	// run executes the command for the message.
	run func(m *discordgo.Message) error
}

// Option configures a Handler.
type Option func(h *Handler)

// WithRateLimit sets how many commands the handler lets through.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(h *Handler) {
		h.limiter = rate.NewLimiter(r, burst)
	}
}

// Handler routes messages to the command they name.
type Handler struct {
	// l is the logger.
	l *slog.Logger

	// p is the platform.
	p platform.Platform

	// limiter drops commands sent faster than the configured rate.
	limiter *rate.Limiter

	// commands are the known commands, in the order help lists them.
	commands []Command
}

// NewHandler creates the command handler with the ticket, testbutton, ping and help commands.
func NewHandler(l *slog.Logger, p platform.Platform, opts ...Option) *Handler {
	h := &Handler{
		l:       l.With(slog.String(logging.KeyHandler, "commands")),
		p:       p,
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
	}

	h.commands = []Command{
		{
			Name:        "ticket",
			Description: "Affiche le bouton pour créer un ticket.",
			run:         h.ticket,
		},
		{
			Name:        "testbutton",
			Description: "Envoie un bouton de test.",
			run:         h.testButton,
		},
		{
			Name:        "ping",
			Description: "Affiche la latence du bot.",
			run:         h.ping,
		},
		{
			Name:        "help",
			Description: "Affiche la liste des commandes.",
			run:         h.help,
		},
	}

	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commands returns the known commands.
func (h *Handler) Commands() []Command {
	return append([]Command(nil), h.commands...)
}

// HandleMessage runs the command the message names. Messages from bots, messages without the prefix and unknown
// commands are ignored. When a command fails the author gets a generic error reply.
func (h *Handler) HandleMessage(m *discordgo.Message) error {
	if m == nil || m.Author == nil || m.Author.Bot {
		return nil
	}

	name, ok := parseCommand(m.Content)
	if !ok {
		return nil
	}

	cmd, ok := h.lookup(name)
	if !ok {
		return nil
	}

	l := h.l.With(
		slog.String(logging.KeyCommand, cmd.Name),
		slog.String(logging.KeyChannelID, m.ChannelID),
		slog.String(logging.KeyUserID, m.Author.ID),
	)

	if !h.limiter.Allow() {
		monitoring.CommandsTotal.WithLabelValues(cmd.Name, monitoring.StatusLimited).Inc()
		l.Debug("Command dropped by rate limiter")
		return nil
	}

	t := prometheus.NewTimer(monitoring.CommandDuration.WithLabelValues(cmd.Name))
	defer t.ObserveDuration()

	if err := cmd.run(m); err != nil {
		monitoring.CommandsTotal.WithLabelValues(cmd.Name, monitoring.StatusError).Inc()

		if _, rerr := h.p.SendMessage(m.ChannelID, &discordgo.MessageSend{
			Content:   messages.ErrUserErrorProcessing,
			Reference: m.Reference(),
		}); rerr != nil {
			l.Error("Error sending command error reply", slog.String(logging.KeyError, rerr.Error()))
		}
		return fmt.Errorf("error running command %s: %w", cmd.Name, err)
	}

	monitoring.CommandsTotal.WithLabelValues(cmd.Name, monitoring.StatusOK).Inc()
	l.Debug("Command handled")
	return nil
}

func (h *Handler) lookup(name string) (Command, bool) {
	for _, c := range h.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// parseCommand extracts the lower cased command name from the message content.
func parseCommand(content string) (string, bool) {
	if !strings.HasPrefix(content, Prefix) {
		return "", false
	}

	fields := strings.Fields(strings.TrimPrefix(content, Prefix))
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

func (h *Handler) ticket(m *discordgo.Message) error {
	if _, err := h.p.SendMessage(m.ChannelID, ticketing.PromptMessage(messages.TicketPrompt)); err != nil {
		return fmt.Errorf("error sending ticket prompt: %w", err)
	}
	return nil
}

func (h *Handler) testButton(m *discordgo.Message) error {
	if _, err := h.p.SendMessage(m.ChannelID, ticketing.PromptMessage(messages.TestButtonPrompt)); err != nil {
		return fmt.Errorf("error sending test button: %w", err)
	}
	return nil
}

func (h *Handler) ping(m *discordgo.Message) error {
	if _, err := h.p.SendMessage(m.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf(messages.PongFmt, latencyMillis(h.p.Latency())),
	}); err != nil {
		return fmt.Errorf("error sending pong: %w", err)
	}
	return nil
}

func (h *Handler) help(m *discordgo.Message) error {
	lines := make([]string, 0, len(h.commands))
	for _, c := range h.commands {
		lines = append(lines, fmt.Sprintf("**%s%s** : %s", Prefix, c.Name, c.Description))
	}

	if _, err := h.p.SendMessage(m.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.HelpTitle,
				Description: strings.Join(lines, "\n"),
				Color:       colorHelp,
			},
		},
	}); err != nil {
		return fmt.Errorf("error sending help: %w", err)
	}
	return nil
}

// latencyMillis rounds d to whole milliseconds. The latency is zero until the first heartbeat is acknowledged.
func latencyMillis(d time.Duration) int64 {
	ms := int64(math.Round(float64(d) / float64(time.Millisecond)))
	if ms < 0 {
		return 0
	}
	return ms
}
