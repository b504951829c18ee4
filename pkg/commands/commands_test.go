package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/Jacobbrewer1/concierge/pkg/commands/monitoring"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform/fake"
	"github.com/Jacobbrewer1/concierge/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/time/rate"
)

const testChannelID = "general"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newPlatform() *fake.Platform {
	p := fake.New()
	p.AddChannel(&discordgo.Channel{ID: testChannelID, GuildID: "guild", Name: "général"})
	return p
}

func message(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "msg",
		ChannelID: testChannelID,
		GuildID:   "guild",
		Content:   content,
		Author:    &discordgo.User{ID: "alice-id", Username: "alice"},
	}
}

func TestHandler_HandleMessage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *discordgo.MessageSend
	}{
		{
			name:    "Ticket",
			content: "!ticket",
			want:    ticketing.PromptMessage(messages.TicketPrompt),
		},
		{
			name:    "Ticket upper case",
			content: "!TICKET",
			want:    ticketing.PromptMessage(messages.TicketPrompt),
		},
		{
			name:    "Ticket with arguments",
			content: "!ticket please",
			want:    ticketing.PromptMessage(messages.TicketPrompt),
		},
		{
			name:    "Test button",
			content: "!testbutton",
			want:    ticketing.PromptMessage(messages.TestButtonPrompt),
		},
		{
			name:    "Ping",
			content: "!ping",
			want:    &discordgo.MessageSend{Content: "Pong! Latence : 42ms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlatform()
			p.SetLatency(42 * time.Millisecond)

			h := NewHandler(logging.Discard(), p)
			require.NoError(t, h.HandleMessage(message(tt.content)))

			sent := p.SentTo(testChannelID)
			require.Len(t, sent, 1)
			require.Equal(t, tt.want, sent[0])
		})
	}
}

func TestHandler_HandleMessage_Ignored(t *testing.T) {
	tests := []struct {
		name string
		msg  *discordgo.Message
	}{
		{name: "No prefix", msg: message("ticket")},
		{name: "Prefix only", msg: message("!")},
		{name: "Unknown command", msg: message("!dance")},
		{name: "Prefix not first", msg: message("hello !ping")},
		{name: "Nil message", msg: nil},
		{
			name: "Bot author",
			msg: &discordgo.Message{
				ChannelID: testChannelID,
				Content:   "!ping",
				Author:    &discordgo.User{ID: "other-bot", Bot: true},
			},
		},
		{
			name: "No author",
			msg:  &discordgo.Message{ChannelID: testChannelID, Content: "!ping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlatform()
			h := NewHandler(logging.Discard(), p)
			require.NoError(t, h.HandleMessage(tt.msg))
			require.Empty(t, p.Sent())
		})
	}
}

func TestHandler_Ping(t *testing.T) {
	tests := []struct {
		name    string
		latency time.Duration
		want    string
	}{
		{name: "Zero", latency: 0, want: "Pong! Latence : 0ms"},
		{name: "Rounded down", latency: 41*time.Millisecond + 400*time.Microsecond, want: "Pong! Latence : 41ms"},
		{name: "Rounded up", latency: 41*time.Millisecond + 600*time.Microsecond, want: "Pong! Latence : 42ms"},
		{name: "Negative", latency: -5 * time.Millisecond, want: "Pong! Latence : 0ms"},
		{name: "Seconds", latency: 2 * time.Second, want: "Pong! Latence : 2000ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlatform()
			p.SetLatency(tt.latency)

			h := NewHandler(logging.Discard(), p)
			require.NoError(t, h.HandleMessage(message("!ping")))

			sent := p.SentTo(testChannelID)
			require.Len(t, sent, 1)
			require.Equal(t, tt.want, sent[0].Content)
		})
	}
}

func TestHandler_Help(t *testing.T) {
	p := newPlatform()
	h := NewHandler(logging.Discard(), p)
	require.NoError(t, h.HandleMessage(message("!help")))

	sent := p.SentTo(testChannelID)
	require.Len(t, sent, 1)
	require.Len(t, sent[0].Embeds, 1)

	embed := sent[0].Embeds[0]
	require.Equal(t, messages.HelpTitle, embed.Title)
	for _, c := range h.Commands() {
		require.Contains(t, embed.Description, "**!"+c.Name+"** : "+c.Description)
	}
}

func TestHandler_HandleMessage_Failure(t *testing.T) {
	p := newPlatform()
	p.FailSendsTo(testChannelID, errors.New("missing access"))

	h := NewHandler(logging.Discard(), p)
	err := h.HandleMessage(message("!ping"))
	require.Error(t, err)

	// The error reply goes to the same failing channel, so nothing is recorded.
	require.Empty(t, p.Sent())
}

func TestHandler_HandleMessage_ErrorReply(t *testing.T) {
	p := newPlatform()
	h := NewHandler(logging.Discard(), p)
	h.commands = append(h.commands, Command{
		Name: "broken",
		run: func(*discordgo.Message) error {
			return errors.New("broken")
		},
	})

	msg := message("!broken")
	require.Error(t, h.HandleMessage(msg))

	sent := p.SentTo(testChannelID)
	require.Len(t, sent, 1)
	require.Equal(t, messages.ErrUserErrorProcessing, sent[0].Content)
	require.Equal(t, msg.Reference(), sent[0].Reference)
}

func TestHandler_RateLimit(t *testing.T) {
	p := newPlatform()
	h := NewHandler(logging.Discard(), p, WithRateLimit(rate.Every(time.Hour), 2))

	before := testutil.ToFloat64(monitoring.CommandsTotal.WithLabelValues("ping", monitoring.StatusLimited))

	for range [4]struct{}{} {
		require.NoError(t, h.HandleMessage(message("!ping")))
	}

	require.Len(t, p.SentTo(testChannelID), 2)
	require.Equal(t, before+2, testutil.ToFloat64(monitoring.CommandsTotal.WithLabelValues("ping", monitoring.StatusLimited)))
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOk bool
	}{
		{in: "!ping", want: "ping", wantOk: true},
		{in: "!Ping extra words", want: "ping", wantOk: true},
		{in: "!  help", want: "help", wantOk: true},
		{in: "!", want: "", wantOk: false},
		{in: "ping", want: "", wantOk: false},
		{in: "", want: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCommand(tt.in)
			require.Equal(t, tt.wantOk, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
