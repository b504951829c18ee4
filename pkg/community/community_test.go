package community

import (
	"errors"
	"testing"

	"github.com/Jacobbrewer1/concierge/pkg/entities"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/messages"
	"github.com/Jacobbrewer1/concierge/pkg/platform"
	"github.com/Jacobbrewer1/concierge/pkg/platform/fake"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	testGuildID     = "guild"
	testLogChannel  = "log"
	testWelcomeChan = "welcome"
	testRoleID      = "role-nouveaux"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() entities.GuildConfig {
	return entities.GuildConfig{
		WelcomeChannelID:  testWelcomeChan,
		LogChannelID:      testLogChannel,
		NewMemberRoleName: "Nouveaux",
		WelcomeImageURL:   "https://example.com/welcome.jpg",
	}
}

func newMember() *discordgo.Member {
	return &discordgo.Member{
		GuildID: testGuildID,
		User:    &discordgo.User{ID: "alice-id", Username: "alice"},
	}
}

func TestGreeter_MemberJoined(t *testing.T) {
	tests := []struct {
		name        string
		withRole    bool
		failGrant   bool
		withWelcome bool
		wantGrants  int
		wantWelcome int
	}{
		{name: "Everything present", withRole: true, withWelcome: true, wantGrants: 1, wantWelcome: 1},
		{name: "Role missing", withRole: false, withWelcome: true, wantGrants: 0, wantWelcome: 1},
		{name: "Role grant fails", withRole: true, failGrant: true, withWelcome: true, wantGrants: 0, wantWelcome: 1},
		{name: "Welcome channel missing", withRole: true, withWelcome: false, wantGrants: 1, wantWelcome: 0},
		{name: "Nothing present", withRole: false, withWelcome: false, wantGrants: 0, wantWelcome: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fake.New()
			p.AddChannel(&discordgo.Channel{ID: testLogChannel, GuildID: testGuildID, Name: "logs"})
			if tt.withRole {
				p.AddRole(testGuildID, &discordgo.Role{ID: testRoleID, Name: "Nouveaux"})
			}
			if tt.failGrant {
				p.FailRoleGrants(errors.New("missing permissions"))
			}
			if tt.withWelcome {
				p.AddChannel(&discordgo.Channel{ID: testWelcomeChan, GuildID: testGuildID, Name: "bienvenue"})
			}

			g := NewGreeter(logging.Discard(), p, testConfig())
			require.NoError(t, g.MemberJoined(newMember()))

			// The arrival is always logged exactly once.
			logs := p.EmbedsTo(testLogChannel)
			require.Len(t, logs, 1)
			require.Equal(t, messages.LogMemberJoinedTitle, logs[0].Title)
			require.Equal(t, "**Membre :** <@alice-id>\n**Nom :** alice", logs[0].Description)

			grants := p.RoleGrants()
			require.Len(t, grants, tt.wantGrants)
			if tt.wantGrants > 0 {
				require.Equal(t, fake.RoleGrant{GuildID: testGuildID, UserID: "alice-id", RoleID: testRoleID}, grants[0])
			}

			welcome := p.EmbedsTo(testWelcomeChan)
			require.Len(t, welcome, tt.wantWelcome)
			if tt.wantWelcome > 0 {
				require.Equal(t, "Bienvenue alice ! 🎉", welcome[0].Title)
				require.Contains(t, welcome[0].Description, "<@alice-id>")
				require.Equal(t, messages.WelcomeFooter, welcome[0].Footer.Text)
				require.Equal(t, "https://example.com/welcome.jpg", welcome[0].Image.URL)
				require.NotNil(t, welcome[0].Thumbnail)
			}
		})
	}
}

func TestGreeter_MemberJoined_MissingLogChannel(t *testing.T) {
	p := fake.New()
	p.AddChannel(&discordgo.Channel{ID: testWelcomeChan, GuildID: testGuildID, Name: "bienvenue"})

	g := NewGreeter(logging.Discard(), p, testConfig())
	err := g.MemberJoined(newMember())
	require.ErrorIs(t, err, platform.ErrNotFound)

	// The greeting stops at the log channel.
	require.Empty(t, p.SentTo(testWelcomeChan))
}

func TestGreeter_MemberJoined_NoUser(t *testing.T) {
	g := NewGreeter(logging.Discard(), fake.New(), testConfig())
	require.Error(t, g.MemberJoined(&discordgo.Member{GuildID: testGuildID}))
	require.Error(t, g.MemberJoined(nil))
}

func TestAuditor_MessageDeleted(t *testing.T) {
	tests := []struct {
		name       string
		channelID  string
		deleted    *discordgo.Message
		wantLogged bool
		wantFooter string
	}{
		{
			name:      "User message",
			channelID: "general",
			deleted: &discordgo.Message{
				ID:      "m1",
				Content: "Mon message *verbatim*",
				Author:  &discordgo.User{ID: "alice-id", Username: "alice"},
			},
			wantLogged: true,
			wantFooter: "Salon : général",
		},
		{
			name:      "Bot message",
			channelID: "general",
			deleted: &discordgo.Message{
				ID:      "m2",
				Content: "housekeeping",
				Author:  &discordgo.User{ID: "bot", Username: "concierge", Bot: true},
			},
			wantLogged: false,
		},
		{
			name:       "Not cached",
			channelID:  "general",
			deleted:    nil,
			wantLogged: false,
		},
		{
			name:      "Unknown channel",
			channelID: "gone",
			deleted: &discordgo.Message{
				ID:      "m3",
				Content: "hello",
				Author:  &discordgo.User{ID: "alice-id", Username: "alice"},
			},
			wantLogged: true,
			wantFooter: "Salon : gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fake.New()
			p.AddChannel(&discordgo.Channel{ID: testLogChannel, GuildID: testGuildID, Name: "logs"})
			p.AddChannel(&discordgo.Channel{ID: "general", GuildID: testGuildID, Name: "général"})

			a := NewAuditor(logging.Discard(), p, testConfig())
			require.NoError(t, a.MessageDeleted(tt.channelID, tt.deleted))

			logs := p.EmbedsTo(testLogChannel)
			if !tt.wantLogged {
				require.Empty(t, logs)
				return
			}

			require.Len(t, logs, 1)
			require.Equal(t, messages.LogMessageDeletedTitle, logs[0].Title)
			require.Equal(t, "**Utilisateur :** <@alice-id>\n**Message :** "+tt.deleted.Content, logs[0].Description)
			require.Equal(t, tt.wantFooter, logs[0].Footer.Text)
		})
	}
}

func TestAuditor_MessageDeleted_BotNotReady(t *testing.T) {
	p := fake.New()
	p.SetBotUser(nil)
	p.AddChannel(&discordgo.Channel{ID: testLogChannel, GuildID: testGuildID, Name: "logs"})

	a := NewAuditor(logging.Discard(), p, testConfig())
	require.NoError(t, a.MessageDeleted("general", &discordgo.Message{
		Content: "hello",
		Author:  &discordgo.User{ID: "alice-id"},
	}))
	require.Len(t, p.EmbedsTo(testLogChannel), 1)
}

func TestAuditor_MessageDeleted_MissingLogChannel(t *testing.T) {
	a := NewAuditor(logging.Discard(), fake.New(), testConfig())
	err := a.MessageDeleted("general", &discordgo.Message{
		Content: "hello",
		Author:  &discordgo.User{ID: "alice-id"},
	})
	require.ErrorIs(t, err, platform.ErrNotFound)
}
