package bot

import (
	"errors"
	"testing"

	"anon-upload-bot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSetupFetcher struct {
	guildErr    error
	badChannels map[string]error
	emojis      []*discordgo.Emoji
	emojisErr   error
}

func (f *fakeSetupFetcher) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if f.guildErr != nil {
		return nil, f.guildErr
	}
	return &discordgo.Guild{ID: guildID, Name: "Test Server"}, nil
}

func (f *fakeSetupFetcher) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if err, ok := f.badChannels[channelID]; ok {
		return nil, err
	}
	return &discordgo.Channel{ID: channelID}, nil
}

func (f *fakeSetupFetcher) GuildEmojis(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Emoji, error) {
	if f.emojisErr != nil {
		return nil, f.emojisErr
	}
	return f.emojis, nil
}

func setupTestConfig() *model.Config {
	return &model.Config{
		GuildID: "guild-1",
		ShareChannels: []model.ShareChannel{
			{Label: "upload-sharing", ID: "chan-upload"},
			{Label: "ost-sharing", ID: "chan-ost"},
		},
		RequestChannelID: "chan-request",
		MarkerEmoji:      "pingme",
	}
}

func TestSetupWarningsAllResolved(t *testing.T) {
	fetcher := &fakeSetupFetcher{
		emojis: []*discordgo.Emoji{{Name: "pingme", ID: "777"}},
	}

	warnings := setupWarnings(fetcher, setupTestConfig())

	assert.Empty(t, warnings)
}

func TestSetupWarningsGuildFetchFailureDoesNotAbort(t *testing.T) {
	fetcher := &fakeSetupFetcher{
		guildErr: errors.New("missing access"),
		emojis:   []*discordgo.Emoji{{Name: "pingme", ID: "777"}},
	}

	warnings := setupWarnings(fetcher, setupTestConfig())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "could not fetch guild guild-1")
	assert.Contains(t, warnings[0], "missing access")
}

func TestSetupWarningsUnresolvableChannel(t *testing.T) {
	fetcher := &fakeSetupFetcher{
		badChannels: map[string]error{"chan-ost": errors.New("unknown channel")},
		emojis:      []*discordgo.Emoji{{Name: "pingme", ID: "777"}},
	}

	warnings := setupWarnings(fetcher, setupTestConfig())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "could not resolve channel chan-ost")
}

func TestSetupWarningsMissingMarkerEmoji(t *testing.T) {
	fetcher := &fakeSetupFetcher{
		emojis: []*discordgo.Emoji{{Name: "other", ID: "1"}},
	}

	warnings := setupWarnings(fetcher, setupTestConfig())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `marker emoji "pingme" not found`)
}

func TestSetupWarningsEmojiListFailure(t *testing.T) {
	fetcher := &fakeSetupFetcher{
		emojisErr: errors.New("rate limited"),
	}

	warnings := setupWarnings(fetcher, setupTestConfig())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "could not list guild emojis")
}
