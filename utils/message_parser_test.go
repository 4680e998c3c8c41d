package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageLink(t *testing.T) {
	link := BuildMessageLink("111", "222", "333")
	assert.Equal(t, "https://discord.com/channels/111/222/333", link)
}

func TestParseMessageLink(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		want    MessageRef
		wantErr bool
	}{
		{
			name: "bare link",
			text: "https://discord.com/channels/111/222/333",
			want: MessageRef{GuildID: "111", ChannelID: "222", MessageID: "333"},
		},
		{
			name: "link embedded in confirmation text",
			text: "The post has been uploaded to the server.\nLink: https://discord.com/channels/12/34/56",
			want: MessageRef{GuildID: "12", ChannelID: "34", MessageID: "56"},
		},
		{
			name: "legacy discordapp domain",
			text: "https://discordapp.com/channels/1/2/3",
			want: MessageRef{GuildID: "1", ChannelID: "2", MessageID: "3"},
		},
		{
			name: "first link wins",
			text: "https://discord.com/channels/1/2/3 and https://discord.com/channels/4/5/6",
			want: MessageRef{GuildID: "1", ChannelID: "2", MessageID: "3"},
		},
		{
			name:    "no link",
			text:    "The post has been uploaded to the server.",
			wantErr: true,
		},
		{
			name:    "channel link without message id",
			text:    "https://discord.com/channels/111/222",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := ParseMessageLink(tc.text)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ref)
		})
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	link := BuildMessageLink("987654321", "123456789", "555")
	ref, err := ParseMessageLink("Link: " + link)
	require.NoError(t, err)
	assert.Equal(t, MessageRef{GuildID: "987654321", ChannelID: "123456789", MessageID: "555"}, ref)
}
