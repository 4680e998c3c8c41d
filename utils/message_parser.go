package utils

import (
	"errors"
	"fmt"
	"regexp"
)

var messageLinkRe = regexp.MustCompile(`https://discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)`)

// MessageRef identifies a message by the three IDs a Discord message link
// carries.
type MessageRef struct {
	GuildID   string
	ChannelID string
	MessageID string
}

// BuildMessageLink returns the permalink for a message.
func BuildMessageLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// ParseMessageLink extracts the first Discord message link found in text.
// The confirmation message embeds exactly one such link; none means the
// message text was corrupted and the post can no longer be located.
func ParseMessageLink(text string) (MessageRef, error) {
	match := messageLinkRe.FindStringSubmatch(text)
	if match == nil {
		return MessageRef{}, errors.New("no message link found")
	}
	return MessageRef{GuildID: match[1], ChannelID: match[2], MessageID: match[3]}, nil
}
