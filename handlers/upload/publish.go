package upload

import (
	"strings"

	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// messageSender is the slice of discordgo.Session that publication needs.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ComposeContent joins the description and the mention strings into the
// final post text. Mentions are concatenated without separator; with no
// mentions the trailing newline is trimmed away.
func ComposeContent(description string, mentions []string) string {
	content := description + "\n" + strings.Join(mentions, "")
	if len(mentions) == 0 {
		content = strings.TrimRight(content, " \n")
	}
	return content
}

// PublishAnonymousPost sends the composed post to the target channel under
// the bot's own identity and returns the new message's permalink. Embeds are
// suppressed so a pasted link in the description does not unfurl under the
// image. This is the single write that creates the post; it is never
// retried.
func PublishAnonymousPost(s messageSender, guildID, channelID, content string, files []*discordgo.File) (string, error) {
	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Files:   files,
		Flags:   discordgo.MessageFlagsSuppressEmbeds,
	})
	if err != nil {
		return "", err
	}
	return utils.BuildMessageLink(guildID, channelID, msg.ID), nil
}
