package upload

import (
	"log"
	"regexp"
	"strings"

	"anon-upload-bot/model"

	"github.com/bwmarrin/discordgo"
)

// skipPingWarning is the single degraded outcome for every mention
// resolution failure; pinging requesters is a courtesy, never a reason to
// abort the post.
const skipPingWarning = "Invalid fulfilled request link provided, will skip pinging users."

// reactionPageSize is the platform's per-request cap on reaction listings;
// larger rosters are fetched page by page.
const reactionPageSize = 100

var numericIDRe = regexp.MustCompile(`^\d+$`)

// messageFetcher is the slice of discordgo.Session that mention resolution
// needs.
type messageFetcher interface {
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactions(channelID, messageID, emojiID string, limit int, beforeID, afterID string, options ...discordgo.RequestOption) ([]*discordgo.User, error)
}

// ResolveMentions turns an optional fulfilled-request reference into the
// mention strings of every user who reacted with the marker emoji on the
// referenced request message, in the order the platform returns them.
// Every failure yields an empty list and a warning instead of an error.
func ResolveMentions(f messageFetcher, cfg *model.Config, ref string) ([]string, string) {
	if ref == "" {
		return nil, ""
	}

	messageID, ok := parseRequestMessageID(ref)
	if !ok {
		return nil, skipPingWarning
	}

	msg, err := f.ChannelMessage(cfg.RequestChannelID, messageID)
	if err != nil {
		log.Printf("Error fetching request message %s: %v", messageID, err)
		return nil, skipPingWarning
	}

	var marker *discordgo.Emoji
	for _, reaction := range msg.Reactions {
		if reaction.Emoji != nil && reaction.Emoji.Name == cfg.MarkerEmoji {
			marker = reaction.Emoji
			break
		}
	}
	if marker == nil {
		return nil, skipPingWarning
	}

	var mentions []string
	afterID := ""
	for {
		users, err := f.MessageReactions(cfg.RequestChannelID, messageID, marker.APIName(), reactionPageSize, "", afterID)
		if err != nil {
			log.Printf("Error fetching reaction users for message %s: %v", messageID, err)
			return nil, skipPingWarning
		}
		for _, user := range users {
			mentions = append(mentions, user.Mention())
		}
		if len(users) < reactionPageSize {
			break
		}
		afterID = users[len(users)-1].ID
	}
	return mentions, ""
}

// parseRequestMessageID accepts either a message link (the ID is the last
// path segment) or a raw numeric message ID.
func parseRequestMessageID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimRight(ref, "/")
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		ref = ref[idx+1:]
	}
	if !numericIDRe.MatchString(ref) {
		return "", false
	}
	return ref, true
}
