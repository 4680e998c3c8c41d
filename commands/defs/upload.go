package defs

import (
	"anon-upload-bot/model"

	"github.com/bwmarrin/discordgo"
)

// Upload builds the /upload command for the configured share channels. The
// channel option is only offered when more than one destination exists.
func Upload(shareChannels []model.ShareChannel) *discordgo.ApplicationCommand {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "image_attachment",
			Description: "Paste your image here!",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "fulfilled_request_link",
			Description: "Paste the link to the fulfilled request here",
			Required:    false,
		},
	}

	if len(shareChannels) > 1 {
		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(shareChannels))
		for _, ch := range shareChannels {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  ch.Label,
				Value: ch.Label,
			})
		}
		options = append([]*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "upload_channel",
				Description: "Select a channel to upload to",
				Required:    true,
				Choices:     choices,
			},
		}, options...)
	}

	return &discordgo.ApplicationCommand{
		Name:        "upload",
		Description: "Upload Anonymously.",
		Options:     options,
	}
}
