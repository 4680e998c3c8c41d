package upload

import (
	"fmt"
	"log"

	"anon-upload-bot/bot"
	"anon-upload-bot/model"
	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	// UploadModalPrefix and EditModalPrefix carry the session token that
	// correlates a modal submission back to the interaction that opened it.
	UploadModalPrefix = "upload_form:"
	EditModalPrefix   = "edit_form:"

	EditButtonID   = "btn:edit_description"
	DeleteButtonID = "btn:delete_post"
)

// HandleUploadCommand handles the /upload slash command: it validates the
// invocation, stashes the collected arguments in a pending session and opens
// the description form.
func HandleUploadCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig()

	if i.Member == nil || i.Member.User == nil {
		utils.SendErrorResponse(s, i, "This command can only be used in a server.")
		return
	}

	if cfg.CommandChannelID != "" && i.ChannelID != cfg.CommandChannelID {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Please use /upload in <#%s>.", cfg.CommandChannelID))
		return
	}

	data := i.ApplicationCommandData()
	var channelLabel, requestRef, attachmentID string
	for _, opt := range data.Options {
		switch opt.Name {
		case "upload_channel":
			channelLabel = opt.StringValue()
		case "image_attachment":
			attachmentID, _ = opt.Value.(string)
		case "fulfilled_request_link":
			requestRef = opt.StringValue()
		}
	}

	targetChannelID, ok := resolveTargetChannel(cfg, channelLabel)
	if !ok {
		utils.SendErrorResponse(s, i, "Unknown upload channel.")
		return
	}

	var attachment *discordgo.MessageAttachment
	if data.Resolved != nil {
		attachment = data.Resolved.Attachments[attachmentID]
	}
	if attachment == nil {
		utils.SendErrorResponse(s, i, "No image attachment provided.")
		return
	}

	token := b.GetSessions().PutUpload(model.UploadRequest{
		InvokerID:           i.Member.User.ID,
		TargetChannelID:     targetChannelID,
		ImageURL:            attachment.URL,
		ImageFilename:       attachment.Filename,
		ImageContentType:    attachment.ContentType,
		FulfilledRequestRef: requestRef,
	})

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   UploadModalPrefix + token,
			Title:      "Upload Anonymously",
			Components: descriptionFormComponents(""),
		},
	})
	if err != nil {
		log.Printf("Error opening description form: %v", err)
	}
}

// resolveTargetChannel maps the chosen label to a channel ID. With a single
// configured destination the command carries no channel option and the sole
// destination wins.
func resolveTargetChannel(cfg *model.Config, label string) (string, bool) {
	if label == "" && len(cfg.ShareChannels) == 1 {
		return cfg.ShareChannels[0].ID, true
	}
	return cfg.ShareChannelID(label)
}

func descriptionFormComponents(value string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "description",
					Label:       "Description",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "Description of the upload",
					Required:    true,
					Value:       value,
				},
			},
		},
	}
}

// modalTextValue extracts the value of a named text input from a modal
// submission.
func modalTextValue(components []discordgo.MessageComponent, customID string) string {
	for _, component := range components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			if textInput, ok := comp.(*discordgo.TextInput); ok && textInput.CustomID == customID {
				return textInput.Value
			}
		}
	}
	return ""
}
