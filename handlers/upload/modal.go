package upload

import (
	"log"
	"strings"

	"anon-upload-bot/bot"
	"anon-upload-bot/model"
	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleDescriptionSubmit runs the publish pipeline once the invoker submits
// the description form. Mention resolution and preview generation degrade
// with warnings; a failed download or a failed send aborts the command.
func HandleDescriptionSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig()
	data := i.ModalSubmitData()

	// 1. Reclaim the pending upload for this form
	token := strings.TrimPrefix(data.CustomID, UploadModalPrefix)
	req, ok := b.GetSessions().TakeUpload(token)
	if !ok {
		utils.SendErrorResponse(s, i, "This upload session has expired, please run /upload again.")
		return
	}

	description := modalTextValue(data.Components, "description")
	if description == "" {
		utils.SendErrorResponse(s, i, "Description cannot be empty.")
		return
	}

	// 2. Acknowledge immediately; the downloads below can outlast the
	// interaction response window
	utils.SendSimpleResponse(s, i, "Processing...")

	// 3. Resolve users to ping from the fulfilled request, if any
	mentions, warn := ResolveMentions(s, cfg, req.FulfilledRequestRef)
	if warn != "" {
		if _, err := utils.SendFollowUp(s, i.Interaction, warn); err != nil {
			log.Printf("Error sending mention warning: %v", err)
		}
	}

	// 4. Materialize the image
	imageData, err := utils.DownloadAttachment(utils.GlobalHTTPClient, req.ImageURL)
	if err != nil {
		log.Printf("Error downloading attachment %s: %v", req.ImageURL, err)
		failUpload(s, i, model.Critical("Failed to download the attached image, the post was not created.", err))
		return
	}
	files, warn := BuildAttachmentFiles(imageData, req.ImageFilename, req.ImageContentType)
	if warn != "" {
		if _, err := utils.SendFollowUp(s, i.Interaction, warn); err != nil {
			log.Printf("Error sending preview warning: %v", err)
		}
	}

	// 5. Publish the anonymous post
	permalink, err := PublishAnonymousPost(s, i.GuildID, req.TargetChannelID, ComposeContent(description, mentions), files)
	if err != nil {
		log.Printf("Error publishing anonymous post: %v", err)
		failUpload(s, i, model.Critical("Failed to publish the post, please try again later.", err))
		return
	}

	// 6. Drop the processing notice and hand the invoker the controls
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		log.Printf("Error deleting processing notice: %v", err)
	}
	_, err = utils.SendFollowUpWithComponents(s, i.Interaction,
		"The post has been uploaded to the server.\nLink: "+permalink,
		confirmationComponents())
	if err != nil {
		log.Printf("Error sending confirmation message: %v", err)
	}

	if err := utils.LogInfo(cfg.LogWebhookURL, "Upload", "Publish", "Anonymous post published: "+permalink); err != nil {
		log.Printf("Failed to send publish log: %v", err)
	}
}

// failUpload reports a critical pipeline failure to the invoker. The
// processing notice is removed first so the failure reads as the outcome.
func failUpload(s *discordgo.Session, i *discordgo.InteractionCreate, ferr *model.FlowError) {
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		log.Printf("Error deleting processing notice: %v", err)
	}
	if _, err := utils.SendFollowUp(s, i.Interaction, "❌ "+ferr.Reason); err != nil {
		log.Printf("Error sending failure notice: %v", err)
	}
}
