package upload

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"anon-upload-bot/bot"
	"anon-upload-bot/model"
	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const postNotFoundNotice = "Post not found, it may have already been deleted by admins."

// confirmationComponents are the post-publication controls attached to the
// ephemeral confirmation message.
func confirmationComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Edit Description",
					Style:    discordgo.PrimaryButton,
					CustomID: EditButtonID,
				},
				discordgo.Button{
					Label:    "Delete Post",
					Style:    discordgo.DangerButton,
					CustomID: DeleteButtonID,
				},
			},
		},
	}
}

// HandleDeletePost deletes the anonymous post the actuating confirmation
// message points at, then removes the confirmation itself. A post already
// removed by admins is a reportable outcome, not a failure.
func HandleDeletePost(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.AckMessageUpdate(s, i); err != nil {
		log.Printf("Error acknowledging delete interaction: %v", err)
		return
	}

	ref, err := utils.ParseMessageLink(i.Message.Content)
	if err != nil {
		if _, err := utils.SendFollowUp(s, i.Interaction, "❌ The confirmation message no longer contains a valid post link."); err != nil {
			log.Printf("Error reporting missing post link: %v", err)
		}
		return
	}

	notice := "Post deleted."
	switch err := s.ChannelMessageDelete(ref.ChannelID, ref.MessageID); {
	case err == nil:
		if err := utils.LogInfo(b.GetConfig().LogWebhookURL, "Upload", "Delete", "Anonymous post deleted: "+utils.BuildMessageLink(ref.GuildID, ref.ChannelID, ref.MessageID)); err != nil {
			log.Printf("Failed to send delete log: %v", err)
		}
	case isNotFound(err):
		notice = postNotFoundNotice
	default:
		log.Printf("Error deleting anonymous post %s/%s: %v", ref.ChannelID, ref.MessageID, err)
		if _, err := utils.SendFollowUp(s, i.Interaction, "❌ Failed to delete the post, please try again later."); err != nil {
			log.Printf("Error reporting delete failure: %v", err)
		}
		// keep the confirmation so the invoker can retry
		return
	}

	if _, err := utils.SendFollowUp(s, i.Interaction, notice); err != nil {
		log.Printf("Error sending delete notice: %v", err)
	}

	// the DeferredMessageUpdate ack made the confirmation message this
	// interaction's response, so deleting the response removes it
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		log.Printf("Error removing confirmation message: %v", err)
	}
}

// HandleEditButton re-opens the description form pre-filled with the post's
// current content.
func HandleEditButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	ref, err := utils.ParseMessageLink(i.Message.Content)
	if err != nil {
		utils.SendErrorResponse(s, i, "The confirmation message no longer contains a valid post link.")
		return
	}

	msg, err := s.ChannelMessage(ref.ChannelID, ref.MessageID)
	if err != nil {
		if isNotFound(err) {
			utils.SendSimpleResponse(s, i, postNotFoundNotice)
			return
		}
		log.Printf("Error fetching anonymous post %s/%s: %v", ref.ChannelID, ref.MessageID, err)
		utils.SendErrorResponse(s, i, "Failed to fetch the post, please try again later.")
		return
	}

	token := b.GetSessions().PutEdit(model.EditRequest{
		InvokerID: invokerID(i),
		ChannelID: ref.ChannelID,
		MessageID: ref.MessageID,
	})

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   EditModalPrefix + token,
			Title:      "Upload Anonymously",
			Components: descriptionFormComponents(msg.Content),
		},
	})
	if err != nil {
		log.Printf("Error opening edit form: %v", err)
	}
}

// HandleEditSubmit replaces the post's content wholesale with the new
// description. Files and mentions are not recomputed.
func HandleEditSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	token := strings.TrimPrefix(data.CustomID, EditModalPrefix)
	req, ok := b.GetSessions().TakeEdit(token)
	if !ok {
		utils.SendErrorResponse(s, i, "This edit session has expired, please press Edit Description again.")
		return
	}

	description := modalTextValue(data.Components, "description")
	if description == "" {
		utils.SendErrorResponse(s, i, "Description cannot be empty.")
		return
	}

	if _, err := s.ChannelMessageEdit(req.ChannelID, req.MessageID, description); err != nil {
		if isNotFound(err) {
			utils.SendSimpleResponse(s, i, postNotFoundNotice)
			return
		}
		log.Printf("Error editing anonymous post %s/%s: %v", req.ChannelID, req.MessageID, err)
		utils.SendErrorResponse(s, i, "Failed to update the description, please try again later.")
		return
	}

	utils.SendSimpleResponse(s, i, "Description updated.")
}

func invokerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMessage {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
