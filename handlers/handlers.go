package handlers

import (
	"log"
	"strings"

	"anon-upload-bot/bot"
	"anon-upload-bot/handlers/upload"
	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Recovered from panic while handling interaction: %v", r)
				utils.SendErrorResponse(s, i, "Something went wrong, please try again later.")
			}
		}()

		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if i.ApplicationCommandData().Name == "upload" {
				upload.HandleUploadCommand(s, i, b)
			}
		case discordgo.InteractionModalSubmit:
			customID := i.ModalSubmitData().CustomID
			switch {
			case strings.HasPrefix(customID, upload.UploadModalPrefix):
				upload.HandleDescriptionSubmit(s, i, b)
			case strings.HasPrefix(customID, upload.EditModalPrefix):
				upload.HandleEditSubmit(s, i, b)
			}
		case discordgo.InteractionMessageComponent:
			switch i.MessageComponentData().CustomID {
			case upload.EditButtonID:
				upload.HandleEditButton(s, i, b)
			case upload.DeleteButtonID:
				upload.HandleDeletePost(s, i, b)
			}
		}
	})
}
