package commands

import (
	"anon-upload-bot/commands/defs"
	"anon-upload-bot/model"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands builds the application commands to register for the
// configured guild.
func GenerateCommands(cfg *model.Config) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Upload(cfg.ShareChannels),
	}
}
