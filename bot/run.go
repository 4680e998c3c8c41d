package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"anon-upload-bot/model"
	"anon-upload-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.verifySetup()
	b.RefreshCommands()
	b.startJanitor()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if err := utils.LogInfo(b.Config.LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
		log.Printf("Failed to send startup log: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// setupFetcher is the slice of discordgo.Session that startup verification
// needs.
type setupFetcher interface {
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildEmojis(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Emoji, error)
}

// verifySetup checks that the configured guild, channels and marker emoji
// actually exist. Misconfiguration is reported, not fatal: the command
// surface degrades the same way a deleted channel would at runtime.
func (b *Bot) verifySetup() {
	for _, warning := range setupWarnings(b.Session, b.Config) {
		log.Printf("Warning: %s", warning)
		if err := utils.LogWarn(b.Config.LogWebhookURL, "System", "Startup", warning); err != nil {
			log.Printf("Failed to send startup warning log: %v", err)
		}
	}
}

func setupWarnings(f setupFetcher, cfg *model.Config) []string {
	var warnings []string

	guild, err := f.Guild(cfg.GuildID)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("could not fetch guild %s: %v", cfg.GuildID, err))
	} else {
		log.Printf("Server: %s", guild.Name)
	}

	channels := append([]string{cfg.RequestChannelID}, channelIDs(cfg)...)
	for _, channelID := range channels {
		if _, err := f.Channel(channelID); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not resolve channel %s: %v", channelID, err))
		}
	}

	emojis, err := f.GuildEmojis(cfg.GuildID)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("could not list guild emojis: %v", err))
		return warnings
	}
	for _, emoji := range emojis {
		if emoji.Name == cfg.MarkerEmoji {
			log.Printf("...Found :%s:", cfg.MarkerEmoji)
			return warnings
		}
	}
	return append(warnings, fmt.Sprintf("marker emoji %q not found in guild, mention resolution will never match", cfg.MarkerEmoji))
}

func channelIDs(cfg *model.Config) []string {
	ids := make([]string, 0, len(cfg.ShareChannels))
	for _, ch := range cfg.ShareChannels {
		ids = append(ids, ch.ID)
	}
	return ids
}
