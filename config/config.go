package config

import (
	"fmt"
	"log"

	"anon-upload-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// shareChannelEnv lists the destination channels in the order they are
// offered as command choices.
var shareChannelEnv = []struct {
	Label string
	Key   string
}{
	{"#upload-sharing", "UPLOAD_SHARING_CHANNEL_ID"},
	{"#ost-sharing", "OST_SHARING_CHANNEL_ID"},
	{"#misc-sharing", "MISC_SHARING_CHANNEL_ID"},
}

// Load reads the configuration from the environment, after merging in a
// .env file when one is present.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("MARKER_EMOJI", "pingme")

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	guildID := viper.GetString("GUILD_ID")
	if guildID == "" {
		return nil, fmt.Errorf("GUILD_ID environment variable not set")
	}

	var shareChannels []model.ShareChannel
	for _, ch := range shareChannelEnv {
		id := viper.GetString(ch.Key)
		if id == "" {
			return nil, fmt.Errorf("%s environment variable not set", ch.Key)
		}
		shareChannels = append(shareChannels, model.ShareChannel{Label: ch.Label, ID: id})
	}

	requestChannelID := viper.GetString("UPLOAD_REQUEST_CHANNEL_ID")
	if requestChannelID == "" {
		return nil, fmt.Errorf("UPLOAD_REQUEST_CHANNEL_ID environment variable not set")
	}

	commandChannelID := viper.GetString("UPLOAD_COMMAND_CHANNEL_ID")
	if commandChannelID == "" {
		log.Println("Info: UPLOAD_COMMAND_CHANNEL_ID not set, /upload is usable in any channel")
	}

	logWebhookURL := viper.GetString("LOG_WEBHOOK_URL")
	if logWebhookURL == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, webhook logging will be disabled")
	}

	return &model.Config{
		BotToken:         token,
		GuildID:          guildID,
		ShareChannels:    shareChannels,
		RequestChannelID: requestChannelID,
		CommandChannelID: commandChannelID,
		MarkerEmoji:      viper.GetString("MARKER_EMOJI"),
		LogWebhookURL:    logWebhookURL,
	}, nil
}
