package model

// ShareChannel maps a human-readable channel label (as shown in the slash
// command choices) to a channel ID.
type ShareChannel struct {
	Label string
	ID    string
}

// Config stores the application configuration. It is built once at startup
// and never mutated afterwards.
type Config struct {
	BotToken string
	GuildID  string

	// ShareChannels are the allowed destinations for anonymous posts, in
	// the order they appear as command choices.
	ShareChannels []ShareChannel

	// RequestChannelID is the channel holding upload-request messages that
	// fulfilled-request links point into.
	RequestChannelID string

	// CommandChannelID, when set, confines /upload to that single channel.
	CommandChannelID string

	// MarkerEmoji is the reaction name users place on a request message to
	// opt into being pinged when the request is fulfilled.
	MarkerEmoji string

	LogWebhookURL string
}

// ShareChannelID resolves a channel label to its ID.
func (c *Config) ShareChannelID(label string) (string, bool) {
	for _, ch := range c.ShareChannels {
		if ch.Label == label {
			return ch.ID, true
		}
	}
	return "", false
}
