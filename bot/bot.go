package bot

import (
	"log"
	"time"

	"anon-upload-bot/commands"
	"anon-upload-bot/model"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	Sessions           *model.SessionStore
	RegisteredCommands []*discordgo.ApplicationCommand
	janitorTicker      *time.Ticker
	done               chan struct{}
}

func (b *Bot) GetConfig() *model.Config {
	return b.Config
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetSessions() *model.SessionStore {
	return b.Sessions
}

func New(cfg *model.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	dg.StateEnabled = false

	return &Bot{
		Session:  dg,
		Config:   cfg,
		Sessions: model.NewSessionStore(),
		done:     make(chan struct{}),
	}, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	close(b.done)
	if b.janitorTicker != nil {
		b.janitorTicker.Stop()
	}
	b.Session.Close()
}

// RefreshCommands bulk-overwrites the guild's application commands with the
// current configuration.
func (b *Bot) RefreshCommands() {
	cmds := commands.GenerateCommands(b.Config)
	log.Printf("Registering %d commands for guild %s...", len(cmds), b.Config.GuildID)
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, b.Config.GuildID, cmds)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", b.Config.GuildID, err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registeredCmds...)
}

// startJanitor periodically drops expired modal sessions; a user who never
// submits the form leaves one behind.
func (b *Bot) startJanitor() {
	b.janitorTicker = time.NewTicker(5 * time.Minute)
	go func() {
		for {
			select {
			case <-b.janitorTicker.C:
				b.Sessions.Cleanup()
			case <-b.done:
				return
			}
		}
	}()
}
