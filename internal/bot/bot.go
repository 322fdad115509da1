package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/internal/discord"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// requestTimeout bounds the store calls made while answering one interaction
const requestTimeout = 10 * time.Second

// Bot serves a single blackjack table over Discord. The table belongs to the
// first user who runs /blackjack; every interaction is handled under mu
// because the game session is not safe for concurrent use.
type Bot struct {
	config   *config.Config
	session  discord.SessionHandler
	commands []*discordgo.ApplicationCommand
	store    storage.StatsStore
	logger   *logging.Logger
	gameOpts []blackjack.Option

	mu    sync.Mutex
	game  *blackjack.Session
	owner string

	shutdownWg sync.WaitGroup
}

// New creates a bot connected to Discord with cfg.Token. The store is owned
// by the caller.
func New(cfg *config.Config, store storage.StatsStore, logger *logging.Logger) (*Bot, error) {
	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return newBot(cfg, session, store, logger), nil
}

func newBot(cfg *config.Config, session discord.SessionHandler, store storage.StatsStore, logger *logging.Logger, opts ...blackjack.Option) *Bot {
	if logger == nil {
		logger = logging.Discard
	}

	b := &Bot{
		config:   cfg,
		session:  session,
		commands: make([]*discordgo.ApplicationCommand, 0),
		store:    store,
		logger:   logger,
		gameOpts: append([]blackjack.Option{blackjack.WithLogger(logger)}, opts...),
	}

	session.AddHandler(b.handleInteractionCreate)

	return b
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Shutdown removes the commands in development and closes the connection
func (b *Bot) Shutdown() {
	if b.config.IsDevelopment() {
		if err := b.cleanupCommands(); err != nil {
			b.logger.Warn("Failed to clean up commands: %v", err)
		}
	}

	if err := b.session.Close(); err != nil {
		b.logger.Error("Error closing Discord session: %v", err)
	}

	// Wait for any ongoing interactions to complete
	b.shutdownWg.Wait()
}

func (b *Bot) registerCommands() error {
	for _, cmd := range Commands {
		registered, err := b.session.ApplicationCommandCreate(b.config.AppID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create command %s: %w", cmd.Name, err)
		}
		b.commands = append(b.commands, registered)
		b.logger.Info("Registered command /%s", cmd.Name)
	}
	return nil
}

func (b *Bot) cleanupCommands() error {
	commands, err := b.session.ApplicationCommands(b.config.AppID, b.config.GuildID)
	if err != nil {
		return fmt.Errorf("failed to list commands: %w", err)
	}

	for _, cmd := range commands {
		if err := b.session.ApplicationCommandDelete(b.config.AppID, b.config.GuildID, cmd.ID); err != nil {
			return fmt.Errorf("failed to delete command %s: %w", cmd.Name, err)
		}
	}
	return nil
}

// handleInteractionCreate is registered with discordgo, which needs the
// concrete session type in the signature
func (b *Bot) handleInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handleInteraction(i)
}

func (b *Bot) handleInteraction(i *discordgo.InteractionCreate) {
	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleSlashCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		b.handleButton(ctx, i)
	}
}
