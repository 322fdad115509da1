package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/tucojack/internal/discord"
	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/render"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// handleSlashCommand handles all slash commands
func (b *Bot) handleSlashCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	var err error
	switch name {
	case CommandBlackjack:
		err = b.handleBlackjack(ctx, i)
	case CommandStats:
		err = b.handleStats(ctx, i)
	default:
		err = types.NewGameError(types.ErrInvalidCommand, fmt.Sprintf("Unknown command: %s", name))
	}

	b.respondError(i, err)
}

// handleButton handles the Hit and Stand buttons
func (b *Bot) handleButton(ctx context.Context, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var err error
	switch {
	case customID == ButtonHit || customID == ButtonStand:
		err = b.handlePlay(ctx, i, customID)
	case strings.HasPrefix(customID, "blackjack_"):
		err = types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("Unknown blackjack action: %s", strings.TrimPrefix(customID, "blackjack_")))
	default:
		err = types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("Unknown component interaction: %s", customID))
	}

	b.respondError(i, err)
}

// handleBlackjack opens the table for the first caller and shows it again to its owner
func (b *Bot) handleBlackjack(ctx context.Context, i *discordgo.InteractionCreate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	userID := interactionUserID(i)
	if b.game == nil {
		game, err := blackjack.NewSession(ctx, b.store, b.gameOpts...)
		if err != nil {
			return err
		}
		b.game = game
		b.owner = userID
		b.logger.Info("Table opened by %s", userID)
	} else if err := b.checkOwner(userID); err != nil {
		return err
	}

	if b.game.State() != blackjack.StateRoundActive {
		if err := b.game.NewRound(); err != nil {
			return err
		}
	}

	return discord.SendResponse(b.session, i, discord.NewResponse(tableContent(b.game.Snapshot()), gameButtons()))
}

// handleStats shows the record, reading it from the store when no table is open
func (b *Bot) handleStats(ctx context.Context, i *discordgo.InteractionCreate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.game != nil {
		return discord.SendResponse(b.session, i, discord.NewResponse(render.StatsLine(b.game.Stats()), nil))
	}

	stats, status, err := storage.LoadStats(ctx, b.store)
	if status == storage.StatusFailed {
		return types.WrapError(types.ErrStatsReadFailed, "The win/loss record could not be read", err)
	}
	if err != nil {
		b.logger.Warn("Ignoring saved stats (%s): %v", status, err)
	}
	return discord.SendResponse(b.session, i, discord.NewResponse(render.StatsLine(stats), nil))
}

// handlePlay applies Hit or Stand for the table owner and redraws the message
func (b *Bot) handlePlay(ctx context.Context, i *discordgo.InteractionCreate, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.game == nil {
		return types.NewGameError(types.ErrGameNotFound, "No table is open. Use /blackjack to sit down")
	}
	if err := b.checkOwner(interactionUserID(i)); err != nil {
		return err
	}

	var result *blackjack.RoundResult
	var err error
	if action == ButtonHit {
		result, err = b.game.Hit(ctx)
	} else {
		result, err = b.game.Stand(ctx)
	}

	var content strings.Builder
	if result != nil {
		content.WriteString(resultContent(result))
		content.WriteString("\n\nNext round:\n")
	}
	if err != nil {
		// The round was voided or could not be dealt; show why above the table
		if result == nil && !types.IsGameError(err, types.ErrDeckExhausted) {
			return err
		}
		content.WriteString(discord.NewErrorResponse(err).Content)
		content.WriteString("\n")
	}
	if b.game.State() != blackjack.StateRoundActive {
		if err := b.game.NewRound(); err != nil {
			return err
		}
	}
	content.WriteString(tableContent(b.game.Snapshot()))

	return discord.UpdateResponse(b.session, i, discord.NewResponse(content.String(), gameButtons()))
}

func (b *Bot) checkOwner(userID string) error {
	if userID != b.owner {
		return types.NewGameError(types.ErrNotGameCreator, "Only the player who opened the table can play at it")
	}
	return nil
}

// respondError sends err back to the user as an ephemeral message
func (b *Bot) respondError(i *discordgo.InteractionCreate, err error) {
	if err == nil {
		return
	}
	b.logger.LogError(err)
	if sendErr := discord.SendErrorResponse(b.session, i, err); sendErr != nil {
		b.logger.Error("Failed to send error response: %v", sendErr)
	}
}

// tableContent renders the table with the dealer's first card hidden
func tableContent(table blackjack.Snapshot) string {
	return discord.CodeBlock(render.Table(table, false))
}

// resultContent renders a finished round with both hands revealed
func resultContent(result *blackjack.RoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", result.Message)
	b.WriteString(discord.CodeBlock(render.Table(result.Table, true)))
	if result.SaveErr != nil {
		b.WriteString("\n")
		b.WriteString(discord.NewErrorResponse(result.SaveErr).Content)
	}
	return b.String()
}

// interactionUserID returns the invoking user in guilds and in DMs
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
