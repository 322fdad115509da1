package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command names
const (
	CommandBlackjack = "blackjack"
	CommandStats     = "blackjackstats"
)

// Button custom IDs
const (
	ButtonHit   = "blackjack_hit"
	ButtonStand = "blackjack_stand"
)

// Commands defines all slash commands for the bot
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        CommandBlackjack,
		Description: "Sit down at the blackjack table",
	},
	{
		Name:        CommandStats,
		Description: "Show the table's win/loss record",
	},
}

// gameButtons are the Hit and Stand controls under the table
func gameButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonHit,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonStand,
				},
			},
		},
	}
}
