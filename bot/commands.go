package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var minAmount = float64(1)

func fighterChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Fighter 1", Value: 1},
		{Name: "Fighter 2", Value: 2},
	}
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "createevent",
			Description: "Create a head-to-head event (authority only)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "fighter1", Description: "First fighter", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "odds1", Description: "American odds for the first fighter, e.g. 150 or -200", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "fighter2", Description: "Second fighter", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "odds2", Description: "American odds for the second fighter", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Event name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "YYYY-MM-DD or YYYY-MM-DD HH:MM (UTC)", Required: true},
			},
		},
		{
			Name:        "event",
			Description: "Show an event, the most recent one by default",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "id", Description: "Event id", MinValue: &minAmount},
			},
		},
		{
			Name:        "bet",
			Description: "Stake on a fighter",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "fighter", Description: "Fighter to back", Required: true, Choices: fighterChoices()},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount to stake", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "event", Description: "Event id, defaults to the most recent", MinValue: &minAmount},
			},
		},
		{
			Name:        "mybet",
			Description: "Show your position on an event",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "event", Description: "Event id, defaults to the most recent", MinValue: &minAmount},
			},
		},
		{
			Name:        "paywinners",
			Description: "Settle an event and pay winning positions (authority only)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "event", Description: "Event id", Required: true, MinValue: &minAmount},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "winner", Description: "Winning fighter", Required: true, Choices: fighterChoices()},
			},
		},
		{
			Name:        "deposit",
			Description: "Move value from your wallet into the ledger",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount to deposit", Required: true},
			},
		},
		{
			Name:        "balance",
			Description: "Show your wallet and the value held by the ledger",
		},
		{
			Name:        "ledger",
			Description: "Show the latest custody ledger entries",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "limit", Description: "Entries to show (default 20)", MinValue: &minAmount},
			},
		},
		{
			Name:        "payout",
			Description: "Preview what a stake pays at given odds",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "stake", Description: "Amount staked", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "odds", Description: "American odds", Required: true},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range commandDefinitions() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}
