package fightcard

import (
	"fmt"

	"mainevent/bot/common"
	"mainevent/models"

	"github.com/bwmarrin/discordgo"
)

const (
	colorOpen    = 0x3498db
	colorSettled = 0x2ecc71
)

// BuildEventEmbed renders an event card
func BuildEventEmbed(event *models.Event) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🥊 #%d %s", event.ID, event.EventName),
		Description: fmt.Sprintf("Starts %s", common.FormatDiscordTimestamp(event.EventDate, "F")),
		Color:       colorOpen,
		Fields: []*discordgo.MessageEmbedField{
			fighterField(event, event.Fighter1),
			fighterField(event, event.Fighter2),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Bet with /bet fighter:<1|2> amount:<n>",
		},
	}

	if event.IsSettled() {
		embed.Color = colorSettled
		embed.Footer.Text = "Settled"
		if winner, ok := event.Fighter(event.Winner); ok {
			embed.Description += fmt.Sprintf("\n🏆 Winner: **%s**", winner.Name)
		}
	}
	return embed
}

func fighterField(event *models.Event, fighter models.Fighter) *discordgo.MessageEmbedField {
	name := fmt.Sprintf("%d. %s", fighter.ID, fighter.Name)
	if event.Winner == fighter.ID {
		name += " 🏆"
	}
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  common.FormatOdds(fighter.Odds),
		Inline: true,
	}
}
