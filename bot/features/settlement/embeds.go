package settlement

import (
	"fmt"
	"strings"

	"mainevent/bot/common"
	"mainevent/models"

	"github.com/bwmarrin/discordgo"
)

// maxListedWinners keeps the embed under Discord's field size limit
const maxListedWinners = 20

// BuildSettlementEmbed summarizes a settlement
func BuildSettlementEmbed(result *models.SettlementResult) *discordgo.MessageEmbed {
	winners := result.Winners()

	var sb strings.Builder
	for n, line := range winners {
		if n == maxListedWinners {
			fmt.Fprintf(&sb, "...and %d more", len(winners)-maxListedWinners)
			break
		}
		fmt.Fprintf(&sb, "<@%s> staked %s, paid **%s**\n",
			line.Bettor, common.FormatBalance(line.Stake), common.FormatBalance(line.Amount))
	}
	if len(winners) == 0 {
		sb.WriteString("No winning positions.")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Event #%d settled: fighter %d wins", result.EventID, result.WinningFighterID),
		Description: sb.String(),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Positions", Value: fmt.Sprintf("%d", len(result.Payouts)), Inline: true},
			{Name: "Winners", Value: fmt.Sprintf("%d", len(winners)), Inline: true},
			{Name: "Paid out", Value: common.FormatBalance(result.TotalDisbursed), Inline: true},
		},
	}
}
