package custody

import (
	"fmt"
	"strings"

	"mainevent/bot/common"
	"mainevent/models"

	"github.com/bwmarrin/discordgo"
)

// BuildLedgerEmbed lists custody entries, newest first
func BuildLedgerEmbed(entries []*models.CustodyEntry) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, entry := range entries {
		sign := "+"
		if entry.Amount < 0 {
			sign = ""
		}
		fmt.Fprintf(&sb, "`%s%s` %s <@%s>", sign, common.FormatBalance(entry.Amount), entry.Kind, entry.Identity)
		if entry.EventID != 0 {
			fmt.Fprintf(&sb, " on #%d", entry.EventID)
		}
		sb.WriteString("\n")
	}
	if len(entries) == 0 {
		sb.WriteString("The ledger is empty.")
	}

	return &discordgo.MessageEmbed{
		Title:       "📒 Custody ledger",
		Description: sb.String(),
		Color:       0x95a5a6,
	}
}
