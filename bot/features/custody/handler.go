package custody

import (
	"context"
	"fmt"

	"mainevent/bot/common"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handleDeposit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	amount := common.OptionMap(i)["amount"].IntValue()

	if err := f.custodyService.Deposit(ctx, common.CallerID(i), amount); err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "deposit", err)
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Deposited **%s** into the ledger.", common.FormatBalance(amount)), true)
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	wallet, err := f.custodyService.WalletBalance(ctx, common.CallerID(i))
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "balance", err)
		return
	}
	held, err := f.custodyService.CustodyBalance(ctx)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "balance", err)
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Your wallet: **%s**. Held by the ledger: **%s**.",
		common.FormatBalance(wallet), common.FormatBalance(held)), true)
}

func (f *Feature) handleLedger(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	limit := 0
	if opt, ok := common.OptionMap(i)["limit"]; ok {
		limit = int(opt.IntValue())
	}

	entries, err := f.custodyService.CustodyHistory(ctx, limit)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "custody_history", err)
		return
	}

	common.RespondWithEmbed(s, i, BuildLedgerEmbed(entries), true)
}
