package settlement

import (
	"context"

	"mainevent/bot/common"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handlePayWinners(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := common.OptionMap(i)

	result, err := f.settlementService.PayWinners(ctx,
		opts["event"].IntValue(),
		int(opts["winner"].IntValue()),
		common.CallerID(i),
	)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "pay_winners", err)
		return
	}

	common.RespondWithEmbed(s, i, BuildSettlementEmbed(result), false)
}
