package settlement

import (
	"mainevent/bot/common"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	settlementService service.SettlementService
	recorder          common.RejectionRecorder
}

func New(settlementService service.SettlementService, recorder common.RejectionRecorder) *Feature {
	return &Feature{
		settlementService: settlementService,
		recorder:          common.OrNop(recorder),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handlePayWinners(s, i)
}
