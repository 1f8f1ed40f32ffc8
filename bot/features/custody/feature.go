package custody

import (
	"mainevent/bot/common"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	custodyService service.CustodyService
	recorder       common.RejectionRecorder
}

func New(custodyService service.CustodyService, recorder common.RejectionRecorder) *Feature {
	return &Feature{
		custodyService: custodyService,
		recorder:       common.OrNop(recorder),
	}
}

func (f *Feature) HandleDeposit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleDeposit(s, i)
}

func (f *Feature) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}

func (f *Feature) HandleLedger(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLedger(s, i)
}
