package betting

import (
	"mainevent/bot/common"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	eventService service.EventService
	betService   service.BetService
	recorder     common.RejectionRecorder
}

func New(eventService service.EventService, betService service.BetService, recorder common.RejectionRecorder) *Feature {
	return &Feature{
		eventService: eventService,
		betService:   betService,
		recorder:     common.OrNop(recorder),
	}
}

func (f *Feature) HandleBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBet(s, i)
}

func (f *Feature) HandleMyBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleMyBet(s, i)
}

func (f *Feature) HandlePayout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handlePayout(s, i)
}
