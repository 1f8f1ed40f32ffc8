package fightcard

import (
	"context"

	"mainevent/bot/common"
	"mainevent/models"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
)

// EventReader loads an event by id, possibly through a cache
type EventReader interface {
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
}

type Feature struct {
	eventService service.EventService
	reader       EventReader
	recorder     common.RejectionRecorder
}

// New creates the events feature. reader may be nil to read straight from eventService.
func New(eventService service.EventService, reader EventReader, recorder common.RejectionRecorder) *Feature {
	if reader == nil {
		reader = eventService
	}
	return &Feature{
		eventService: eventService,
		reader:       reader,
		recorder:     common.OrNop(recorder),
	}
}

func (f *Feature) HandleCreateEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleCreateEvent(s, i)
}

func (f *Feature) HandleEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleEvent(s, i)
}
