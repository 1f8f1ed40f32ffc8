package fightcard

import (
	"context"
	"fmt"

	"mainevent/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleCreateEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := common.OptionMap(i)

	eventDate, err := common.ParseEventDate(opts["date"].StringValue())
	if err != nil {
		common.RespondWithError(s, i, err.Error())
		return
	}

	eventID, err := f.eventService.CreateEvent(ctx,
		opts["fighter1"].StringValue(), opts["odds1"].IntValue(),
		opts["fighter2"].StringValue(), opts["odds2"].IntValue(),
		opts["name"].StringValue(), eventDate,
		common.CallerID(i),
	)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "create_event", err)
		return
	}

	event, err := f.eventService.GetEvent(ctx, eventID)
	if err != nil {
		log.Errorf("Error loading event %d after creation: %v", eventID, err)
		common.RespondWithSuccess(s, i, fmt.Sprintf("Event #%d created.", eventID), false)
		return
	}
	common.RespondWithEmbed(s, i, BuildEventEmbed(event), false)
}

func (f *Feature) handleEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := common.OptionMap(i)

	var eventID int64
	if opt, ok := opts["id"]; ok {
		eventID = opt.IntValue()
	} else {
		recent, err := f.eventService.GetMostRecentEvent(ctx)
		if err != nil {
			common.RespondWithServiceError(s, i, f.recorder, "get_event", err)
			return
		}
		eventID = recent.ID
	}

	event, err := f.reader.GetEvent(ctx, eventID)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "get_event", err)
		return
	}
	common.RespondWithEmbed(s, i, BuildEventEmbed(event), false)
}
