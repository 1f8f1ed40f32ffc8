package betting

import (
	"context"
	"fmt"

	"mainevent/bot/common"
	"mainevent/models"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
)

// resolveEvent loads the event named by the "event" option, or the most recent one
func (f *Feature) resolveEvent(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*models.Event, error) {
	if opt, ok := opts["event"]; ok {
		return f.eventService.GetEvent(ctx, opt.IntValue())
	}
	return f.eventService.GetMostRecentEvent(ctx)
}

func (f *Feature) handleBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := common.OptionMap(i)

	event, err := f.resolveEvent(ctx, opts)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "place_bet", err)
		return
	}

	fighterID := int(opts["fighter"].IntValue())
	amount := opts["amount"].IntValue()

	total, err := f.betService.PlaceBet(ctx, event.ID, fighterID, amount, common.CallerID(i))
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "place_bet", err)
		return
	}

	fighter, _ := event.Fighter(fighterID)
	common.RespondWithSuccess(s, i, FormatBetConfirmation(event, fighter, amount, total), true)
}

func (f *Feature) handleMyBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := common.OptionMap(i)

	event, err := f.resolveEvent(ctx, opts)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "get_bet", err)
		return
	}

	bet, err := f.betService.GetBet(ctx, event.ID, common.CallerID(i))
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "get_bet", err)
		return
	}

	common.RespondWithSuccess(s, i, FormatPosition(event, bet), true)
}

func (f *Feature) handlePayout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	stake := opts["stake"].IntValue()
	odds := opts["odds"].IntValue()

	payout, err := service.CalculatePayout(stake, odds)
	if err != nil {
		common.RespondWithServiceError(s, i, f.recorder, "calculate_payout", err)
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("**%s** at %s pays **%s** (profit %s).",
		common.FormatBalance(stake), common.FormatOdds(odds),
		common.FormatBalance(payout), common.FormatBalance(payout-stake)), true)
}

// FormatBetConfirmation describes an accepted bet and what the position would pay
func FormatBetConfirmation(event *models.Event, fighter models.Fighter, amount, total int64) string {
	msg := fmt.Sprintf("Bet **%s** on **%s** (%s) in #%d %s. Your position: **%s**.",
		common.FormatBalance(amount), fighter.Name, common.FormatOdds(fighter.Odds),
		event.ID, event.EventName, common.FormatBalance(total))
	if payout, err := service.CalculatePayout(total, fighter.Odds); err == nil {
		msg += fmt.Sprintf(" Pays **%s** if %s wins.", common.FormatBalance(payout), fighter.Name)
	}
	return msg
}

// FormatPosition describes a bettor's position on an event
func FormatPosition(event *models.Event, bet *models.Bet) string {
	fighter, ok := event.Fighter(bet.FighterID)
	switch {
	case bet.HasPosition() && ok:
		return fmt.Sprintf("You have **%s** on **%s** (%s) in #%d %s.",
			common.FormatBalance(bet.Amount), fighter.Name, common.FormatOdds(fighter.Odds), event.ID, event.EventName)
	case event.IsSettled() && bet.Payout > 0 && ok:
		return fmt.Sprintf("You were paid **%s** for backing **%s** in #%d %s.",
			common.FormatBalance(bet.Payout), fighter.Name, event.ID, event.EventName)
	default:
		return fmt.Sprintf("You have no open position in #%d %s.", event.ID, event.EventName)
	}
}
