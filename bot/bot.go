package bot

import (
	"context"
	"fmt"

	"mainevent/bot/common"
	"mainevent/bot/features/betting"
	"mainevent/bot/features/custody"
	"mainevent/bot/features/fightcard"
	"mainevent/bot/features/settlement"
	"mainevent/events"
	"mainevent/models"
	"mainevent/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token             string
	GuildID           string
	AnnounceChannelID string
}

// Services are the ledger operations exposed as commands
type Services struct {
	Events     service.EventService
	Bets       service.BetService
	Settlement service.SettlementService
	Custody    service.CustodyService
}

type Bot struct {
	config  Config
	session *discordgo.Session

	fightcardFeature  *fightcard.Feature
	bettingFeature    *betting.Feature
	settlementFeature *settlement.Feature
	custodyFeature    *custody.Feature
}

// New connects to Discord and registers the slash commands.
// reader serves /event and may be nil. recorder may be nil.
func New(config Config, services Services, reader fightcard.EventReader, recorder common.RejectionRecorder, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:            config,
		session:           dg,
		fightcardFeature:  fightcard.New(services.Events, reader, recorder),
		bettingFeature:    betting.New(services.Events, services.Bets, recorder),
		settlementFeature: settlement.New(services.Settlement, recorder),
		custodyFeature:    custody.New(services.Custody, recorder),
	}

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	if config.AnnounceChannelID != "" {
		eventBus.Subscribe(events.EventTypeEventCreated, bot.announce)
		eventBus.Subscribe(events.EventTypeWinnersPaid, bot.announce)
		log.WithField("channel", config.AnnounceChannelID).Info("Announcements enabled")
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "createevent":
		b.fightcardFeature.HandleCreateEvent(s, i)
	case "event":
		b.fightcardFeature.HandleEvent(s, i)
	case "bet":
		b.bettingFeature.HandleBet(s, i)
	case "mybet":
		b.bettingFeature.HandleMyBet(s, i)
	case "payout":
		b.bettingFeature.HandlePayout(s, i)
	case "paywinners":
		b.settlementFeature.HandleCommand(s, i)
	case "deposit":
		b.custodyFeature.HandleDeposit(s, i)
	case "balance":
		b.custodyFeature.HandleBalance(s, i)
	case "ledger":
		b.custodyFeature.HandleLedger(s, i)
	}
}

func (b *Bot) announce(ctx context.Context, event events.Event) {
	embed := announcementFor(event)
	if embed == nil {
		return
	}
	if _, err := b.session.ChannelMessageSendEmbed(b.config.AnnounceChannelID, embed); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Error("Failed to post announcement")
	}
}

// announcementFor builds the channel post for an event, nil if it is not announced
func announcementFor(event events.Event) *discordgo.MessageEmbed {
	switch e := event.(type) {
	case events.EventCreatedEvent:
		return fightcard.BuildEventEmbed(&models.Event{
			ID:        e.EventID,
			EventName: e.EventName,
			EventDate: e.EventDate,
			Fighter1:  e.Fighter1,
			Fighter2:  e.Fighter2,
			CreatedBy: e.CreatedBy,
		})
	case events.WinnersPaidEvent:
		return settlement.BuildSettlementEmbed(&models.SettlementResult{
			EventID:          e.EventID,
			WinningFighterID: e.WinningFighterID,
			Payouts:          e.Payouts,
			TotalDisbursed:   e.TotalDisbursed,
		})
	default:
		return nil
	}
}
