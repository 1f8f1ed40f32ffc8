package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RejectionRecorder counts failed operations
type RejectionRecorder interface {
	RecordRejection(operation string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRejection(string, error) {}

// OrNop returns r, or a recorder that drops everything when r is nil
func OrNop(r RejectionRecorder) RejectionRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// CallerID returns the Discord user id of whoever invoked the interaction
func CallerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// OptionMap indexes the top-level command options by name
func OptionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// RespondWithEmbed sends an embed as an interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Errorf("Error responding with embed: %v", err)
	}
}

// RespondWithSuccess sends a success message
func RespondWithSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, message string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Content: "✅ " + message,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Errorf("Error sending success message: %v", err)
	}
}

// RespondWithError sends an ephemeral error message
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error message: %v", err)
	}
}

// RespondWithServiceError records the failure and tells the caller what went wrong
func RespondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, recorder RejectionRecorder, operation string, err error) {
	recorder.RecordRejection(operation, err)
	if !IsUserFacing(err) {
		log.WithFields(log.Fields{
			"operation": operation,
			"caller":    CallerID(i),
			"error":     err,
		}).Error("Command failed")
	}
	RespondWithError(s, i, ErrorMessage(err))
}
