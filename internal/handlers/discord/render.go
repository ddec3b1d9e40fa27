package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/driftcase/rainpot/internal/services/rain"
)

const embedColor = 0x00bfff

// renderRainStarted builds the join-window announcement embed
func renderRainStarted(payload *rain.StartedPayload) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "It's Raining! 🌧️",
		Description: "A rain has started! Join now to get your share of the pot.",
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Pot",
				Value:  fmt.Sprintf("%.2f", payload.Pot),
				Inline: true,
			},
			{
				Name:   "Closes In",
				Value:  fmt.Sprintf("%d seconds", payload.Duration),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// renderRainDistributed builds the payout announcement embed
func renderRainDistributed(payload *rain.DistributedPayload) *discordgo.MessageEmbed {
	winners := ""
	for _, winner := range payload.Winners {
		winners += fmt.Sprintf("**%s**: %.2f\n", winner.Username, winner.Amount)
	}
	if winners == "" {
		winners = "Nobody qualified this time."
	}

	return &discordgo.MessageEmbed{
		Title:       "Rain Distributed 💸",
		Description: fmt.Sprintf("A pot of %.2f was split between %d participants.", payload.Pot, payload.EligibleParticipants),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Winners",
				Value:  winners,
				Inline: false,
			},
			{
				Name:   "Joined",
				Value:  fmt.Sprintf("%d", payload.TotalParticipants),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
