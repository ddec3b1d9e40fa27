package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/driftcase/rainpot/internal/logger"
	"github.com/driftcase/rainpot/internal/services/broadcast"
	"github.com/driftcase/rainpot/internal/services/rain"
	"go.uber.org/zap"
)

// Announcer posts rain milestones into a Discord channel. It implements
// broadcast.Sink, so the engine publishes through it like any other
// sink; events it does not announce are ignored.
type Announcer struct {
	session   *discordgo.Session
	channelID string
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is where announcements are posted
	ChannelID string
}

// New creates a new Discord announcer
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Announcer{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// Start opens the Discord connection
func (a *Announcer) Start() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	logger.Info("discord announcer connected",
		zap.String("channel_id", a.channelID))
	return nil
}

// Stop closes the Discord connection
func (a *Announcer) Stop() error {
	return a.session.Close()
}

// Deliver implements broadcast.Sink
func (a *Announcer) Deliver(event string, payload interface{}) {
	var embed *discordgo.MessageEmbed

	switch event {
	case broadcast.EventRainStarted:
		started, ok := payload.(*rain.StartedPayload)
		if !ok {
			return
		}
		embed = renderRainStarted(started)

	case broadcast.EventRainDistributed:
		distributed, ok := payload.(*rain.DistributedPayload)
		if !ok {
			return
		}
		embed = renderRainDistributed(distributed)

	default:
		return
	}

	// Posting must not block the engine; discordgo does its own HTTP
	// round trip here
	go func() {
		if _, err := a.session.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
			logger.Error("failed to post announcement",
				zap.String("event", event),
				zap.Error(err))
		}
	}()
}
