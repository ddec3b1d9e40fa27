package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/driftcase/rainpot/internal/logger"
	"github.com/driftcase/rainpot/internal/ratelimit"
	"github.com/driftcase/rainpot/internal/services/broadcast"
	"github.com/driftcase/rainpot/internal/services/rain"
	"go.uber.org/zap"
)

// Action kinds used as rate-limit keys
const (
	ActionJoin   = "join"
	ActionTip    = "tip"
	ActionAddPot = "add-pot"
)

// actionMessage is the inbound client frame
type actionMessage struct {
	Action string  `json:"action"`
	UserID string  `json:"userId"`
	Amount float64 `json:"amount,omitempty"`
}

// Config holds the configuration for the websocket server
type Config struct {
	// ListenAddr is the HTTP listen address
	ListenAddr string

	// RainService handles all rain operations
	RainService rain.Service

	// Limiter throttles client-triggered actions
	Limiter *ratelimit.Limiter

	// AdminToken guards the administrative trigger endpoint; empty
	// disables the check
	AdminToken string
}

// Server exposes the rain engine over websocket plus a small admin
// HTTP surface
type Server struct {
	config      *Config
	rainService rain.Service
	limiter     *ratelimit.Limiter
	hub         *Hub
	httpServer  *http.Server
}

// New creates a new websocket server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ListenAddr == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	if cfg.RainService == nil {
		return nil, errors.New("rain service cannot be nil")
	}

	if cfg.Limiter == nil {
		return nil, errors.New("limiter cannot be nil")
	}

	s := &Server{
		config:      cfg,
		rainService: cfg.RainService,
		limiter:     cfg.Limiter,
		hub:         newHub(),
	}
	s.hub.inbound = s.handleAction

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.handleWS)
	mux.HandleFunc("/admin/rain/start", s.handleAdminStart)
	mux.HandleFunc("/rain/status", s.handleStatus)
	mux.HandleFunc("/rain/history", s.handleHistory)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Hub returns the fan-out sink for the broadcaster
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start runs the hub and the HTTP listener
func (s *Server) Start() error {
	go s.hub.run()

	go func() {
		logger.Info("websocket server listening",
			zap.String("addr", s.config.ListenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("websocket server failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the listener and the hub
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.hub.stop()
	return err
}

// handleAction routes one inbound client frame
func (s *Server) handleAction(c *client, data []byte) {
	var msg actionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Message: "malformed message",
		})
		return
	}

	userID := msg.UserID
	if userID == "" {
		userID = c.userID
	}
	if userID == "" {
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Message: "missing user id",
		})
		return
	}

	if !s.limiter.IsAllowed(userID, msg.Action) {
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Message: "slow down",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch msg.Action {
	case ActionJoin:
		output, err := s.rainService.Join(ctx, &rain.JoinInput{UserID: userID})
		if err != nil {
			c.reply(broadcast.EventRainResponse, errorResponse(err))
			return
		}
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Status:  true,
			Message: fmt.Sprintf("joined the rain (%d participants)", output.ParticipantsCount),
		})

	case ActionTip:
		output, err := s.rainService.Tip(ctx, &rain.TipInput{UserID: userID, Amount: msg.Amount})
		if err != nil {
			c.reply(broadcast.EventRainResponse, errorResponse(err))
			return
		}
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Status:  true,
			Message: fmt.Sprintf("tipped %.2f, pot is now %.2f", msg.Amount, output.Pot),
		})

	case ActionAddPot:
		output, err := s.rainService.AdminAddPot(ctx, &rain.AdminAddPotInput{
			CallerID: userID,
			Amount:   msg.Amount,
		})
		if err != nil {
			c.reply(broadcast.EventRainResponse, errorResponse(err))
			return
		}
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Status:  true,
			Message: fmt.Sprintf("pot topped up to %.2f", output.Pot),
		})

	default:
		c.reply(broadcast.EventRainResponse, &rain.ResponsePayload{
			Message: fmt.Sprintf("unknown action: %s", msg.Action),
		})
	}
}

// errorResponse maps engine errors to user-facing reply text
func errorResponse(err error) *rain.ResponsePayload {
	var rainErr rain.RainError
	if errors.As(err, &rainErr) {
		return &rain.ResponsePayload{Message: rainErr.Error()}
	}

	logger.Error("action failed", zap.Error(err))
	return &rain.ResponsePayload{Message: "something went wrong"}
}

// handleAdminStart is the operator-facing trigger to force a rain
// outside the normal schedule
func (s *Server) handleAdminStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.config.AdminToken != "" && r.Header.Get("X-Admin-Token") != s.config.AdminToken {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	output, err := s.rainService.RequestStart(r.Context(), &rain.RequestStartInput{
		TriggeredBy: "admin-endpoint",
	})
	if err != nil {
		logger.Error("manual rain start failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, output)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	output, err := s.rainService.GetStatus(r.Context(), &rain.GetStatusInput{})
	if err != nil {
		logger.Error("status read failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, output.Status)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	output, err := s.rainService.GetHistory(r.Context(), &rain.GetHistoryInput{})
	if err != nil {
		logger.Error("history read failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, output.Records)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
