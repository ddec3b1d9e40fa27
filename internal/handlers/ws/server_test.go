package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/driftcase/rainpot/internal/ratelimit"
	"github.com/driftcase/rainpot/internal/services/broadcast"
	"github.com/driftcase/rainpot/internal/services/rain"
	rainMocks "github.com/driftcase/rainpot/internal/services/rain/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type serverSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRainService *rainMocks.MockService
	server          *Server
}

func (s *serverSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRainService = rainMocks.NewMockService(s.ctrl)

	limiter, err := ratelimit.New(&ratelimit.Config{
		MinDelays: map[string]time.Duration{
			ActionJoin:   time.Second,
			ActionTip:    2 * time.Second,
			ActionAddPot: 500 * time.Millisecond,
		},
	})
	s.Require().NoError(err)

	server, err := New(&Config{
		ListenAddr:  "127.0.0.1:0",
		RainService: s.mockRainService,
		Limiter:     limiter,
		AdminToken:  "secret",
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *serverSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(serverSuite))
}

func (s *serverSuite) newClient(userID string) *client {
	return &client{
		send:   make(chan []byte, 4),
		userID: userID,
	}
}

// lastReply decodes the most recent frame queued for the client
func (s *serverSuite) lastReply(c *client) (string, *rain.ResponsePayload) {
	select {
	case data := <-c.send:
		var frame struct {
			Event   string               `json:"event"`
			Payload rain.ResponsePayload `json:"payload"`
		}
		s.Require().NoError(json.Unmarshal(data, &frame))
		return frame.Event, &frame.Payload
	default:
		s.FailNow("no reply queued")
		return "", nil
	}
}

func (s *serverSuite) TestJoinActionRouted() {
	s.mockRainService.EXPECT().
		Join(gomock.Any(), &rain.JoinInput{UserID: "user-1"}).
		Return(&rain.JoinOutput{ParticipantsCount: 3}, nil)

	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`{"action":"join"}`))

	event, payload := s.lastReply(c)
	s.Equal(broadcast.EventRainResponse, event)
	s.True(payload.Status)
	s.Contains(payload.Message, "3 participants")
}

func (s *serverSuite) TestTipActionRouted() {
	s.mockRainService.EXPECT().
		Tip(gomock.Any(), &rain.TipInput{UserID: "user-1", Amount: 25}).
		Return(&rain.TipOutput{Pot: 125, Balance: 75}, nil)

	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`{"action":"tip","amount":25}`))

	_, payload := s.lastReply(c)
	s.True(payload.Status)
	s.Contains(payload.Message, "125.00")
}

func (s *serverSuite) TestEngineErrorsMappedToReplies() {
	s.mockRainService.EXPECT().
		Join(gomock.Any(), gomock.Any()).
		Return(nil, rain.ErrNotRaining)

	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`{"action":"join"}`))

	_, payload := s.lastReply(c)
	s.False(payload.Status)
	s.Equal(rain.ErrNotRaining.Error(), payload.Message)
}

func (s *serverSuite) TestRapidDuplicateActionRejected() {
	s.mockRainService.EXPECT().
		Join(gomock.Any(), gomock.Any()).
		Return(&rain.JoinOutput{ParticipantsCount: 1}, nil).
		Times(1)

	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`{"action":"join"}`))
	s.server.handleAction(c, []byte(`{"action":"join"}`))

	_, first := s.lastReply(c)
	s.True(first.Status)
	_, second := s.lastReply(c)
	s.False(second.Status)
	s.Equal("slow down", second.Message)
}

func (s *serverSuite) TestUnknownActionRejected() {
	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`{"action":"dance"}`))

	_, payload := s.lastReply(c)
	s.False(payload.Status)
	s.Contains(payload.Message, "unknown action")
}

func (s *serverSuite) TestMissingUserRejected() {
	c := s.newClient("")
	s.server.handleAction(c, []byte(`{"action":"join"}`))

	_, payload := s.lastReply(c)
	s.False(payload.Status)
	s.Equal("missing user id", payload.Message)
}

func (s *serverSuite) TestMalformedFrameRejected() {
	c := s.newClient("user-1")
	s.server.handleAction(c, []byte(`not json`))

	_, payload := s.lastReply(c)
	s.Equal("malformed message", payload.Message)
}

func (s *serverSuite) TestAdminStartEndpoint() {
	s.mockRainService.EXPECT().
		RequestStart(gomock.Any(), &rain.RequestStartInput{TriggeredBy: "admin-endpoint"}).
		Return(&rain.RequestStartOutput{Started: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/rain/start", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()

	s.server.handleAdminStart(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var output rain.RequestStartOutput
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &output))
	s.True(output.Started)
}

func (s *serverSuite) TestAdminStartRequiresToken() {
	req := httptest.NewRequest(http.MethodPost, "/admin/rain/start", nil)
	rec := httptest.NewRecorder()

	s.server.handleAdminStart(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *serverSuite) TestAdminStartRejectsGet() {
	req := httptest.NewRequest(http.MethodGet, "/admin/rain/start", nil)
	rec := httptest.NewRecorder()

	s.server.handleAdminStart(rec, req)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func (s *serverSuite) TestStatusEndpoint() {
	s.mockRainService.EXPECT().
		GetStatus(gomock.Any(), gomock.Any()).
		Return(&rain.GetStatusOutput{Status: &rain.StatusPayload{Pot: 42}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rain/status", nil)
	rec := httptest.NewRecorder()

	s.server.handleStatus(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"pot":42`)
}
