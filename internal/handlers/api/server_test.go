package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/models"
	"github.com/KirkDiggler/fitna/internal/services/game"
	gameMocks "github.com/KirkDiggler/fitna/internal/services/game/mocks"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	hasanID    = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
)

type APITestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGame *gameMocks.MockService
	server   *Server
	cookies  []*http.Cookie

	room   *models.Room
	sophie *models.Player
	hasan  *models.Player
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)

	server, err := New(&Config{
		GameService:    s.mockGame,
		Logger:         zap.NewNop().Sugar(),
		SessionSecret:  testSecret,
		PublicURL:      "https://fitna.example/",
		AllowedOrigins: []string{"https://fitna.example"},
	})
	s.Require().NoError(err)
	s.server = server
	s.cookies = nil

	s.sophie = &models.Player{ID: "p-sophie", RoomID: "room-1", RealName: "Sophie", Pseudo: "Queen"}
	s.hasan = &models.Player{ID: hasanID, RoomID: "room-1", RealName: "Hasan", Pseudo: "Shadow"}
	s.room = &models.Room{
		ID:             "room-1",
		Code:           "AB12CD",
		OwnerID:        s.sophie.ID,
		OwnerName:      "Sophie",
		OwnerPseudo:    "Queen",
		AvailableNames: []string{"Amina"},
		Players:        []*models.Player{s.sophie, s.hasan},
		Phase:          models.PhaseWaiting,
		Timer:          60,
	}
}

func (s *APITestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// do sends a request carrying the cookies of the previous responses
func (s *APITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		s.cookies = cookies
	}
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// login creates a room as Sophie so later requests carry her session
func (s *APITestSuite) login() {
	s.mockGame.EXPECT().
		CreateRoom(gomock.Any(), gomock.Any()).
		Return(&game.CreateRoomOutput{
			Code:    s.room.Code,
			Session: &game.Session{RoomID: s.room.ID, PlayerID: s.sophie.ID},
			Room:    s.room,
		}, nil)

	w := s.do(http.MethodPost, "/rooms", createRoomRequest{
		RealName:       "Sophie",
		Pseudo:         "Queen",
		AvailableNames: []string{"Hasan", "Amina"},
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Require().NotEmpty(s.cookies)
}

func (s *APITestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", s.decode(w)["status"])
}

func (s *APITestSuite) TestCreateRoom() {
	s.mockGame.EXPECT().
		CreateRoom(gomock.Any(), &game.CreateRoomInput{
			OwnerRealName:  "Sophie",
			OwnerPseudo:    "Queen",
			AvailableNames: []string{"Hasan", "Amina"},
		}).
		Return(&game.CreateRoomOutput{
			Code:    s.room.Code,
			Session: &game.Session{RoomID: s.room.ID, PlayerID: s.sophie.ID},
			Room:    s.room,
		}, nil)

	w := s.do(http.MethodPost, "/rooms", createRoomRequest{
		RealName:       "Sophie",
		Pseudo:         "Queen",
		AvailableNames: []string{"Hasan", "Amina"},
	})

	s.Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	s.Equal("AB12CD", body["code"])
	s.Equal(s.sophie.ID, body["player_id"])

	room := body["room"].(map[string]any)
	s.Equal("waiting", room["phase"])
	me := room["me"].(map[string]any)
	s.Equal("Sophie", me["real_name"])
	s.Equal([]any{"Hasan"}, room["question_targets"])
	s.NotEmpty(s.cookies)
}

func (s *APITestSuite) TestRoomViewHidesOtherRealNames() {
	s.login()

	s.mockGame.EXPECT().
		LoadRoom(gomock.Any(), &game.LoadRoomInput{RoomID: s.room.ID}).
		Return(&game.LoadRoomOutput{Room: s.room}, nil)

	w := s.do(http.MethodGet, "/room", nil)

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), `"real_name":"Hasan"`)
	s.Contains(w.Body.String(), `"pseudo":"Shadow"`)
}

func (s *APITestSuite) TestGetRoomFresh() {
	s.login()

	s.mockGame.EXPECT().
		LoadRoom(gomock.Any(), &game.LoadRoomInput{RoomID: s.room.ID, Fresh: true}).
		Return(&game.LoadRoomOutput{Room: s.room}, nil)

	w := s.do(http.MethodGet, "/room?fresh=true", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestGetRoomForStrangerClearsSession() {
	s.login()

	stranger := *s.room
	stranger.Players = []*models.Player{s.hasan}
	s.mockGame.EXPECT().
		LoadRoom(gomock.Any(), gomock.Any()).
		Return(&game.LoadRoomOutput{Room: &stranger}, nil)

	w := s.do(http.MethodGet, "/room", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/room", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestRoomRoutesRequireSession() {
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/room"},
		{http.MethodPost, "/room/start"},
		{http.MethodPost, "/room/draw"},
		{http.MethodPost, "/room/denounce"},
		{http.MethodGet, "/room/ranking"},
		{http.MethodDelete, "/room"},
	} {
		w := s.do(route.method, route.path, nil)
		s.Equal(http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func (s *APITestSuite) TestJoinRoom() {
	s.mockGame.EXPECT().
		JoinRoom(gomock.Any(), &game.JoinRoomInput{Code: "ab12cd", RealName: "Hasan", Pseudo: "Shadow"}).
		Return(&game.JoinRoomOutput{
			Session: &game.Session{RoomID: s.room.ID, PlayerID: s.hasan.ID},
			Room:    s.room,
		}, nil)

	w := s.do(http.MethodPost, "/rooms/ab12cd/players", joinRoomRequest{RealName: "Hasan", Pseudo: "Shadow"})

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(s.hasan.ID, s.decode(w)["player_id"])
	s.NotEmpty(s.cookies)
}

func (s *APITestSuite) TestJoinRoomErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		result string
	}{
		{"unknown code", fmt.Errorf("%w: room %q", game.ErrNotFound, "ZZZZZZ"), http.StatusNotFound, "not_found"},
		{"name taken", fmt.Errorf("%w: name taken", game.ErrValidation), http.StatusUnprocessableEntity, "validation_failed"},
		{"store down", fmt.Errorf("%w: get room: boom", game.ErrPersistence), http.StatusInternalServerError, "persistence_failed"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockGame.EXPECT().JoinRoom(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := s.do(http.MethodPost, "/rooms/ZZZZZZ/players", joinRoomRequest{RealName: "Hasan", Pseudo: "Shadow"})

			s.Equal(tt.status, w.Code)
			s.Equal(tt.result, s.decode(w)["result"])
		})
	}
}

func (s *APITestSuite) TestPersistenceErrorsAreNotLeaked() {
	s.mockGame.EXPECT().
		CreateRoom(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: save room: dial tcp 10.0.0.1:6379", game.ErrPersistence))

	w := s.do(http.MethodPost, "/rooms", createRoomRequest{RealName: "Sophie", Pseudo: "Queen"})

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "10.0.0.1")
}

func (s *APITestSuite) TestMalformedBody() {
	w := s.do(http.MethodPost, "/rooms", "{not json")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestSubmitQuestions() {
	s.login()

	s.mockGame.EXPECT().
		SubmitQuestions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.SubmitQuestionsInput) (*game.SubmitQuestionsOutput, error) {
			s.Equal(&game.Session{RoomID: s.room.ID, PlayerID: s.sophie.ID}, input.Session)
			s.Equal([]string{"Qui ronfle le plus ?"}, input.Texts)
			return &game.SubmitQuestionsOutput{Room: s.room}, nil
		})

	w := s.do(http.MethodPost, "/room/questions", submitQuestionsRequest{Texts: []string{"Qui ronfle le plus ?"}})
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestStartGameNotReady() {
	s.login()

	s.mockGame.EXPECT().
		StartGame(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: not everyone submitted", game.ErrValidation))

	w := s.do(http.MethodPost, "/room/start", nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *APITestSuite) TestDrawCard() {
	s.login()

	question := &models.Question{ID: "q-1", RoomID: s.room.ID, Text: "Qui ment le mieux ?", TargetName: "Hasan"}
	playing := *s.room
	playing.Phase = models.PhasePlaying
	playing.Questions = []*models.Question{question, {ID: "q-2", TargetName: "Sophie"}}
	playing.DrawnQuestionIDs = []string{"q-1"}
	playing.CurrentQuestionID = "q-1"
	playing.QuestionCursor = 1

	s.mockGame.EXPECT().
		DrawCard(gomock.Any(), gomock.Any()).
		Return(&game.DrawCardOutput{Question: question, Room: &playing}, nil)

	w := s.do(http.MethodPost, "/room/draw", nil)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Qui ment le mieux ?", body["question"].(map[string]any)["text"])
	s.Equal(float64(1), body["remaining"])
}

func (s *APITestSuite) TestDrawCardWhenNoneLeft() {
	s.login()

	s.mockGame.EXPECT().
		DrawCard(gomock.Any(), gomock.Any()).
		Return(&game.DrawCardOutput{Room: s.room}, nil)

	w := s.do(http.MethodPost, "/room/draw", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Nil(s.decode(w)["question"])
}

func (s *APITestSuite) TestDenounce() {
	s.login()

	s.mockGame.EXPECT().
		Denounce(gomock.Any(), gomock.Any()).
		Return(&game.DenounceOutput{Points: 10, Room: s.room}, nil)

	w := s.do(http.MethodPost, "/room/denounce", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(10), s.decode(w)["points"])
}

func (s *APITestSuite) TestAddPoints() {
	s.login()

	s.mockGame.EXPECT().
		AddPoints(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.AddPointsInput) (*game.AddPointsOutput, error) {
			s.Equal(s.hasan.ID, input.PlayerID)
			s.Equal(5, input.Points)
			return &game.AddPointsOutput{Points: 5, Room: s.room}, nil
		})

	w := s.do(http.MethodPost, "/room/players/"+hasanID+"/points", addPointsRequest{Points: 5})

	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(5), s.decode(w)["points"])
}

func (s *APITestSuite) TestAddPointsUnknownPlayerID() {
	s.login()

	w := s.do(http.MethodPost, "/room/players/nobody/points", addPointsRequest{Points: 5})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestEndGameReturnsRanking() {
	s.login()

	finished := *s.room
	finished.Phase = models.PhaseFinished
	s.hasan.Points = 20
	s.mockGame.EXPECT().
		EndGame(gomock.Any(), gomock.Any()).
		Return(&game.EndGameOutput{
			Room:    &finished,
			Ranking: models.Ranking(finished.Players),
		}, nil)

	w := s.do(http.MethodPost, "/room/end", nil)

	s.Equal(http.StatusOK, w.Code)
	ranking := s.decode(w)["ranking"].([]any)
	s.Require().Len(ranking, 2)
	first := ranking[0].(map[string]any)
	s.Equal("Shadow", first["pseudo"])
	s.Equal(float64(1), first["rank"])
}

func (s *APITestSuite) TestGetRanking() {
	s.login()

	s.mockGame.EXPECT().
		GetRanking(gomock.Any(), gomock.Any()).
		Return(&game.GetRankingOutput{Room: s.room, Ranking: models.Ranking(s.room.Players)}, nil)

	w := s.do(http.MethodGet, "/room/ranking", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("waiting", s.decode(w)["phase"])
}

func (s *APITestSuite) TestLeaveRoomClearsSession() {
	s.login()

	s.mockGame.EXPECT().
		LeaveRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.LeaveRoomInput) (*game.LeaveRoomOutput, error) {
			roomID := input.Session.RoomID
			input.Session.Clear()
			return &game.LeaveRoomOutput{RoomID: roomID}, nil
		})

	w := s.do(http.MethodDelete, "/room", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(s.room.ID, s.decode(w)["room_id"])

	w = s.do(http.MethodGet, "/room", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestRoomQR() {
	w := s.do(http.MethodGet, "/rooms/ab12cd/qr", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.True(bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func (s *APITestSuite) TestRoomQRRejectsMalformedCode() {
	w := s.do(http.MethodGet, "/rooms/abc/qr", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestJoinURL() {
	server, err := New(&Config{
		GameService:   s.mockGame,
		Logger:        zap.NewNop().Sugar(),
		SessionSecret: testSecret,
	})
	s.Require().NoError(err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/rooms/AB12CD/qr", nil)
	c.Request.Host = "party.local:8080"
	c.Request.Header.Set("X-Forwarded-Proto", "https")

	s.Equal("https://party.local:8080/join/AB12CD", server.joinURL(c, "AB12CD"))
	s.Equal("https://fitna.example/join/AB12CD", s.server.joinURL(c, "AB12CD"))
}

func (s *APITestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/rooms", nil)
	req.Header.Set("Origin", "https://fitna.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(w, req)

	s.Equal("https://fitna.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := gameMocks.NewMockService(ctrl)
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"no service", &Config{Logger: logger, SessionSecret: testSecret}},
		{"no logger", &Config{GameService: svc, SessionSecret: testSecret}},
		{"no secret", &Config{GameService: svc, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
