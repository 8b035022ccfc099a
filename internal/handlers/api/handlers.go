package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/KirkDiggler/fitna/internal/common/roomcode"
	"github.com/KirkDiggler/fitna/internal/common/uuid"
	"github.com/KirkDiggler/fitna/internal/logging"
	"github.com/KirkDiggler/fitna/internal/services/game"
)

type createRoomRequest struct {
	RealName       string   `json:"real_name"`
	Pseudo         string   `json:"pseudo"`
	AvailableNames []string `json:"available_names"`
}

type joinRoomRequest struct {
	RealName string `json:"real_name"`
	Pseudo   string `json:"pseudo"`
}

type submitQuestionsRequest struct {
	Texts []string `json:"texts"`
}

type addPointsRequest struct {
	Points int `json:"points"`
}

func (s *Server) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := s.gameService.CreateRoom(c.Request.Context(), &game.CreateRoomInput{
		OwnerRealName:  req.RealName,
		OwnerPseudo:    req.Pseudo,
		AvailableNames: req.AvailableNames,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if err := saveSession(c, out.Session); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":      out.Code,
		"player_id": out.Session.PlayerID,
		"room":      newRoomView(out.Room, out.Session.PlayerID),
	})
}

func (s *Server) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := s.gameService.JoinRoom(c.Request.Context(), &game.JoinRoomInput{
		Code:     c.Param("code"),
		RealName: req.RealName,
		Pseudo:   req.Pseudo,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if err := saveSession(c, out.Session); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"player_id": out.Session.PlayerID,
		"room":      newRoomView(out.Room, out.Session.PlayerID),
	})
}

// roomQR renders the join link of a room as a PNG
func (s *Server) roomQR(c *gin.Context) {
	code := roomcode.Normalize(c.Param("code"))
	if !roomcode.IsValid(code) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{
			Error:  fmt.Sprintf("room %q", code),
			Result: string(game.ResultNotFound),
		})
		return
	}

	png, err := qrcode.Encode(s.joinURL(c, code), qrcode.Medium, QRSize)
	if err != nil {
		logging.FromContext(c.Request.Context()).Errorw("qr generation failed", "code", code, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Error: "qr generation failed"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) joinURL(c *gin.Context, code string) string {
	base := s.publicURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/join/" + code
}

func (s *Server) getRoom(c *gin.Context) {
	session := currentSession(c)

	out, err := s.gameService.LoadRoom(c.Request.Context(), &game.LoadRoomInput{
		RoomID: session.RoomID,
		Fresh:  c.Query("fresh") == "true",
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if out.Room.FindPlayer(session.PlayerID) == nil {
		dropSession(c)
		writeError(c, game.ErrNoActiveSession)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": newRoomView(out.Room, session.PlayerID)})
}

func (s *Server) submitQuestions(c *gin.Context) {
	var req submitQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session := currentSession(c)
	out, err := s.gameService.SubmitQuestions(c.Request.Context(), &game.SubmitQuestionsInput{
		Session: session,
		Texts:   req.Texts,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": newRoomView(out.Room, session.PlayerID)})
}

func (s *Server) startGame(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.StartGame(c.Request.Context(), &game.StartGameInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": newRoomView(out.Room, session.PlayerID)})
}

func (s *Server) nextTurn(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.NextTurn(c.Request.Context(), &game.NextTurnInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": newRoomView(out.Room, session.PlayerID)})
}

func (s *Server) endGame(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.EndGame(c.Request.Context(), &game.EndGameInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":    newRoomView(out.Room, session.PlayerID),
		"ranking": newRankingView(out.Ranking),
	})
}

func (s *Server) drawCard(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.DrawCard(c.Request.Context(), &game.DrawCardInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	room := newRoomView(out.Room, session.PlayerID)
	c.JSON(http.StatusOK, gin.H{
		"question":  newQuestionView(out.Question),
		"remaining": room.RemainingQuestions,
		"room":      room,
	})
}

func (s *Server) denounce(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.Denounce(c.Request.Context(), &game.DenounceInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": out.Points,
		"room":   newRoomView(out.Room, session.PlayerID),
	})
}

func (s *Server) addPoints(c *gin.Context) {
	var req addPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	playerID := c.Param("id")
	if !uuid.IsValid(playerID) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{
			Error:  fmt.Sprintf("player %q", playerID),
			Result: string(game.ResultNotFound),
		})
		return
	}

	session := currentSession(c)
	out, err := s.gameService.AddPoints(c.Request.Context(), &game.AddPointsInput{
		Session:  session,
		PlayerID: playerID,
		Points:   req.Points,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": out.Points,
		"room":   newRoomView(out.Room, session.PlayerID),
	})
}

func (s *Server) getRanking(c *gin.Context) {
	session := currentSession(c)
	out, err := s.gameService.GetRanking(c.Request.Context(), &game.GetRankingInput{
		Session: session,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase":   out.Room.Phase,
		"ranking": newRankingView(out.Ranking),
	})
}

func (s *Server) leaveRoom(c *gin.Context) {
	out, err := s.gameService.LeaveRoom(c.Request.Context(), &game.LeaveRoomInput{
		Session: currentSession(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if err := clearSession(c); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room_id": out.RoomID})
}
