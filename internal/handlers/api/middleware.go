package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/fitna/internal/logging"
	"github.com/KirkDiggler/fitna/internal/services/game"
)

const (
	roomIDKey   = "room_id"
	playerIDKey = "player_id"

	sessionContextKey = "fitna.session"
)

// requestLogger attaches a request-scoped logger and deadline to the context
func (s *Server) requestLogger(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logging.WithLogger(c.Request.Context(), s.logger.With(
			"method", c.Request.Method,
			"path", c.FullPath(),
		))
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		s.logger.Debugw("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// requireSession rejects requests without a room session cookie
func requireSession(c *gin.Context) {
	store := sessions.Default(c)
	roomID, _ := store.Get(roomIDKey).(string)
	playerID, _ := store.Get(playerIDKey).(string)

	session := &game.Session{RoomID: roomID, PlayerID: playerID}
	if !session.Active() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "no active session"})
		return
	}

	c.Set(sessionContextKey, session)
	c.Next()
}

func currentSession(c *gin.Context) *game.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(*game.Session); ok {
			return session
		}
	}
	return &game.Session{}
}

func saveSession(c *gin.Context, session *game.Session) error {
	store := sessions.Default(c)
	store.Set(roomIDKey, session.RoomID)
	store.Set(playerIDKey, session.PlayerID)
	return store.Save()
}

func clearSession(c *gin.Context) error {
	store := sessions.Default(c)
	store.Clear()
	return store.Save()
}

// dropSession clears the session when the response already reports a
// failure; a save error is only logged
func dropSession(c *gin.Context) {
	if err := clearSession(c); err != nil {
		logging.FromContext(c.Request.Context()).Warnw("failed to clear session", "error", err)
	}
}

type errorBody struct {
	Error  string `json:"error"`
	Result string `json:"result"`
}

// writeError maps a service error to its status code
func writeError(c *gin.Context, err error) {
	logger := logging.FromContext(c.Request.Context())

	if errors.Is(err, game.ErrNoActiveSession) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
			Error:  err.Error(),
			Result: string(game.ResultValidationFailed),
		})
		return
	}

	result := game.ResultOf(err)
	switch result {
	case game.ResultNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{Error: err.Error(), Result: string(result)})
	case game.ResultValidationFailed:
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Result: string(result)})
	default:
		logger.Errorw("request failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
			Error:  "something went wrong",
			Result: string(game.ResultPersistenceFailed),
		})
	}
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
		Error:  err.Error(),
		Result: string(game.ResultValidationFailed),
	})
}
