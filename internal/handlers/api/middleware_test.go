package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	gsessions "github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/fitna/internal/logging"
)

// unsavableStore hands out sessions that can never be written back
type unsavableStore struct{}

func (u *unsavableStore) Get(r *http.Request, name string) (*gsessions.Session, error) {
	return gsessions.GetRegistry(r).Get(u, name)
}

func (u *unsavableStore) New(r *http.Request, name string) (*gsessions.Session, error) {
	session := gsessions.NewSession(u, name)
	session.IsNew = true
	return session, nil
}

func (u *unsavableStore) Save(*http.Request, http.ResponseWriter, *gsessions.Session) error {
	return errors.New("cookie jar is full")
}

func (u *unsavableStore) Options(sessions.Options) {}

func TestDropSessionLogsFailedSave(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.WarnLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core).Sugar())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/room", nil).WithContext(ctx)
	sessions.Sessions(sessionName, &unsavableStore{})(c)

	sessions.Default(c).Set(roomIDKey, "room-1")
	dropSession(c)

	entries := logs.FilterMessage("failed to clear session").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cookie jar is full", entries[0].ContextMap()["error"])
}

func TestClearSessionReportsFailedSave(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/room", nil)
	sessions.Sessions(sessionName, &unsavableStore{})(c)

	sessions.Default(c).Set(playerIDKey, "p-1")
	assert.Error(t, clearSession(c))
}
