package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/services/game"
)

const (
	sessionName = "fitna_session"

	// QRSize is the edge of the join QR code in pixels
	QRSize = 256
)

// Config holds the configuration for the HTTP API
type Config struct {
	GameService game.Service
	Logger      *zap.SugaredLogger

	// SessionSecret signs the session cookie
	SessionSecret string

	// PublicURL is the base of the join links encoded in QR codes
	PublicURL string

	// AllowedOrigins lists CORS origins. Empty allows none.
	AllowedOrigins []string

	// RequestTimeout bounds every request context. Zero disables it.
	RequestTimeout time.Duration

	// SecureCookie marks the session cookie HTTPS-only
	SecureCookie bool
}

// Server exposes the game service over HTTP
type Server struct {
	engine      *gin.Engine
	gameService game.Service
	logger      *zap.SugaredLogger
	publicURL   string
}

// New builds the gin engine and registers every route
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret cannot be empty")
	}

	s := &Server{
		engine:      gin.New(),
		gameService: cfg.GameService,
		logger:      cfg.Logger.Named("api"),
		publicURL:   strings.TrimRight(cfg.PublicURL, "/"),
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger(cfg.RequestTimeout))
	if len(cfg.AllowedOrigins) > 0 {
		s.engine.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	s.engine.Use(sessions.Sessions(sessionName, store))

	s.registerRoutes()

	return s, nil
}

// Handler returns the http.Handler serving the API
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/health", s.health)

	rooms := r.Group("/rooms")
	{
		rooms.POST("", s.createRoom)
		rooms.POST("/:code/players", s.joinRoom)
		rooms.GET("/:code/qr", s.roomQR)
	}

	room := r.Group("/room")
	room.Use(requireSession)
	{
		room.GET("", s.getRoom)
		room.DELETE("", s.leaveRoom)
		room.POST("/questions", s.submitQuestions)
		room.POST("/start", s.startGame)
		room.POST("/next-turn", s.nextTurn)
		room.POST("/end", s.endGame)
		room.POST("/draw", s.drawCard)
		room.POST("/denounce", s.denounce)
		room.POST("/players/:id/points", s.addPoints)
		room.GET("/ranking", s.getRanking)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
