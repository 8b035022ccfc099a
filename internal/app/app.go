package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/cache"
	"github.com/KirkDiggler/fitna/internal/common/clock"
	"github.com/KirkDiggler/fitna/internal/common/roomcode"
	"github.com/KirkDiggler/fitna/internal/common/uuid"
	"github.com/KirkDiggler/fitna/internal/config"
	"github.com/KirkDiggler/fitna/internal/database"
	"github.com/KirkDiggler/fitna/internal/draw"
	playerRepo "github.com/KirkDiggler/fitna/internal/repositories/player"
	questionRepo "github.com/KirkDiggler/fitna/internal/repositories/question"
	roomRepo "github.com/KirkDiggler/fitna/internal/repositories/room"
	"github.com/KirkDiggler/fitna/internal/services/game"
	"github.com/KirkDiggler/fitna/internal/services/messaging"
)

// App holds the wired services shared by the server and the bot
type App struct {
	Game      game.Service
	Messaging messaging.Service

	closers []func() error
}

type repositories struct {
	rooms     roomRepo.Repository
	players   playerRepo.Repository
	questions questionRepo.Repository
}

// New connects the configured store and builds the services
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	a := &App{}

	repos, err := a.connectStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	snapshots, err := cache.NewLRU(cfg.CacheSize)
	if err != nil {
		a.Close()
		return nil, err
	}

	picker := draw.New(&draw.Config{})

	gameSvc, err := game.New(&game.Config{
		MaxPlayers:    cfg.MaxPlayers,
		MinPlayers:    cfg.MinPlayers,
		TurnSeconds:   cfg.TurnSeconds,
		RoomRepo:      repos.rooms,
		PlayerRepo:    repos.players,
		QuestionRepo:  repos.questions,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		CodeGenerator: roomcode.New(),
		Picker:        picker,
		Cache:         snapshots,
		Logger:        logger,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		Picker: picker,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	a.Game = gameSvc
	a.Messaging = messagingSvc

	logger.Infow("services ready", "store", cfg.Store)

	return a, nil
}

func (a *App) connectStore(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := database.ConnectRedis(ctx, &database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)

		rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create room repository: %w", err)
		}
		players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create player repository: %w", err)
		}
		questions, err := questionRepo.NewRedis(&questionRepo.Config{RedisClient: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create question repository: %w", err)
		}
		return &repositories{rooms: rooms, players: players, questions: questions}, nil

	case config.StorePostgres:
		db, err := database.ConnectGORM(ctx, &database.PostgresConfig{
			DSN:     cfg.PostgresDSN,
			Verbose: cfg.PostgresVerbose,
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqlDB.Close)

		if err := database.Migrate(db); err != nil {
			return nil, err
		}

		rooms, err := roomRepo.NewPostgres(&roomRepo.PostgresConfig{DB: db})
		if err != nil {
			return nil, fmt.Errorf("failed to create room repository: %w", err)
		}
		players, err := playerRepo.NewPostgres(&playerRepo.PostgresConfig{DB: db})
		if err != nil {
			return nil, fmt.Errorf("failed to create player repository: %w", err)
		}
		questions, err := questionRepo.NewPostgres(&questionRepo.PostgresConfig{DB: db})
		if err != nil {
			return nil, fmt.Errorf("failed to create question repository: %w", err)
		}
		return &repositories{rooms: rooms, players: players, questions: questions}, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Close releases the store connections
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
