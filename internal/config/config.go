package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, FITNA_PORT for --port
const EnvPrefix = "FITNA"

const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds the settings shared by the server and the bot
type Config struct {
	Store string
	Debug bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN     string
	PostgresVerbose bool

	CacheSize       int
	MaxPlayers      int
	MinPlayers      int
	TurnSeconds     int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// HTTP server
	Bind           string
	Port           int
	PublicURL      string
	SessionSecret  string
	AllowedOrigins []string

	// Discord bot
	DiscordToken         string
	DiscordApplicationID string
	DiscordGuildID       string
}

// RegisterFlags declares the shared flags
func RegisterFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	flags.StringVar(&cfg.Store, "store", StoreRedis, "storage backend, redis or postgres (env: FITNA_STORE)")
	flags.BoolVarP(&cfg.Debug, "debug", "d", false, "enable debug logging (env: FITNA_DEBUG)")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", "localhost:6379", "redis address (env: FITNA_REDIS_ADDR)")
	flags.StringVar(&cfg.RedisPassword, "redis-password", "", "redis password (env: FITNA_REDIS_PASSWORD)")
	flags.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database number (env: FITNA_REDIS_DB)")
	flags.StringVar(&cfg.PostgresDSN, "postgres-dsn", "", "postgres connection string (env: FITNA_POSTGRES_DSN)")
	flags.BoolVar(&cfg.PostgresVerbose, "postgres-verbose", false, "log every SQL statement (env: FITNA_POSTGRES_VERBOSE)")
	flags.IntVar(&cfg.CacheSize, "cache-size", 256, "number of room snapshots kept in memory (env: FITNA_CACHE_SIZE)")
	flags.IntVar(&cfg.MaxPlayers, "max-players", 6, "room capacity (env: FITNA_MAX_PLAYERS)")
	flags.IntVar(&cfg.MinPlayers, "min-players", 3, "players needed to start (env: FITNA_MIN_PLAYERS)")
	flags.IntVar(&cfg.TurnSeconds, "turn-seconds", 60, "turn countdown in seconds (env: FITNA_TURN_SECONDS)")
	flags.DurationVar(&cfg.RequestTimeout, "request-timeout", 10*time.Second, "store timeout per request (env: FITNA_REQUEST_TIMEOUT)")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period on shutdown (env: FITNA_SHUTDOWN_TIMEOUT)")
}

// RegisterServerFlags declares the HTTP server flags
func RegisterServerFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: FITNA_BIND)")
	flags.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: FITNA_PORT)")
	flags.StringVar(&cfg.PublicURL, "public-url", "http://localhost:8080", "base URL encoded in join QR codes (env: FITNA_PUBLIC_URL)")
	flags.StringVar(&cfg.SessionSecret, "session-secret", "", "cookie signing secret (env: FITNA_SESSION_SECRET)")
	flags.StringSliceVar(&cfg.AllowedOrigins, "allowed-origins", []string{"http://localhost:5173"}, "CORS origins (env: FITNA_ALLOWED_ORIGINS)")
}

// RegisterBotFlags declares the Discord bot flags
func RegisterBotFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.DiscordToken, "discord-token", "", "bot token (env: FITNA_DISCORD_TOKEN)")
	flags.StringVar(&cfg.DiscordApplicationID, "discord-application-id", "", "application ID (env: FITNA_DISCORD_APPLICATION_ID)")
	flags.StringVar(&cfg.DiscordGuildID, "discord-guild-id", "", "register commands in this guild only (env: FITNA_DISCORD_GUILD_ID)")
}

// LoadDotEnv reads .env files into the environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv fills every flag not set on the command line from its
// FITNA_ environment variable
func ApplyEnv(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		if err := flags.Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err))
		}
	})

	return errors.Join(errs...)
}

// Validate checks the shared settings
func (c *Config) Validate() error {
	switch c.Store {
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("--redis-addr is required with the redis store")
		}
	case StorePostgres:
		if c.PostgresDSN == "" {
			return errors.New("--postgres-dsn is required with the postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q (must be %s or %s)", c.Store, StoreRedis, StorePostgres)
	}

	if c.CacheSize <= 0 {
		return fmt.Errorf("invalid cache size (must be positive): %d", c.CacheSize)
	}
	if c.MinPlayers < 2 {
		return fmt.Errorf("invalid minimum players (must be at least 2): %d", c.MinPlayers)
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("maximum players %d is below minimum players %d", c.MaxPlayers, c.MinPlayers)
	}
	if c.TurnSeconds <= 0 {
		return fmt.Errorf("invalid turn length (must be positive): %d", c.TurnSeconds)
	}
	return nil
}

// ValidateServer checks the shared and HTTP settings
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("--session-secret must be at least 32 characters")
	}
	return nil
}

// ValidateBot checks the shared and Discord settings
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DiscordToken == "" {
		return errors.New("--discord-token is required")
	}
	return nil
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
