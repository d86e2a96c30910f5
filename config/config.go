// Package config reads the runtime settings shared by both games from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/casino/domain/deck"
	"github.com/luca-patrignani/casino/store"
)

// Environment variables understood by Load.
const (
	EnvDataDir  = "CASINO_DATA_DIR"
	EnvRedisURL = "CASINO_REDIS_URL"
	EnvDecks    = "CASINO_DECKS"
	EnvLogLevel = "CASINO_LOG_LEVEL"
	EnvSeed     = "CASINO_SEED"
)

// DefaultDecks is the number of decks in the blackjack shoe.
const DefaultDecks = 2

// Config holds the settings of a game binary.
type Config struct {
	DataDir  string
	RedisURL string
	Decks    int
	LogLevel pterm.LogLevel
	Seed     uint64
}

type option func(settings) settings

type settings struct {
	envFiles []string
}

// WithEnvFile reads variables from the given file instead of ./.env.
// Variables already present in the environment win.
func WithEnvFile(path string) option {
	return func(s settings) settings {
		s.envFiles = append(s.envFiles, path)
		return s
	}
}

// Load builds a Config from the environment. A missing .env file is not an
// error, an invalid value is.
func Load(opts ...option) (Config, error) {
	s := settings{}
	for _, opt := range opts {
		s = opt(s)
	}
	if err := godotenv.Load(s.envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read env file: %w", err)
	}

	cfg := Config{
		DataDir:  getenv(EnvDataDir, "."),
		RedisURL: os.Getenv(EnvRedisURL),
		Decks:    DefaultDecks,
		LogLevel: pterm.LogLevelInfo,
	}

	if v := os.Getenv(EnvDecks); v != "" {
		decks, err := strconv.Atoi(v)
		if err != nil || decks < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvDecks, v)
		}
		cfg.Decks = decks
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an unsigned integer, got %q", EnvSeed, v)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// ParseLogLevel maps a level name to the pterm log level.
func ParseLogLevel(name string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger returns a slog logger printing through pterm to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(c.LogLevel).WithWriter(w)
	return slog.New(pterm.NewSlogHandler(logger))
}

// OpenStore returns the redis store when a URL is configured, the file store
// in DataDir otherwise.
func (c Config) OpenStore() (store.Store, error) {
	if c.RedisURL != "" {
		return store.NewRedisStore(c.RedisURL)
	}
	return store.NewFileStore(c.DataDir)
}

// Source returns the random source for shuffles and spins: deterministic
// when a seed is configured, cryptographic otherwise.
func (c Config) Source() deck.Source {
	if c.Seed != 0 {
		return deck.NewSeededSource(c.Seed)
	}
	return deck.NewCryptoSource()
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
