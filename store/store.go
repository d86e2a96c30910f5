// Package store persists the per-game bankroll records.
//
// A record is a small JSON object, `{"bankroll": 1000, "stats": {...}}` for
// Blackjack and `{"bankroll": 1000}` for Roulette. Saves always overwrite the
// whole record. Loading is best-effort: LoadOrDefault never fails and falls
// back to a fresh bankroll when nothing usable is stored.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/luca-patrignani/casino/ledger"
)

// DefaultBankroll is the balance of a player without a usable saved record.
const DefaultBankroll = 1000

// ErrNotFound is returned by Load when no record exists for the key.
var ErrNotFound = errors.New("record not found")

// Store is the persistence port used by the game sessions.
type Store interface {
	Load(ctx context.Context, key string) (Record, error)
	Save(ctx context.Context, key string, rec Record) error
	Close() error
}

// Record is the persisted state of one game.
type Record struct {
	Bankroll int           `json:"bankroll"`
	Stats    *ledger.Stats `json:"stats,omitempty"`
}

// Default returns the record of a brand new player.
func Default() Record {
	return Record{Bankroll: DefaultBankroll, Stats: &ledger.Stats{}}
}

// StatsOrZero returns the statistics of the record, zeroed when absent.
func (r Record) StatsOrZero() ledger.Stats {
	if r.Stats == nil {
		return ledger.Stats{}
	}
	return *r.Stats
}

// LoadOrDefault loads the record stored under key. A missing or unreadable
// record is replaced by Default and logged at debug level.
func LoadOrDefault(ctx context.Context, s Store, key string, logger *slog.Logger) Record {
	rec, err := s.Load(ctx, key)
	switch {
	case err == nil:
		return rec
	case errors.Is(err, ErrNotFound):
		logger.Debug("no saved record, starting fresh", "key", key)
	default:
		logger.Debug("saved record unusable, starting fresh", "key", key, "error", err)
	}
	return Default()
}

// Encode serialises a record.
func Encode(rec Record) ([]byte, error) {
	return json.Marshal(rec)
}

type rawRecord struct {
	Bankroll *int          `json:"bankroll"`
	Stats    *ledger.Stats `json:"stats"`
}

// wholeNumberHookFunc rejects JSON numbers that do not fit an int exactly,
// instead of letting them be truncated.
func wholeNumberHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.Float64 || to != reflect.Int {
			return data, nil
		}
		f := data.(float64)
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%v is not a whole number", f)
		}
		if f < math.MinInt || f >= math.MaxInt {
			return nil, fmt.Errorf("%v is out of range", f)
		}
		return int(f), nil
	}
}

// Decode parses a stored record. Missing keys fall back individually to
// their defaults; malformed content or negative values make the whole record
// invalid.
func Decode(data []byte) (Record, error) {
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return Record{}, fmt.Errorf("malformed record: %w", err)
	}

	var raw rawRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &raw,
		TagName:    "json",
		DecodeHook: wholeNumberHookFunc(),
	})
	if err != nil {
		return Record{}, err
	}
	if err := decoder.Decode(generic); err != nil {
		return Record{}, fmt.Errorf("malformed record: %w", err)
	}

	rec := Default()
	if raw.Bankroll != nil {
		if *raw.Bankroll < 0 {
			return Record{}, fmt.Errorf("negative bankroll %d", *raw.Bankroll)
		}
		rec.Bankroll = *raw.Bankroll
	}
	if raw.Stats != nil {
		s := *raw.Stats
		if s.Wins < 0 || s.Losses < 0 || s.Pushes < 0 || s.Blackjacks < 0 {
			return Record{}, fmt.Errorf("negative statistics %+v", s)
		}
		rec.Stats = &s
	}
	return rec, nil
}
