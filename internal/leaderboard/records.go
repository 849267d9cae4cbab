package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Storage keys. The names match the keys the web build used so exported
// local storage can be imported as-is.
const (
	KeyPlayerName   = "siggy_player_name"
	KeyPersonalBest = "siggy_personal_best"
	KeyLeaderboard  = "siggy_global_leaderboard"
)

// DateLayout formats the date label of committed entries.
const DateLayout = "1/2/2006"

// KV is the durable key/value store the records live in.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryKV is a KV that lives only as long as the process. It stands in
// when no durable store is available.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Records owns the player's name, personal best and the leaderboard, and
// writes every mutation back to the store synchronously.
type Records struct {
	kv     KV
	logger *log.Logger
	name   string
	best   int
	board  Board
}

// Load reads the records from kv. Missing or unreadable values fall back
// to their defaults (empty name, zero best, seeded board) and are logged;
// Load itself never fails.
func Load(kv KV, logger *log.Logger) *Records {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Records{kv: kv, logger: logger, board: Defaults()}

	if v, ok := r.get(KeyPlayerName); ok {
		r.name = v
	}

	if v, ok := r.get(KeyPersonalBest); ok {
		best, err := strconv.Atoi(v)
		if err != nil || best < 0 {
			logger.Warn("ignoring unreadable personal best", "value", v)
		} else {
			r.best = best
		}
	}

	if v, ok := r.get(KeyLeaderboard); ok {
		var board Board
		if err := json.Unmarshal([]byte(v), &board); err != nil {
			logger.Warn("stored leaderboard is corrupt, using defaults", "error", err)
		} else {
			r.board = board.normalized()
		}
	}

	return r
}

func (r *Records) get(key string) (string, bool) {
	v, ok, err := r.kv.Get(key)
	if err != nil {
		r.logger.Warn("could not read record", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// Name returns the stored player name (possibly empty).
func (r *Records) Name() string {
	return r.name
}

// DisplayName returns the name used on the leaderboard.
func (r *Records) DisplayName() string {
	return NormalizeName(r.name)
}

// PersonalBest returns the best score ever committed.
func (r *Records) PersonalBest() int {
	return r.best
}

// Board returns a copy of the leaderboard.
func (r *Records) Board() Board {
	return append(Board(nil), r.board...)
}

// SetName stores a new player name. Blank names are rejected so the
// stored name stays either empty (never chosen) or meaningful.
func (r *Records) SetName(name string) error {
	normalized := NormalizeName(name)
	if normalized == DefaultName {
		return fmt.Errorf("leaderboard: name must not be blank")
	}
	if err := r.kv.Set(KeyPlayerName, normalized); err != nil {
		return fmt.Errorf("leaderboard: cannot save name: %w", err)
	}
	r.name = normalized
	return nil
}

// Commit records a finished run: the leaderboard entry for the player and
// the personal best. It reports whether the run set a new personal best.
// In-memory state is updated even when writing back fails.
func (r *Records) Commit(score int, at time.Time) (newBest bool, err error) {
	if score < 0 {
		score = 0
	}

	r.board = r.board.Commit(Entry{
		Name:  r.DisplayName(),
		Score: score,
		Date:  at.Format(DateLayout),
	})

	data, mErr := json.Marshal(r.board)
	if mErr != nil {
		return false, fmt.Errorf("leaderboard: cannot encode board: %w", mErr)
	}
	if sErr := r.kv.Set(KeyLeaderboard, string(data)); sErr != nil {
		err = fmt.Errorf("leaderboard: cannot save board: %w", sErr)
	}

	if score > r.best {
		r.best = score
		newBest = true
		if sErr := r.kv.Set(KeyPersonalBest, strconv.Itoa(score)); sErr != nil && err == nil {
			err = fmt.Errorf("leaderboard: cannot save personal best: %w", sErr)
		}
	}

	return newBest, err
}
