// Package message picks the flavor line shown after a run ends.
package message

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Outcome classifies a finished run.
type Outcome int

const (
	Loss Outcome = iota
	Win
)

// String returns the outcome label.
func (o Outcome) String() string {
	if o == Win {
		return "WIN"
	}
	return "LOSS"
}

// Fixed lines used outside of a run's end.
const (
	// DefaultMessage is shown before the first run and whenever picking fails.
	DefaultMessage = "The ritual awaits its familiar..."
	// RestartMessage is shown while a new run is in progress.
	RestartMessage = "The cycle repeats..."
)

var lossMessages = []string{
	"The shadows consume you... the ritual is lost.",
	"A failed incantation echoes in the void.",
	"The circle is broken, the familiar flees.",
	"Darkness claims the essence of your nine lives.",
	"The ritual was interrupted by a flicker of doubt.",
	"Your spirit fades as the purple flames flicker out.",
	"The ancient ones are displeased with this offering.",
	"Entropy claims the ritual circle. Try again, Familiar.",
	"The grimoire slams shut. Your journey ends in shadow.",
	"A shattered elixir, a shattered soul.",
}

var winMessages = []string{
	"The moon rises in your favor, keep running.",
	"The ritual ascends! Your power grows.",
	"The ancient spirits whisper secrets of speed.",
	"Celestial energy flows through your paws.",
	"The circle glows with a radiant, dark light.",
	"Your familiar spirit is becoming legend.",
	"The stars align for your dark crossing.",
	"Mana pulses in the ground beneath you.",
	"The prophecy unfolds with every leap.",
	"You are the chosen shadow of the night.",
}

// Picker returns a line for a finished run.
type Picker interface {
	Message(ctx context.Context, score int, outcome Outcome) (string, error)
}

// Local picks uniformly from fixed pools. It never blocks.
type Local struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocal creates a picker seeded with seed.
func NewLocal(seed int64) *Local {
	return &Local{rng: rand.New(rand.NewSource(seed))}
}

// Message implements Picker.
func (l *Local) Message(_ context.Context, _ int, outcome Outcome) (string, error) {
	pool := lossMessages
	if outcome == Win {
		pool = winMessages
	}

	l.mu.Lock()
	i := l.rng.Intn(len(pool))
	l.mu.Unlock()

	return pool[i], nil
}

// Fetch asks p for a line, giving up after timeout. Any error, panic,
// empty answer or timeout yields DefaultMessage.
func Fetch(ctx context.Context, p Picker, score int, outcome Outcome, timeout time.Duration) (string, error) {
	if p == nil {
		return DefaultMessage, errors.New("message: no picker")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type answer struct {
		msg string
		err error
	}
	ch := make(chan answer, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- answer{err: fmt.Errorf("message: picker panicked: %v", r)}
			}
		}()
		msg, err := p.Message(ctx, score, outcome)
		ch <- answer{msg: msg, err: err}
	}()

	select {
	case a := <-ch:
		if a.err != nil {
			return DefaultMessage, a.err
		}
		if a.msg == "" {
			return DefaultMessage, errors.New("message: picker returned nothing")
		}
		return a.msg, nil
	case <-ctx.Done():
		return DefaultMessage, fmt.Errorf("message: %w", ctx.Err())
	}
}
