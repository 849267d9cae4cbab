// Package leaderboard keeps the local top-ten list, the personal best and
// the player's name, and persists them through a key/value store.
package leaderboard

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEntries caps the leaderboard length.
	MaxEntries = 10
	// MaxNameLen caps player names, in runes.
	MaxNameLen = 12
	// DefaultName labels runs by a player who never chose a name.
	DefaultName = "Mysterious Wanderer"
	// LiveDate is the date label of the in-progress run in Live views.
	LiveDate = "Today"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Board is a leaderboard sorted descending by score with at most one
// entry per name and at most MaxEntries entries.
type Board []Entry

// Defaults returns the placeholder board used when nothing is stored.
func Defaults() Board {
	const eons = "Eons Ago"
	return Board{
		{Name: "Alchemist Azar", Score: 5000, Date: eons},
		{Name: "Grimoire Keeper", Score: 4200, Date: eons},
		{Name: "Nightshade", Score: 3500, Date: eons},
		{Name: "Cinder", Score: 2800, Date: eons},
		{Name: "Void-Walker", Score: 2100, Date: eons},
		{Name: "Rune-Carver", Score: 1500, Date: eons},
		{Name: "Spectral Paw", Score: 1200, Date: eons},
		{Name: "Lunar Whisker", Score: 900, Date: eons},
		{Name: "Dust Bunny", Score: 600, Date: eons},
		{Name: "Apprentice", Score: 300, Date: eons},
	}
}

// NormalizeName trims whitespace and caps the length. An empty result
// becomes DefaultName.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// Commit returns a new board with e applied: an existing entry with the
// same name is replaced only when e scores higher, a new name is added,
// and the result is re-sorted and truncated. The receiver is not modified.
func (b Board) Commit(e Entry) Board {
	e.Name = NormalizeName(e.Name)
	if e.Score < 0 {
		e.Score = 0
	}

	next := slices.Clone(b)
	idx := slices.IndexFunc(next, func(x Entry) bool { return x.Name == e.Name })
	switch {
	case idx == -1:
		next = append(next, e)
	case e.Score > next[idx].Score:
		next[idx] = e
	}
	return next.normalized()
}

// Live returns the board as it would look if the named player's current
// run ended now. Used for display while a run is in progress; unlike
// Commit it always shows the current run for that name.
func (b Board) Live(name string, score int) Board {
	name = NormalizeName(name)
	next := make(Board, 0, len(b)+1)
	for _, e := range b {
		if e.Name != name {
			next = append(next, e)
		}
	}
	next = append(next, Entry{Name: name, Score: score, Date: LiveDate})
	return next.normalized()
}

// Rank returns the 1-based position of name, or 0 if absent.
func (b Board) Rank(name string) int {
	name = NormalizeName(name)
	for i, e := range b {
		if e.Name == name {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether the board satisfies the ordering, size and
// uniqueness invariants.
func (b Board) Valid() bool {
	if len(b) > MaxEntries {
		return false
	}
	seen := make(map[string]bool, len(b))
	for i, e := range b {
		if seen[e.Name] || e.Score < 0 {
			return false
		}
		seen[e.Name] = true
		if i > 0 && b[i-1].Score < e.Score {
			return false
		}
	}
	return true
}

// normalized sorts descending by score (stable, so earlier entries win
// ties), drops duplicate names keeping the best, and truncates.
func (b Board) normalized() Board {
	slices.SortStableFunc(b, func(x, y Entry) int { return cmp.Compare(y.Score, x.Score) })

	out := b[:0]
	seen := make(map[string]bool, len(b))
	for _, e := range b {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
