// Package journal records a game as it is played: the setup that seeds
// it, the actions submitted each round, and a digest of every round
// report. The record is plain serializable data: the package does no
// file I/O and holds no locks; the session appends, external
// collaborators persist, and the replayer verifies.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/pkg/clock"
	"github.com/ziyadedher/skrish/internal/scheduler"
)

// Setup pins everything needed to regenerate the game: the seed, the
// board parameters, the tuning, and the player the session started with.
type Setup struct {
	Seed        int64              `json:"seed"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	RoomCount   int                `json:"room_count"`
	Difficulty  int                `json:"difficulty"`
	Tuning      config.Tuning      `json:"tuning"`
	PlayerName  string             `json:"player_name,omitempty"`
	PlayerStats entities.StatBlock `json:"player_stats"`
}

// Digest is a compact fingerprint of a resolved round, enough to
// detect replay divergence without storing whole reports.
type Digest struct {
	Turn       int               `json:"turn"`
	Outcome    scheduler.Outcome `json:"outcome"`
	Moves      int               `json:"moves"`
	Damage     int               `json:"damage"`
	ItemsUsed  int               `json:"items_used"`
	Rejections int               `json:"rejections"`
	Deaths     []string          `json:"deaths,omitempty"`
}

// DigestOf summarizes a round report.
func DigestOf(report *scheduler.RoundReport) Digest {
	damage := 0
	for _, event := range report.Damage {
		damage += event.Amount
	}
	var deaths []string
	if len(report.Deaths) > 0 {
		deaths = append([]string(nil), report.Deaths...)
	}
	return Digest{
		Turn:       report.Turn,
		Outcome:    report.Outcome,
		Moves:      len(report.Moves),
		Damage:     damage,
		ItemsUsed:  len(report.ItemUses),
		Rejections: len(report.Rejections),
		Deaths:     deaths,
	}
}

// Match compares the recorded digest against a live one. The first
// mismatching field names the divergence reason.
func (d Digest) Match(live Digest) (string, bool) {
	switch {
	case d.Turn != live.Turn:
		return fmt.Sprintf("recorded turn %d resolved as turn %d", d.Turn, live.Turn), false
	case d.Outcome != live.Outcome:
		return fmt.Sprintf("outcome %s resolved as %s", d.Outcome, live.Outcome), false
	case d.Moves != live.Moves:
		return fmt.Sprintf("%d moves resolved as %d", d.Moves, live.Moves), false
	case d.Damage != live.Damage:
		return fmt.Sprintf("%d total damage resolved as %d", d.Damage, live.Damage), false
	case d.ItemsUsed != live.ItemsUsed:
		return fmt.Sprintf("%d item uses resolved as %d", d.ItemsUsed, live.ItemsUsed), false
	case d.Rejections != live.Rejections:
		return fmt.Sprintf("%d rejections resolved as %d", d.Rejections, live.Rejections), false
	case strings.Join(d.Deaths, ",") != strings.Join(live.Deaths, ","):
		return fmt.Sprintf("deaths [%s] resolved as [%s]",
			strings.Join(d.Deaths, " "), strings.Join(live.Deaths, " ")), false
	}
	return "", true
}

// Entry is one resolved round: the actions that were submitted by hand
// (AI intents are re-derived on replay) and the digest of the result.
type Entry struct {
	Turn    int                        `json:"turn"`
	Actions map[string]entities.Action `json:"actions,omitempty"`
	Digest  Digest                     `json:"digest"`
}

// Record is the serializable whole-game journal. Hand it to a save
// collaborator, feed it back to a Replayer to verify the run.
// RecordedAt is metadata for save collaborators; replay compares
// digests and ignores it.
type Record struct {
	Setup      Setup     `json:"setup"`
	RecordedAt time.Time `json:"recorded_at"`
	Rounds     []Entry   `json:"rounds,omitempty"`
}

// Journal accumulates a game's rounds as they resolve.
type Journal struct {
	setup  Setup
	clk    clock.Clock
	rounds []Entry
}

// New creates a journal for a game with the given setup.
func New(setup Setup) *Journal {
	return NewWithClock(setup, clock.New())
}

// NewWithClock creates a journal that stamps records with the given
// clock.
func NewWithClock(setup Setup, clk clock.Clock) *Journal {
	return &Journal{setup: setup, clk: clk}
}

// AppendRound records one resolved round. The actions map is copied so
// later caller mutations never reach the journal.
func (j *Journal) AppendRound(actions map[string]entities.Action, report *scheduler.RoundReport) {
	if report == nil {
		return
	}
	var copied map[string]entities.Action
	if len(actions) > 0 {
		copied = make(map[string]entities.Action, len(actions))
		for id, action := range actions {
			copied[id] = action
		}
	}
	j.rounds = append(j.rounds, Entry{
		Turn:    report.Turn,
		Actions: copied,
		Digest:  DigestOf(report),
	})
}

// Len returns the number of recorded rounds.
func (j *Journal) Len() int {
	return len(j.rounds)
}

// Record returns the serializable journal. Entries are copied; the
// journal keeps accumulating independently.
func (j *Journal) Record() *Record {
	return &Record{
		Setup:      j.setup,
		RecordedAt: j.clk.Now().UTC(),
		Rounds:     cloneEntries(j.rounds),
	}
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, entry := range entries {
		cloned := entry
		if len(entry.Actions) > 0 {
			cloned.Actions = make(map[string]entities.Action, len(entry.Actions))
			for id, action := range entry.Actions {
				cloned.Actions[id] = action
			}
		}
		if len(entry.Digest.Deaths) > 0 {
			cloned.Digest.Deaths = append([]string(nil), entry.Digest.Deaths...)
		}
		out[i] = cloned
	}
	return out
}
