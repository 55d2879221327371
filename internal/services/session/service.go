// Package session defines the interface for driving a dungeon crawl
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/ziyadedher/skrish/internal/services/session Service

import (
	"context"

	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/journal"
	"github.com/ziyadedher/skrish/internal/scheduler"
)

// Service runs one crawl from the first level until the player dies,
// leaves, or the host abandons the game. A service value holds a single
// game; hosts running several games hold several values.
//
// The round loop is cooperative: the host submits the player's action,
// calls CollectIntents to let the monster policies fill in the rest,
// and then AdvanceRound to resolve. Nothing blocks in between, so the
// host decides how long the suspension lasts.
type Service interface {
	// Level lifecycle
	NewLevel(ctx context.Context, input *NewLevelInput) (*NewLevelOutput, error)
	DescendStairs(ctx context.Context, input *DescendStairsInput) (*DescendStairsOutput, error)
	Abandon(ctx context.Context, input *AbandonInput) (*AbandonOutput, error)

	// Round loop
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)
	CollectIntents(ctx context.Context, input *CollectIntentsInput) (*CollectIntentsOutput, error)
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// Read models
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
	Outcome(ctx context.Context, input *OutcomeInput) (*OutcomeOutput, error)
	Journal(ctx context.Context, input *JournalInput) (*JournalOutput, error)
}

// =============================================================================
// Service Input/Output Types
// =============================================================================

// NewLevelInput starts a fresh game on its first level. Any game already
// in progress on the service is discarded.
type NewLevelInput struct {
	Seed            int64 `json:"seed"`
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	TargetRoomCount int   `json:"target_room_count"`
	// Difficulty overrides the starting difficulty; zero means start at 1.
	Difficulty int    `json:"difficulty,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	// PlayerStats overrides the stock starting block.
	PlayerStats *entities.StatBlock `json:"player_stats,omitempty"`
}

// NewLevelOutput describes the freshly generated level
type NewLevelOutput struct {
	Depth      int    `json:"depth"`
	Difficulty int    `json:"difficulty"`
	PlayerID   string `json:"player_id"`
	Monsters   int    `json:"monsters"`
	Items      int    `json:"items"`
}

// DescendStairsInput moves the crawl to the next level. The current
// level must have been won first.
type DescendStairsInput struct{}

// DescendStairsOutput describes the next level
type DescendStairsOutput struct {
	Depth      int    `json:"depth"`
	Difficulty int    `json:"difficulty"`
	PlayerID   string `json:"player_id"`
	Monsters   int    `json:"monsters"`
	Items      int    `json:"items"`
}

// AbandonInput ends the game immediately
type AbandonInput struct{}

// AbandonOutput carries the final journal record of the abandoned game
type AbandonOutput struct {
	Record *journal.Record `json:"record"`
}

// SubmitActionInput carries one entity's intent for the current round.
// An empty EntityID targets the player.
type SubmitActionInput struct {
	EntityID string          `json:"entity_id,omitempty"`
	Action   entities.Action `json:"action"`
}

// SubmitActionOutput reports the entity the action was recorded for
type SubmitActionOutput struct {
	EntityID string `json:"entity_id"`
}

// CollectIntentsInput asks the monster policies to decide for every
// monster still owing an action.
type CollectIntentsInput struct{}

// Intent is one policy decision
type Intent struct {
	EntityID string          `json:"entity_id"`
	Action   entities.Action `json:"action"`
}

// CollectIntentsOutput lists the decisions made, in the order they were
// taken.
type CollectIntentsOutput struct {
	Intents []Intent `json:"intents,omitempty"`
}

// AdvanceRoundInput resolves the current round
type AdvanceRoundInput struct{}

// AdvanceRoundOutput carries the resolved round's report
type AdvanceRoundOutput struct {
	Report *scheduler.RoundReport `json:"report"`
}

// SnapshotInput requests the render-ready view of the game
type SnapshotInput struct{}

// SnapshotOutput is a deep copy of the observable game state. Mutating
// it has no effect on the live game.
type SnapshotOutput struct {
	Depth      int               `json:"depth"`
	Difficulty int               `json:"difficulty"`
	Turn       int               `json:"turn"`
	State      scheduler.State   `json:"state"`
	Outcome    scheduler.Outcome `json:"outcome"`
	PlayerID   string            `json:"player_id"`
	Graph      *dungeon.Snapshot `json:"graph"`
	Entities   []entities.Entity `json:"entities"`
}

// OutcomeInput requests the game result so far
type OutcomeInput struct{}

// OutcomeOutput reports where the game stands
type OutcomeOutput struct {
	Outcome scheduler.Outcome `json:"outcome"`
	Turn    int               `json:"turn"`
	Settled bool              `json:"settled"`
}

// JournalInput requests the game's journal record
type JournalInput struct{}

// JournalOutput carries the record of every round resolved so far
type JournalOutput struct {
	Record *journal.Record `json:"record"`
}
