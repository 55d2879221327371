package journal

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/scheduler"
)

// Driver is the slice of a live game the replayer re-drives: submit the
// recorded actions, then resolve the round (AI intents included) and
// hand back the report.
type Driver interface {
	SubmitAction(ctx context.Context, entityID string, action entities.Action) error
	PlayRound(ctx context.Context) (*scheduler.RoundReport, error)
}

// DriverFactory rebuilds a fresh game from a recorded setup.
type DriverFactory func(ctx context.Context, setup Setup) (Driver, error)

// ReplayerConfig holds the replayer dependencies
type ReplayerConfig struct {
	Factory DriverFactory
	Logger  *slog.Logger
}

// Validate ensures the config is complete
func (c *ReplayerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	return vb.Build()
}

// Replayer re-drives recorded games and reports where, if anywhere,
// the re-run stops matching the record.
type Replayer struct {
	factory DriverFactory
	logger  *slog.Logger
}

// NewReplayer creates a replayer from the config
func NewReplayer(cfg *ReplayerConfig) (*Replayer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Replayer{
		factory: cfg.Factory,
		logger:  logger,
	}, nil
}

// ReplayOutput reports how far the re-run matched the record.
type ReplayOutput struct {
	RoundsPlayed int
	Diverged     bool
	DivergedTurn int
	Reason       string
}

// Replay rebuilds the recorded game and plays every round back.
// A recorded action the engine now rejects, a round that no longer
// resolves, or a digest that differs is reported as divergence, not an
// error; errors are reserved for a record that cannot be replayed at
// all.
func (r *Replayer) Replay(ctx context.Context, record *Record) (*ReplayOutput, error) {
	if record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	driver, err := r.factory(ctx, record.Setup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild the recorded game")
	}

	out := &ReplayOutput{}
	for _, entry := range record.Rounds {
		for _, id := range sortedActorIDs(entry.Actions) {
			if err := driver.SubmitAction(ctx, id, entry.Actions[id]); err != nil {
				return r.diverge(out, entry.Turn,
					"recorded action for "+id+" was rejected: "+errors.GetMessage(err)), nil
			}
		}

		report, err := driver.PlayRound(ctx)
		if err != nil {
			return r.diverge(out, entry.Turn,
				"round no longer resolves: "+errors.GetMessage(err)), nil
		}
		out.RoundsPlayed++

		if reason, ok := entry.Digest.Match(DigestOf(report)); !ok {
			return r.diverge(out, entry.Turn, reason), nil
		}
	}

	r.logger.Info("replay matched record", "rounds", out.RoundsPlayed)
	return out, nil
}

func (r *Replayer) diverge(out *ReplayOutput, turn int, reason string) *ReplayOutput {
	out.Diverged = true
	out.DivergedTurn = turn
	out.Reason = reason
	r.logger.Warn("replay diverged", "turn", turn, "reason", reason)
	return out
}

func sortedActorIDs(actions map[string]entities.Action) []string {
	if len(actions) == 0 {
		return nil
	}
	ids := make([]string, 0, len(actions))
	for id := range actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
