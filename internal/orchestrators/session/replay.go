package session

import (
	"context"

	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/journal"
	"github.com/ziyadedher/skrish/internal/scheduler"
	"github.com/ziyadedher/skrish/internal/services/session"
)

// ReplayDriver adapts a session to the journal's replay surface. A
// recorded round arriving after a won level implies the host descended,
// so the driver descends before feeding it in; monster intents are
// re-derived by CollectIntents exactly as they were live.
type ReplayDriver struct {
	service session.Service
}

var _ journal.Driver = (*ReplayDriver)(nil)

// NewReplayDriver wraps a session for replay
func NewReplayDriver(service session.Service) *ReplayDriver {
	return &ReplayDriver{service: service}
}

// SubmitAction feeds one recorded action into the session
func (d *ReplayDriver) SubmitAction(ctx context.Context, entityID string, action entities.Action) error {
	if err := d.descendIfWon(ctx); err != nil {
		return err
	}
	_, err := d.service.SubmitAction(ctx, &session.SubmitActionInput{
		EntityID: entityID,
		Action:   action,
	})
	return err
}

// PlayRound derives the monster intents and resolves the round
func (d *ReplayDriver) PlayRound(ctx context.Context) (*scheduler.RoundReport, error) {
	if err := d.descendIfWon(ctx); err != nil {
		return nil, err
	}
	if _, err := d.service.CollectIntents(ctx, &session.CollectIntentsInput{}); err != nil {
		return nil, err
	}
	out, err := d.service.AdvanceRound(ctx, &session.AdvanceRoundInput{})
	if err != nil {
		return nil, err
	}
	return out.Report, nil
}

func (d *ReplayDriver) descendIfWon(ctx context.Context) error {
	out, err := d.service.Outcome(ctx, &session.OutcomeInput{})
	if err != nil {
		return err
	}
	if out.Outcome != scheduler.OutcomePlayerWon {
		return nil
	}
	_, err = d.service.DescendStairs(ctx, &session.DescendStairsInput{})
	return err
}

// ReplayFactory builds the driver factory a journal.Replayer needs to
// re-run records against fresh sessions. Each invocation starts a new
// game from the record's setup line.
func ReplayFactory(cfg *Config) journal.DriverFactory {
	return func(ctx context.Context, setup journal.Setup) (journal.Driver, error) {
		rebuilt := Config{
			Catalog:  cfg.Catalog,
			Tuning:   setup.Tuning,
			EventBus: cfg.EventBus,
			Logger:   cfg.Logger,
		}
		svc, err := New(&rebuilt)
		if err != nil {
			return nil, err
		}

		stats := setup.PlayerStats
		if _, err := svc.NewLevel(ctx, &session.NewLevelInput{
			Seed:            setup.Seed,
			Width:           setup.Width,
			Height:          setup.Height,
			TargetRoomCount: setup.RoomCount,
			Difficulty:      setup.Difficulty,
			PlayerName:      setup.PlayerName,
			PlayerStats:     &stats,
		}); err != nil {
			return nil, err
		}
		return NewReplayDriver(svc), nil
	}
}
