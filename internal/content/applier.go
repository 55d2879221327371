package content

import (
	"log/slog"

	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

//go:generate mockgen -destination=mock/mock_store.go -package=contentmock github.com/ziyadedher/skrish/internal/content EntityStore

// EntityStore is the slice of the registry the applier mutates
type EntityStore interface {
	Get(id string) (*entities.Entity, error)
	Heal(id string, amount int) error
	AdjustAttack(id string, delta int) error
	AdjustDefense(id string, delta int) error
	ApplyStatus(id string, effect entities.StatusEffect, duration int) error
	ClearStatus(id string, effect entities.StatusEffect) error
	Remove(id string) error
}

// ApplierConfig holds the applier dependencies
type ApplierConfig struct {
	Catalog *Catalog
	Store   EntityStore
	Logger  *slog.Logger
}

// Validate ensures the config is complete
func (c *ApplierConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	return vb.Build()
}

// Applier resolves an item entity to its catalog effect and applies it
// to the user. A successfully applied item is consumed: it leaves the
// store before Apply returns.
type Applier struct {
	catalog *Catalog
	store   EntityStore
	logger  *slog.Logger
}

// NewApplier creates an applier from the config
func NewApplier(cfg *ApplierConfig) (*Applier, error) {
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

	return &Applier{
		catalog: cfg.Catalog,
		store:   cfg.Store,
		logger:  logger,
	}, nil
}

// Apply uses the item on the user. The item is consumed only after its
// effect lands; any failure leaves both the user and the item untouched.
func (a *Applier) Apply(userID, itemID string) error {
	if userID == "" {
		return errors.InvalidArgument("user id is required")
	}
	if itemID == "" {
		return errors.InvalidArgument("item id is required")
	}

	item, err := a.store.Get(itemID)
	if err != nil {
		return err
	}
	if item.Kind != entities.KindItem {
		return errors.InvalidActionf("entity %s is not an item", itemID).
			WithMeta("item_id", itemID).
			WithMeta("kind", string(item.Kind))
	}

	doc, ok := a.catalog.Item(item.DefinitionID)
	if !ok {
		return errors.InvalidActionf("item %s has no definition %q", itemID, item.DefinitionID).
			WithMeta("item_id", itemID).
			WithMeta("definition_id", item.DefinitionID)
	}

	if err := a.applyEffect(userID, doc.Effect); err != nil {
		return err
	}
	if err := a.store.Remove(itemID); err != nil {
		return err
	}

	a.logger.Debug("item applied",
		"user_id", userID,
		"item_id", itemID,
		"definition_id", doc.ID,
		"effect", string(doc.Effect.Kind))
	return nil
}

func (a *Applier) applyEffect(userID string, effect EffectDocument) error {
	switch effect.Kind {
	case EffectHeal:
		return a.store.Heal(userID, effect.Magnitude)
	case EffectFortifyAttack:
		return a.store.AdjustAttack(userID, effect.Magnitude)
	case EffectFortifyDefense:
		return a.store.AdjustDefense(userID, effect.Magnitude)
	case EffectHaste:
		return a.store.ApplyStatus(userID, entities.StatusHasted, effect.Duration)
	case EffectCurePoison:
		return a.store.ClearStatus(userID, entities.StatusPoisoned)
	default:
		return errors.InvalidActionf("unknown effect kind: %s", effect.Kind)
	}
}
