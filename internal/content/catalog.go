// Package content holds the data-driven monster and item catalog. The
// definitions ship embedded in the binary; hosts can overlay their own
// authoring files through LoadReader. Documents carry jsonschema tags so
// the authoring contract can be exported as a machine-readable schema.
package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ziyadedher/skrish/internal/ai"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

//go:embed definitions.json
var embeddedDefinitions []byte

// Document is the on-disk shape of a definitions file. It is exported so
// tooling (e.g. schema generators) can reflect over the authoring
// contract shared with designers.
type Document struct {
	Monsters []MonsterDocument `json:"monsters" jsonschema:"title=Monsters,description=Monster definitions available to the level populator.,required"`
	Items    []ItemDocument    `json:"items" jsonschema:"title=Items,description=Item definitions available to the level populator.,required"`
}

// MonsterDocument describes one monster type.
type MonsterDocument struct {
	ID        string        `json:"id" jsonschema:"title=Monster ID,description=Stable identifier referenced by spawn plans and journals.,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Name      string        `json:"name" jsonschema:"title=Name,description=Display name.,minLength=1,required"`
	Glyph     string        `json:"glyph" jsonschema:"title=Glyph,description=Single-character map symbol.,minLength=1,maxLength=1,required"`
	Stats     StatsDocument `json:"stats" jsonschema:"title=Stats,description=Base stat block applied on spawn.,required"`
	AI        string        `json:"ai" jsonschema:"title=AI Policy,description=Policy that drives the monster each round.,enum=chase,enum=wander,enum=idle,required"`
	Challenge int           `json:"challenge" jsonschema:"title=Challenge,description=Difficulty tier the monster first appears at.,minimum=1,required"`
}

// StatsDocument is the authored stat block. Health doubles as maximum
// and starting hit points.
type StatsDocument struct {
	Health  int `json:"health" jsonschema:"title=Health,description=Maximum and starting hit points.,minimum=1,required"`
	Attack  int `json:"attack" jsonschema:"title=Attack,description=Base attack power.,minimum=0,required"`
	Defense int `json:"defense" jsonschema:"title=Defense,description=Flat damage reduction.,minimum=0,required"`
	Speed   int `json:"speed" jsonschema:"title=Speed,description=Initiative weight for turn order.,minimum=0,required"`
}

// ItemDocument describes one consumable item type.
type ItemDocument struct {
	ID     string         `json:"id" jsonschema:"title=Item ID,description=Stable identifier referenced by spawn plans and journals.,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Name   string         `json:"name" jsonschema:"title=Name,description=Display name.,minLength=1,required"`
	Glyph  string         `json:"glyph" jsonschema:"title=Glyph,description=Single-character map symbol.,minLength=1,maxLength=1,required"`
	Effect EffectDocument `json:"effect" jsonschema:"title=Effect,description=What using the item does to the user.,required"`
	Rarity Rarity         `json:"rarity" jsonschema:"title=Rarity,description=Spawn weight tier.,enum=common,enum=uncommon,enum=rare,required"`
}

// EffectDocument describes the single effect an item applies when used.
type EffectDocument struct {
	Kind      EffectKind `json:"kind" jsonschema:"title=Effect Kind,description=Which mutation the effect performs.,enum=heal,enum=fortify-attack,enum=fortify-defense,enum=haste,enum=cure-poison,required"`
	Magnitude int        `json:"magnitude,omitempty" jsonschema:"title=Magnitude,description=Hit points restored or stat points granted.,minimum=0"`
	Duration  int        `json:"duration,omitempty" jsonschema:"title=Duration,description=Rounds a granted status lasts.,minimum=0"`
}

// EffectKind selects the mutation an item performs on its user.
type EffectKind string

// Effect kinds
const (
	EffectHeal           EffectKind = "heal"
	EffectFortifyAttack  EffectKind = "fortify-attack"
	EffectFortifyDefense EffectKind = "fortify-defense"
	EffectHaste          EffectKind = "haste"
	EffectCurePoison     EffectKind = "cure-poison"
)

// EffectKinds lists the known effect kinds in deterministic order
var EffectKinds = []EffectKind{
	EffectHeal,
	EffectFortifyAttack,
	EffectFortifyDefense,
	EffectHaste,
	EffectCurePoison,
}

// Valid reports whether the kind is a known effect
func (k EffectKind) Valid() bool {
	for _, known := range EffectKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Rarity is an item's spawn weight tier.
type Rarity string

// Rarity tiers
const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Valid reports whether the rarity is a known tier
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare:
		return true
	}
	return false
}

// weight is the pick weight the populator gives the tier.
func (r Rarity) weight() int {
	switch r {
	case RarityCommon:
		return 6
	case RarityUncommon:
		return 3
	default:
		return 1
	}
}

// Catalog is a validated, indexed set of definitions. Lookup results are
// values; mutating them never touches the catalog.
type Catalog struct {
	monsters   map[string]MonsterDocument
	items      map[string]ItemDocument
	monsterIDs []string
	itemIDs    []string
}

// Load parses the definitions bundled into the binary.
func Load() (*Catalog, error) {
	return LoadBytes(embeddedDefinitions)
}

// LoadReader parses definitions from an external source, e.g. an
// authoring override file supplied by the host.
func LoadReader(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, errors.InvalidArgument("reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read definitions")
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a raw definitions document. It fails
// with INVALID_ARGUMENT on malformed JSON, unknown fields, duplicate
// ids, non-positive stats, or unknown ai/effect/rarity names.
func LoadBytes(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidArgument("definitions are empty")
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse definitions")
	}

	return compile(&doc)
}

// compile validates the document and builds the indexed catalog.
// Definition order is preserved so random picks stay deterministic.
func compile(doc *Document) (*Catalog, error) {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]struct{}, len(doc.Monsters)+len(doc.Items))

	c := &Catalog{
		monsters:   make(map[string]MonsterDocument, len(doc.Monsters)),
		items:      make(map[string]ItemDocument, len(doc.Items)),
		monsterIDs: make([]string, 0, len(doc.Monsters)),
		itemIDs:    make([]string, 0, len(doc.Items)),
	}

	for i, m := range doc.Monsters {
		field := monsterField(i, m.ID)
		if m.ID == "" {
			vb.Field(field, "id is required")
			continue
		}
		if _, dup := seen[m.ID]; dup {
			vb.Fieldf(field, "duplicate id %q", m.ID)
			continue
		}
		seen[m.ID] = struct{}{}

		if m.Name == "" {
			vb.Field(field, "name is required")
		}
		validateGlyph(field, m.Glyph, vb)
		if m.Stats.Health < 1 {
			vb.Fieldf(field, "health must be positive, got %d", m.Stats.Health)
		}
		if m.Stats.Attack < 0 || m.Stats.Defense < 0 || m.Stats.Speed < 0 {
			vb.Field(field, "attack, defense and speed must not be negative")
		}
		if !ai.ValidPolicy(m.AI) {
			vb.Fieldf(field, "unknown ai policy %q", m.AI)
		}
		if m.Challenge < 1 {
			vb.Fieldf(field, "challenge must be positive, got %d", m.Challenge)
		}

		c.monsters[m.ID] = m
		c.monsterIDs = append(c.monsterIDs, m.ID)
	}

	for i, it := range doc.Items {
		field := itemField(i, it.ID)
		if it.ID == "" {
			vb.Field(field, "id is required")
			continue
		}
		if _, dup := seen[it.ID]; dup {
			vb.Fieldf(field, "duplicate id %q", it.ID)
			continue
		}
		seen[it.ID] = struct{}{}

		if it.Name == "" {
			vb.Field(field, "name is required")
		}
		validateGlyph(field, it.Glyph, vb)
		if !it.Rarity.Valid() {
			vb.Fieldf(field, "unknown rarity %q", it.Rarity)
		}
		validateEffect(field, it.Effect, vb)

		c.items[it.ID] = it
		c.itemIDs = append(c.itemIDs, it.ID)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func validateGlyph(field, glyph string, vb *errors.ValidationBuilder) {
	if len([]rune(glyph)) != 1 {
		vb.Fieldf(field, "glyph must be a single character, got %q", glyph)
	}
}

// validateEffect checks the fields each effect kind actually consumes.
// Haste's speed bonus comes from tuning, so only its duration is
// authored; cure-poison carries no parameters at all.
func validateEffect(field string, effect EffectDocument, vb *errors.ValidationBuilder) {
	if !effect.Kind.Valid() {
		vb.Fieldf(field, "unknown effect kind %q", effect.Kind)
		return
	}
	switch effect.Kind {
	case EffectHeal, EffectFortifyAttack, EffectFortifyDefense:
		if effect.Magnitude < 1 {
			vb.Fieldf(field, "effect %s needs a positive magnitude, got %d", effect.Kind, effect.Magnitude)
		}
	case EffectHaste:
		if effect.Duration < 1 {
			vb.Fieldf(field, "effect %s needs a positive duration, got %d", effect.Kind, effect.Duration)
		}
	}
}

func monsterField(index int, id string) string {
	if id == "" {
		return "monsters[" + strconv.Itoa(index) + "]"
	}
	return "monsters." + id
}

func itemField(index int, id string) string {
	if id == "" {
		return "items[" + strconv.Itoa(index) + "]"
	}
	return "items." + id
}

// Monster returns the definition for the id.
func (c *Catalog) Monster(id string) (MonsterDocument, bool) {
	doc, ok := c.monsters[id]
	return doc, ok
}

// Item returns the definition for the id.
func (c *Catalog) Item(id string) (ItemDocument, bool) {
	doc, ok := c.items[id]
	return doc, ok
}

// Monsters returns every monster definition in document order.
func (c *Catalog) Monsters() []MonsterDocument {
	out := make([]MonsterDocument, 0, len(c.monsterIDs))
	for _, id := range c.monsterIDs {
		out = append(out, c.monsters[id])
	}
	return out
}

// Items returns every item definition in document order.
func (c *Catalog) Items() []ItemDocument {
	out := make([]ItemDocument, 0, len(c.itemIDs))
	for _, id := range c.itemIDs {
		out = append(out, c.items[id])
	}
	return out
}

// Instantiate builds a fresh monster entity from the definition. The
// caller owns id assignment and placement.
func (d MonsterDocument) Instantiate(id string, pos entities.Position) *entities.Entity {
	return &entities.Entity{
		ID:       id,
		Kind:     entities.KindMonster,
		Name:     d.Name,
		Glyph:    d.Glyph,
		Position: pos,
		Stats: entities.StatBlock{
			MaxHealth: d.Stats.Health,
			Health:    d.Stats.Health,
			Attack:    d.Stats.Attack,
			Defense:   d.Stats.Defense,
			Speed:     d.Stats.Speed,
		},
		AIPolicy:     d.AI,
		DefinitionID: d.ID,
	}
}

// Instantiate builds a fresh item entity from the definition.
func (d ItemDocument) Instantiate(id string, pos entities.Position) *entities.Entity {
	return &entities.Entity{
		ID:           id,
		Kind:         entities.KindItem,
		Name:         d.Name,
		Glyph:        d.Glyph,
		Position:     pos,
		DefinitionID: d.ID,
	}
}
