package content

import (
	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

// spawnAttempts bounds the position draws per spawn before the spawn is
// dropped as unplaceable.
const spawnAttempts = 16

// Spawn pins one definition to one tile.
type Spawn struct {
	DefinitionID string            `json:"definition_id"`
	Position     entities.Position `json:"position"`
}

// Plan lists everything a freshly generated level should contain. The
// session instantiates and registers the spawns in plan order.
type Plan struct {
	Monsters []Spawn `json:"monsters,omitempty"`
	Items    []Spawn `json:"items,omitempty"`
}

// Roller is the slice of the random stream population draws from
type Roller interface {
	Intn(bound int) (int, error)
	Bool(probability float64) (bool, error)
}

// PopulatePlan chooses monster and item spawns for the level. Per-room
// counts scale with difficulty through the tuning densities: the whole
// part of density*difficulty is guaranteed, the remainder spawns by
// chance. The entrance room is always left empty so the player never
// starts in melee range, the exit tile stays clear, and no two blocking
// spawns share a tile.
//
// Rooms are visited in ascending index order and every draw comes from
// the roller, so a given catalog, graph, difficulty and stream state
// always yield the same plan.
func (c *Catalog) PopulatePlan(graph *dungeon.Graph, difficulty int, tuning config.Tuning, roller Roller) (*Plan, error) {
	if graph == nil {
		return nil, errors.InvalidArgument("graph is required")
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if difficulty < 0 {
		return nil, errors.InvalidArgumentf("difficulty must not be negative, got %d", difficulty)
	}
	if err := tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tuning")
	}

	monsters := c.eligibleMonsters(difficulty)
	items := c.Items()
	totalWeight := 0
	for _, it := range items {
		totalWeight += it.Rarity.weight()
	}

	plan := &Plan{}
	blocked := make(map[entities.Position]struct{})

	for index := 0; index < graph.RoomCount(); index++ {
		if index == graph.Entrance() {
			continue
		}

		count, err := scaledCount(tuning.MonsterDensity, difficulty, roller)
		if err != nil {
			return nil, err
		}
		for n := 0; n < count && len(monsters) > 0; n++ {
			pick, err := roller.Intn(len(monsters))
			if err != nil {
				return nil, err
			}
			pos, ok, err := placeSpawn(graph, index, roller, blocked)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			blocked[pos] = struct{}{}
			plan.Monsters = append(plan.Monsters, Spawn{
				DefinitionID: monsters[pick].ID,
				Position:     pos,
			})
		}

		count, err = scaledCount(tuning.ItemDensity, difficulty, roller)
		if err != nil {
			return nil, err
		}
		for n := 0; n < count && totalWeight > 0; n++ {
			pick, err := pickWeighted(items, totalWeight, roller)
			if err != nil {
				return nil, err
			}
			pos, ok, err := placeSpawn(graph, index, roller, blocked)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			plan.Items = append(plan.Items, Spawn{
				DefinitionID: items[pick].ID,
				Position:     pos,
			})
		}
	}

	return plan, nil
}

// eligibleMonsters returns the definitions whose challenge fits the
// difficulty, in document order. When nothing fits yet the weakest tier
// present stands in, so shallow levels of a hard catalog still spawn.
func (c *Catalog) eligibleMonsters(difficulty int) []MonsterDocument {
	eligible := make([]MonsterDocument, 0, len(c.monsterIDs))
	for _, id := range c.monsterIDs {
		if m := c.monsters[id]; m.Challenge <= difficulty {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) > 0 || len(c.monsterIDs) == 0 {
		return eligible
	}

	lowest := 0
	for _, id := range c.monsterIDs {
		if m := c.monsters[id]; lowest == 0 || m.Challenge < lowest {
			lowest = m.Challenge
		}
	}
	for _, id := range c.monsterIDs {
		if m := c.monsters[id]; m.Challenge == lowest {
			eligible = append(eligible, m)
		}
	}
	return eligible
}

// scaledCount turns a fractional per-room expectation into a count: the
// whole part is guaranteed, the remainder spawns by chance. The chance
// draw happens even when the remainder is zero, so the stream position
// depends only on the number of rooms visited.
func scaledCount(density float64, difficulty int, roller Roller) (int, error) {
	expected := density * float64(difficulty)
	count := int(expected)
	extra, err := roller.Bool(expected - float64(count))
	if err != nil {
		return 0, err
	}
	if extra {
		count++
	}
	return count, nil
}

// placeSpawn draws interior tiles until one is free. The exit tile and
// tiles claimed by a blocking spawn are skipped; a room that stays
// crowded after spawnAttempts draws yields one fewer spawn.
func placeSpawn(graph *dungeon.Graph, index int, roller Roller, blocked map[entities.Position]struct{}) (entities.Position, bool, error) {
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		pos, err := graph.RandomFloor(index, roller)
		if err != nil {
			return entities.Position{}, false, err
		}
		if pos == graph.ExitTile() {
			continue
		}
		if _, taken := blocked[pos]; taken {
			continue
		}
		return pos, true, nil
	}
	return entities.Position{}, false, nil
}

func pickWeighted(items []ItemDocument, totalWeight int, roller Roller) (int, error) {
	roll, err := roller.Intn(totalWeight)
	if err != nil {
		return 0, err
	}
	for i, it := range items {
		roll -= it.Rarity.weight()
		if roll < 0 {
			return i, nil
		}
	}
	return len(items) - 1, nil
}
