// Package dungeon generates levels and exposes them as immutable graphs
// of rooms, corridors, and tiles.
package dungeon

import (
	"context"
	"log/slog"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/pkg/rng"
)

// GenerateInput carries the level generation parameters
type GenerateInput struct {
	Seed            int64
	Width           int
	Height          int
	TargetRoomCount int
	// Difficulty does not change geometry; it is carried through to
	// population.
	Difficulty int
}

// GenerateOutput carries the generated level
type GenerateOutput struct {
	Graph *Graph
}

// Config holds the dependencies for the generator
type Config struct {
	Tuning config.Tuning
	Logger *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	return c.Tuning.Validate()
}

// Generator produces level graphs via recursive binary space
// partitioning. Identical inputs produce identical graphs.
type Generator struct {
	tuning config.Tuning
	logger *slog.Logger
}

// New creates a generator with the provided config
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		tuning: cfg.Tuning,
		logger: logger,
	}, nil
}

// Generate produces a level graph for the input parameters.
//
// The grid is recursively split until TargetRoomCount leaf regions
// exist, each leaf is shrunk into a room by random margins, and sibling
// subtrees are joined by an L-shaped corridor at every merge. A
// reachability pass then re-carves corridors for any unreachable room
// (bounded retries, then a direct fallback corridor), so connectivity
// always holds on return.
func (g *Generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("width", input.Width, vb)
	errors.ValidatePositive("height", input.Height, vb)
	errors.ValidatePositive("target_room_count", input.TargetRoomCount, vb)
	errors.ValidateNonNegative("difficulty", input.Difficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// Precondition: the grid must fit the requested rooms at minimum
	// size plus walls. This is the only generation failure; everything
	// past it is guaranteed to succeed.
	minRegion := g.tuning.MinRoomSize + 2
	capacity := (input.Width / minRegion) * (input.Height / minRegion)
	if capacity < input.TargetRoomCount {
		return nil, errors.GenerationFailedf(
			"%dx%d grid fits at most %d rooms of minimum size %d, need %d",
			input.Width, input.Height, capacity, g.tuning.MinRoomSize, input.TargetRoomCount).
			WithMeta("width", input.Width).
			WithMeta("height", input.Height).
			WithMeta("target_room_count", input.TargetRoomCount)
	}

	run := &generation{
		tuning:    g.tuning,
		logger:    g.logger,
		stream:    rng.New(input.Seed),
		minRegion: minRegion,
		width:     input.Width,
		height:    input.Height,
		adj:       make(map[int][]int),
	}
	run.tiles = make([][]Tile, input.Height)
	for y := range run.tiles {
		run.tiles[y] = make([]Tile, input.Width)
	}

	root := region{x: 0, y: 0, w: input.Width, h: input.Height}
	if _, err := run.split(root, input.TargetRoomCount); err != nil {
		return nil, errors.Wrap(err, "room partitioning failed")
	}

	run.repairConnectivity()
	exitRoom := run.placeStairs()

	graph := &Graph{
		width:    run.width,
		height:   run.height,
		tiles:    run.tiles,
		rooms:    run.rooms,
		corridor: run.corridors,
		adj:      run.adj,
		entrance: 0,
		exit:     run.exit,
	}

	g.logger.Info("generated level",
		"seed", input.Seed,
		"width", input.Width,
		"height", input.Height,
		"rooms", len(run.rooms),
		"corridors", len(run.corridors),
		"exit_room", exitRoom,
	)

	return &GenerateOutput{Graph: graph}, nil
}

// region is a rectangle of the grid owned by one node of the split tree
type region struct {
	x, y, w, h int
}

// generation is the working state of a single Generate call
type generation struct {
	tuning    config.Tuning
	logger    *slog.Logger
	stream    *rng.Stream
	minRegion int
	width     int
	height    int
	tiles     [][]Tile
	rooms     []Room
	corridors []Corridor
	adj       map[int][]int
	exit      entities.Position
}

// split recursively divides reg until need leaf rooms are carved,
// connecting the two subtrees of every split with a corridor. The split
// point is constrained so each side keeps enough capacity for its share
// of rooms, which is what makes the room count exact rather than
// best-effort.
func (run *generation) split(reg region, need int) ([]int, error) {
	if need == 1 {
		idx, err := run.carveRoom(reg)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil
	}

	m := run.minRegion
	vertical := reg.w >= reg.h
	if axisLen(reg, vertical)/m < 2 {
		vertical = !vertical
	}
	length := axisLen(reg, vertical)
	cross := axisLen(reg, !vertical)
	units := length / m
	rowsPerUnit := cross / m

	// Units on the left side of the cut.
	uLeft, err := run.stream.Intn(units - 1)
	if err != nil {
		return nil, err
	}
	uLeft++

	// Rooms assigned to the left side, within what both sides can hold.
	needLeftMin := need - (units-uLeft)*rowsPerUnit
	if needLeftMin < 1 {
		needLeftMin = 1
	}
	needLeftMax := uLeft * rowsPerUnit
	if needLeftMax > need-1 {
		needLeftMax = need - 1
	}
	span, err := run.stream.Intn(needLeftMax - needLeftMin + 1)
	if err != nil {
		return nil, err
	}
	needLeft := needLeftMin + span
	needRight := need - needLeft

	// Cut coordinate, leaving each side its minimum capacity.
	unitsLeftMin := ceilDiv(needLeft, rowsPerUnit)
	unitsRightMin := ceilDiv(needRight, rowsPerUnit)
	cutMin := unitsLeftMin * m
	cutMax := length - unitsRightMin*m
	offset, err := run.stream.Intn(cutMax - cutMin + 1)
	if err != nil {
		return nil, err
	}
	cut := cutMin + offset

	left, right := reg.divide(vertical, cut)
	leftRooms, err := run.split(left, needLeft)
	if err != nil {
		return nil, err
	}
	rightRooms, err := run.split(right, needRight)
	if err != nil {
		return nil, err
	}

	if err := run.connect(leftRooms, rightRooms); err != nil {
		return nil, err
	}
	return append(leftRooms, rightRooms...), nil
}

func axisLen(reg region, vertical bool) int {
	if vertical {
		return reg.w
	}
	return reg.h
}

// divide cuts the region at the given offset along the chosen axis
func (reg region) divide(vertical bool, cut int) (region, region) {
	if vertical {
		return region{x: reg.x, y: reg.y, w: cut, h: reg.h},
			region{x: reg.x + cut, y: reg.y, w: reg.w - cut, h: reg.h}
	}
	return region{x: reg.x, y: reg.y, w: reg.w, h: cut},
		region{x: reg.x, y: reg.y + cut, w: reg.w, h: reg.h - cut}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// carveRoom shrinks the region by random margins into a room interior
// and carves its floor, keeping at least a one-tile wall ring inside
// the region
func (run *generation) carveRoom(reg region) (int, error) {
	m := run.tuning.MinRoomSize

	w, err := run.randBetween(m, reg.w-2)
	if err != nil {
		return 0, err
	}
	h, err := run.randBetween(m, reg.h-2)
	if err != nil {
		return 0, err
	}
	x, err := run.randBetween(reg.x+1, reg.x+reg.w-1-w)
	if err != nil {
		return 0, err
	}
	y, err := run.randBetween(reg.y+1, reg.y+reg.h-1-h)
	if err != nil {
		return 0, err
	}

	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			run.tiles[ty][tx] = TileFloor
		}
	}

	idx := len(run.rooms)
	run.rooms = append(run.rooms, Room{Index: idx, X: x, Y: y, Width: w, Height: h})
	return idx, nil
}

// randBetween returns a uniform value in [low, high]
func (run *generation) randBetween(low, high int) (int, error) {
	span, err := run.stream.Intn(high - low + 1)
	if err != nil {
		return 0, err
	}
	return low + span, nil
}

// connect joins the nearest pair of rooms across the two subtrees
func (run *generation) connect(leftRooms, rightRooms []int) error {
	bestFrom, bestTo := leftRooms[0], rightRooms[0]
	bestDist := -1
	for _, li := range leftRooms {
		for _, ri := range rightRooms {
			d := run.rooms[li].Center().ManhattanDistance(run.rooms[ri].Center())
			if bestDist == -1 || d < bestDist {
				bestDist = d
				bestFrom, bestTo = li, ri
			}
		}
	}
	return run.carveCorridor(bestFrom, bestTo, false)
}

// carveCorridor carves an L-shaped (or straight) corridor between
// random interior points of the two rooms, marking doors where the path
// crosses a room boundary. In deterministic mode no stream values are
// drawn, which keeps repair fallbacks from disturbing the sequence
// consumed by ordinary generation.
func (run *generation) carveCorridor(fromIdx, toIdx int, deterministic bool) error {
	from := run.rooms[fromIdx]
	to := run.rooms[toIdx]

	start, end := from.Center(), to.Center()
	horizontalFirst := true
	if !deterministic {
		var err error
		if start, err = run.randomInterior(from); err != nil {
			return err
		}
		if end, err = run.randomInterior(to); err != nil {
			return err
		}
		if horizontalFirst, err = run.stream.Bool(0.5); err != nil {
			return err
		}
	}

	path := lPath(start, end, horizontalFirst)

	for _, p := range path {
		if run.roomIndexAt(p) == -1 && run.tiles[p.Y][p.X] == TileWall {
			run.tiles[p.Y][p.X] = TileFloor
		}
	}

	for i := 1; i < len(path); i++ {
		prevRoom := run.roomIndexAt(path[i-1])
		curRoom := run.roomIndexAt(path[i])
		switch {
		case prevRoom == -1 && curRoom != -1:
			if err := run.markDoor(path[i-1], curRoom, deterministic); err != nil {
				return err
			}
		case prevRoom != -1 && curRoom == -1:
			if err := run.markDoor(path[i], prevRoom, deterministic); err != nil {
				return err
			}
		}
	}

	run.corridors = append(run.corridors, Corridor{From: fromIdx, To: toIdx, Path: path})
	run.addEdge(fromIdx, toIdx)
	return nil
}

// randomInterior picks a uniform interior tile of the room
func (run *generation) randomInterior(r Room) (entities.Position, error) {
	dx, err := run.stream.Intn(r.Width)
	if err != nil {
		return entities.Position{}, err
	}
	dy, err := run.stream.Intn(r.Height)
	if err != nil {
		return entities.Position{}, err
	}
	return entities.Position{X: r.X + dx, Y: r.Y + dy}, nil
}

// markDoor converts a corridor cell on a room's wall ring into a door
// and records it on the room
func (run *generation) markDoor(p entities.Position, roomIdx int, deterministic bool) error {
	if run.tiles[p.Y][p.X].IsDoor() {
		return nil
	}
	open := false
	if !deterministic {
		var err error
		if open, err = run.stream.Bool(0.5); err != nil {
			return err
		}
	}
	if open {
		run.tiles[p.Y][p.X] = TileDoorOpen
	} else {
		run.tiles[p.Y][p.X] = TileDoorClosed
	}

	room := &run.rooms[roomIdx]
	for _, existing := range room.Doors {
		if existing == p {
			return nil
		}
	}
	room.Doors = append(room.Doors, p)
	return nil
}

// lPath returns the inclusive cell path of an axis-aligned L (or
// straight line) from a to b
func lPath(a, b entities.Position, horizontalFirst bool) []entities.Position {
	path := []entities.Position{a}
	cur := a
	walk := func(to entities.Position) {
		for cur.X != to.X {
			if to.X > cur.X {
				cur.X++
			} else {
				cur.X--
			}
			path = append(path, cur)
		}
		for cur.Y != to.Y {
			if to.Y > cur.Y {
				cur.Y++
			} else {
				cur.Y--
			}
			path = append(path, cur)
		}
	}
	if horizontalFirst {
		walk(entities.Position{X: b.X, Y: a.Y})
	} else {
		walk(entities.Position{X: a.X, Y: b.Y})
	}
	walk(b)
	return path
}

// roomIndexAt returns the index of the room whose interior contains p,
// or -1
func (run *generation) roomIndexAt(p entities.Position) int {
	for i, r := range run.rooms {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// addEdge records corridor adjacency between two rooms
func (run *generation) addEdge(a, b int) {
	if a == b {
		return
	}
	run.adj[a] = insertSorted(run.adj[a], b)
	run.adj[b] = insertSorted(run.adj[b], a)
}

// repairConnectivity re-carves corridors for rooms the entrance cannot
// reach. Splitting connects every merge, so this pass finds nothing in
// practice; it is the guarantee, not the happy path.
func (run *generation) repairConnectivity() {
	for {
		dist := bfsHops(run.adj, 0)
		missing := -1
		for idx := range run.rooms {
			if _, ok := dist[idx]; !ok {
				missing = idx
				break
			}
		}
		if missing == -1 {
			return
		}

		run.logger.Warn("room unreachable after carving, repairing",
			"room", missing,
		)

		target := run.nearestReachable(missing, dist)
		repaired := false
		for attempt := 0; attempt < run.tuning.CarveRetries; attempt++ {
			if err := run.carveCorridor(missing, target, false); err != nil {
				break
			}
			if _, ok := bfsHops(run.adj, 0)[missing]; ok {
				repaired = true
				break
			}
		}
		if !repaired {
			// Direct fallback corridor, no randomness involved.
			_ = run.carveCorridor(missing, target, true)
		}
	}
}

// nearestReachable returns the reachable room closest to the given room
// by center distance
func (run *generation) nearestReachable(idx int, dist map[int]int) int {
	best := -1
	bestDist := -1
	center := run.rooms[idx].Center()
	for other := range run.rooms {
		if other == idx {
			continue
		}
		if _, ok := dist[other]; !ok {
			continue
		}
		d := center.ManhattanDistance(run.rooms[other].Center())
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = other
		}
	}
	return best
}

// placeStairs puts the single stairs tile in the room farthest from the
// entrance by corridor hops, breaking ties toward the lower room index
func (run *generation) placeStairs() int {
	dist := bfsHops(run.adj, 0)
	exitRoom := 0
	exitDist := 0
	for idx := range run.rooms {
		if d, ok := dist[idx]; ok && d > exitDist {
			exitDist = d
			exitRoom = idx
		}
	}
	run.exit = run.rooms[exitRoom].Center()
	run.tiles[run.exit.Y][run.exit.X] = TileStairs
	return exitRoom
}

// bfsHops returns hop distances over room adjacency from the start room
func bfsHops(adj map[int][]int, start int) map[int]int {
	dist := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
