package sim

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"cycles/communication"
	"cycles/game"
)

// Arena owns the authoritative grid for offline games. Each tick it pushes a
// snapshot to every live bot, applies the returned moves in join order, and
// eliminates bots that leave the grid or step onto a trail.
type Arena struct {
	grid  game.Grid
	rng   *rand.Rand
	bots  []*arenaBot
	moves []MoveEvent
	frame int
}

// MoveEvent is one move answered by a bot, in application order.
type MoveEvent struct {
	Frame int
	Bot   int // join order, 0-based
	Move  game.Direction
}

type arenaBot struct {
	id    int // 1-based, written into grid cells
	name  string
	comm  *communication.Local
	pos   game.Position
	alive bool
	ticks int
}

// Result is one bot's final standing.
type Result struct {
	Name  string
	Ticks int
	Alive bool
}

func NewArena(width, height int, seed uint64) *Arena {
	if width <= 0 || height <= 0 {
		panic("arena needs a positive grid size")
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Arena{
		grid: game.Grid{Width: width, Height: height, Cells: cells},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Join spawns a bot on a random free cell and returns the communicator its
// client loop should use. All joins must happen before the first Step.
func (a *Arena) Join(name string) *communication.Local {
	if a.frame > 0 {
		panic("bots must join before the first step")
	}
	comm := communication.NewLocal()
	id := len(a.bots) + 1
	pos := a.randomFreeCell()
	a.grid.Cells[pos.Y][pos.X] = id
	a.bots = append(a.bots, &arenaBot{
		id:    id,
		name:  name,
		comm:  comm,
		pos:   pos,
		alive: true,
	})
	log.Debug().Str("bot", name).Int("x", pos.X).Int("y", pos.Y).Msg("bot joined arena")
	return comm
}

func (a *Arena) randomFreeCell() game.Position {
	if len(a.bots) >= a.grid.Width*a.grid.Height {
		panic("no free cells left to spawn on")
	}
	for {
		p := game.Position{X: a.rng.Intn(a.grid.Width), Y: a.rng.Intn(a.grid.Height)}
		if a.grid.Cells[p.Y][p.X] == 0 {
			return p
		}
	}
}

// Step plays one tick. It returns false once fewer than two bots are alive.
func (a *Arena) Step() bool {
	a.frame++
	snapshot := a.snapshot()

	for _, b := range a.bots {
		if !b.alive {
			continue
		}
		b.comm.PushState(snapshot)
		move := b.comm.AwaitMove()
		a.moves = append(a.moves, MoveEvent{Frame: a.frame, Bot: b.id - 1, Move: move})

		vec, err := move.Vector()
		if err != nil {
			log.Error().Err(err).Str("bot", b.name).Msg("rejecting malformed move")
			a.eliminate(b)
			continue
		}
		next := b.pos.Add(vec)
		// occupancy is checked against the live grid, so a move onto a cell
		// claimed earlier this same tick is fatal too
		if !a.inside(next) || a.grid.Cells[next.Y][next.X] != 0 {
			a.eliminate(b)
			continue
		}
		a.grid.Cells[next.Y][next.X] = b.id
		b.pos = next
		b.ticks++
	}

	return a.aliveCount() > 1
}

func (a *Arena) inside(p game.Position) bool {
	return p.X >= 0 && p.X < a.grid.Width && p.Y >= 0 && p.Y < a.grid.Height
}

func (a *Arena) snapshot() *game.GameState {
	cells := make([][]int, a.grid.Height)
	for y := range cells {
		cells[y] = make([]int, a.grid.Width)
		copy(cells[y], a.grid.Cells[y])
	}
	players := make([]game.Player, 0, len(a.bots))
	for _, b := range a.bots {
		if b.alive {
			players = append(players, game.Player{Name: b.name, Position: b.pos})
		}
	}
	return &game.GameState{
		Frame:   a.frame,
		Grid:    game.Grid{Width: a.grid.Width, Height: a.grid.Height, Cells: cells},
		Players: players,
	}
}

func (a *Arena) eliminate(b *arenaBot) {
	b.alive = false
	log.Info().Str("bot", b.name).Int("frame", a.frame).Msg("bot eliminated")
}

func (a *Arena) aliveCount() int {
	count := 0
	for _, b := range a.bots {
		if b.alive {
			count++
		}
	}
	return count
}

// Winner returns the name of the last bot standing, or "" if the game ended
// without one.
func (a *Arena) Winner() string {
	if a.aliveCount() != 1 {
		return ""
	}
	for _, b := range a.bots {
		if b.alive {
			return b.name
		}
	}
	return ""
}

// Moves reports every move answered during the game, in application order.
func (a *Arena) Moves() []MoveEvent {
	return a.moves
}

// Results reports each bot's final standing, in join order.
func (a *Arena) Results() []Result {
	results := make([]Result, 0, len(a.bots))
	for _, b := range a.bots {
		results = append(results, Result{Name: b.name, Ticks: b.ticks, Alive: b.alive})
	}
	return results
}

// Shutdown closes every bot session; their loops exit on the next receive.
func (a *Arena) Shutdown() {
	for _, b := range a.bots {
		b.comm.Shutdown()
	}
}
