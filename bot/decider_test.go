package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cycles/game"
)

type mockGrid struct {
	width, height int
	blocked       map[game.Position]bool
}

func (g mockGrid) IsInsideGrid(p game.Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g mockGrid) IsCellEmpty(p game.Position) bool {
	return !g.blocked[p]
}

func openGrid() mockGrid {
	return mockGrid{width: 11, height: 11}
}

func blockedGrid(positions ...game.Position) mockGrid {
	grid := openGrid()
	grid.blocked = map[game.Position]bool{}
	for _, p := range positions {
		grid.blocked[p] = true
	}
	return grid
}

func TestDeciderPrefersZigzag(t *testing.T) {
	decider := NewDecider()
	pos := game.Position{X: 5, Y: 5}

	move := decider.Decide(pos, openGrid(), NewTrail(DefaultTrailCapacity))

	require.Equal(t, game.South, move, "the sweep starts downward")
}

func TestDeciderTurnsOnPrimaryAndReversesSweep(t *testing.T) {
	decider := NewDecider()
	trail := NewTrail(DefaultTrailCapacity)
	pos := game.Position{X: 5, Y: 5}

	move := decider.Decide(pos, blockedGrid(game.Position{X: 5, Y: 6}), trail)
	require.Equal(t, game.East, move, "blocked zigzag should fall through to the primary direction")

	move = decider.Decide(game.Position{X: 6, Y: 5}, openGrid(), trail)
	require.Equal(t, game.North, move, "taking the primary direction reverses the sweep")
}

func TestDeciderTriesNorthLastWithoutTogglingSweep(t *testing.T) {
	decider := NewDecider()
	trail := NewTrail(DefaultTrailCapacity)
	pos := game.Position{X: 5, Y: 5}

	move := decider.Decide(pos, blockedGrid(
		game.Position{X: 5, Y: 6}, // south
		game.Position{X: 6, Y: 5}, // east
		game.Position{X: 4, Y: 5}, // west
	), trail)
	require.Equal(t, game.North, move)

	// the sweep only reverses on the primary branch, so the next open tick
	// still heads south
	move = decider.Decide(game.Position{X: 5, Y: 4}, openGrid(), trail)
	require.Equal(t, game.South, move)
}

func TestDeciderTrappedFallsBackToPrimary(t *testing.T) {
	decider := NewDecider()
	trail := NewTrail(DefaultTrailCapacity)
	pos := game.Position{X: 5, Y: 5}
	grid := blockedGrid(
		game.Position{X: 5, Y: 6},
		game.Position{X: 5, Y: 4},
		game.Position{X: 6, Y: 5},
		game.Position{X: 4, Y: 5},
	)

	move := decider.Decide(pos, grid, trail)
	require.Equal(t, game.East, move, "a trapped bot still answers with the primary direction")

	// the fallback branch never toggles the sweep
	move = decider.Decide(pos, openGrid(), trail)
	require.Equal(t, game.South, move)
}

func TestDeciderAvoidsOwnTrail(t *testing.T) {
	decider := NewDecider()
	trail := NewTrail(DefaultTrailCapacity)
	trail.Record(game.Position{X: 5, Y: 6})
	pos := game.Position{X: 5, Y: 5}

	move := decider.Decide(pos, openGrid(), trail)

	require.Equal(t, game.East, move, "a cell on the bot's own trail is not a valid destination")
}

func TestDeciderRespectsGridBounds(t *testing.T) {
	decider := NewDecider()
	pos := game.Position{X: 5, Y: 10} // bottom edge, south leads outside

	move := decider.Decide(pos, openGrid(), NewTrail(DefaultTrailCapacity))

	require.Equal(t, game.East, move)
}

func TestDeciderSweepsWestWhenConfigured(t *testing.T) {
	decider := NewDecider(WithPrimary(game.West))
	trail := NewTrail(DefaultTrailCapacity)
	pos := game.Position{X: 5, Y: 5}

	move := decider.Decide(pos, blockedGrid(game.Position{X: 5, Y: 6}), trail)

	require.Equal(t, game.West, move)
}

func TestDeciderRejectsVerticalPrimary(t *testing.T) {
	require.Panics(t, func() { NewDecider(WithPrimary(game.North)) })
	require.Panics(t, func() { NewDecider(WithPrimary(game.South)) })
}
