package bot

import (
	"github.com/rs/zerolog/log"

	"cycles/game"
)

// GridQuery answers whether a destination cell is available this tick. The
// per-tick snapshot satisfies it.
type GridQuery interface {
	IsInsideGrid(game.Position) bool
	IsCellEmpty(game.Position) bool
}

// Decider picks one cardinal move per tick with a serpentine fill strategy:
// run vertically until blocked, step once in the primary direction, then
// sweep back vertically the other way.
type Decider struct {
	primary    game.Direction
	movingDown bool
}

type Option func(*Decider)

// WithPrimary overrides the forward direction of the sweep. Only east and
// west are meaningful; the vertical axis is reserved for the zigzag.
func WithPrimary(d game.Direction) Option {
	return func(dec *Decider) {
		if d != game.East && d != game.West {
			panic("primary direction must be east or west")
		}
		dec.primary = d
	}
}

func NewDecider(options ...Option) *Decider {
	d := &Decider{
		primary:    game.East,
		movingDown: true,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decide returns the move for this tick. The candidates are tried in a fixed
// order: the current zigzag direction, the primary direction (which reverses
// the zigzag for the next sweep), the reverse of the primary, and finally the
// vertical direction not yet tried. When every candidate is blocked the
// primary direction is returned anyway; no better move exists.
func (d *Decider) Decide(pos game.Position, grid GridQuery, trail *Trail) game.Direction {
	zigzag := game.North
	if d.movingDown {
		zigzag = game.South
	}

	if validMove(pos, zigzag, grid, trail) {
		return zigzag
	}

	if validMove(pos, d.primary, grid, trail) {
		d.movingDown = !d.movingDown // reverse the sweep after stepping forward
		return d.primary
	}

	for _, dir := range []game.Direction{d.primary.Opposite(), zigzag.Opposite()} {
		if validMove(pos, dir, grid, trail) {
			return dir
		}
	}

	log.Warn().Stringer("fallback", d.primary).Msg("no valid moves available")
	return d.primary
}

// validMove reports whether stepping from pos toward dir lands on a free
// cell: inside the grid, unoccupied, and not on the bot's own recent trail.
func validMove(pos game.Position, dir game.Direction, grid GridQuery, trail *Trail) bool {
	vec, err := dir.Vector()
	if err != nil {
		// candidates are fixed package constants
		panic(err)
	}
	next := pos.Add(vec)
	if !grid.IsInsideGrid(next) {
		return false
	}
	if !grid.IsCellEmpty(next) {
		return false
	}
	if trail.Contains(next) {
		return false
	}
	return true
}
