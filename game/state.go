package game

import "cycles/utils"

// Player is one connected bot as reported by the server: its name and the
// current head position.
type Player struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Grid is the occupancy part of a snapshot. Cells are indexed [y][x]; zero
// means the cell is free, any other value is the id of the player whose
// trail holds it.
type Grid struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  [][]int `json:"cells"`
}

// GameState is one per-tick snapshot pushed by the server. stuff that changes
// every tick: the occupancy grid and where every live player currently is.
type GameState struct {
	Frame   int      `json:"frame"`
	Grid    Grid     `json:"grid"`
	Players []Player `json:"players"`
}

// IsInsideGrid reports whether p is within the grid bounds.
func (gs *GameState) IsInsideGrid(p Position) bool {
	return p.X >= 0 && p.X < gs.Grid.Width && p.Y >= 0 && p.Y < gs.Grid.Height
}

// IsCellEmpty reports whether the cell at p holds no trail. Out-of-bounds
// positions count as occupied.
func (gs *GameState) IsCellEmpty(p Position) bool {
	if !gs.IsInsideGrid(p) {
		return false
	}
	return gs.Grid.Cells[p.Y][p.X] == 0
}

// PlayerNamed finds a player entry by name in the snapshot.
func (gs *GameState) PlayerNamed(name string) (Player, bool) {
	i := utils.FindIndexFunc(gs.Players, func(p Player) bool {
		return p.Name == name
	})
	if i < 0 {
		return Player{}, false
	}
	return gs.Players[i], true
}
