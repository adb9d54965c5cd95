package game

// Position is an integer coordinate on the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}
