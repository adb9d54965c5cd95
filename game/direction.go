package game

import "fmt"

// Direction is one of the four cardinal moves a bot can make per tick.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

var directionVectors = map[Direction]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

// Vector returns the unit offset for d. A value outside the four cardinals
// is a programming fault and is reported rather than substituted with a
// default direction.
func (d Direction) Vector() (Position, error) {
	v, ok := directionVectors[d]
	if !ok {
		return Position{}, fmt.Errorf("invalid direction %d", int(d))
	}
	return v, nil
}

// Opposite returns the reverse of d. It panics on values outside the four
// cardinals, which can only come from a bug in the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

func (d Direction) String() string {
	name, ok := directionNames[d]
	if !ok {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return name
}

// ParseDirection maps a wire or config name to a Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// MarshalText encodes d by name so moves travel as strings on the wire.
func (d Direction) MarshalText() ([]byte, error) {
	name, ok := directionNames[d]
	if !ok {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(name), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
