package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionVectors(t *testing.T) {
	cases := []struct {
		direction Direction
		vector    Position
	}{
		{North, Position{X: 0, Y: -1}},
		{South, Position{X: 0, Y: 1}},
		{East, Position{X: 1, Y: 0}},
		{West, Position{X: -1, Y: 0}},
	}
	for _, c := range cases {
		t.Run(c.direction.String(), func(t *testing.T) {
			v, err := c.direction.Vector()
			require.NoError(t, err)
			require.Equal(t, c.vector, v)
		})
	}
}

func TestInvalidDirectionIsRejected(t *testing.T) {
	_, err := Direction(42).Vector()
	require.Error(t, err, "out-of-range directions must not map to a default vector")

	_, err = Direction(-1).MarshalText()
	require.Error(t, err)

	require.Panics(t, func() { Direction(42).Opposite() })
}

func TestDirectionOpposites(t *testing.T) {
	require.Equal(t, South, North.Opposite())
	require.Equal(t, North, South.Opposite())
	require.Equal(t, West, East.Opposite())
	require.Equal(t, East, West.Opposite())
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"north", "south", "east", "west"} {
		d, err := ParseDirection(name)
		require.NoError(t, err)
		require.Equal(t, name, d.String())
	}

	_, err := ParseDirection("up")
	require.Error(t, err)
}

func TestDirectionTextRoundTrip(t *testing.T) {
	text, err := East.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "east", string(text))

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("west")))
	require.Equal(t, West, d)

	require.Error(t, d.UnmarshalText([]byte("up")))
}
