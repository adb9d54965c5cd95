package engine

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"cycles/bot"
	"cycles/game"
)

// scriptedComm feeds a fixed sequence of snapshots and records sent moves.
type scriptedComm struct {
	states []*game.GameState
	sent   []game.Direction
	next   int
}

func (c *scriptedComm) IsActive() bool {
	return true
}

func (c *scriptedComm) ReceiveGameState() (*game.GameState, error) {
	if c.next >= len(c.states) {
		return nil, io.EOF
	}
	state := c.states[c.next]
	c.next++
	return state, nil
}

func (c *scriptedComm) SendMove(move game.Direction) error {
	c.sent = append(c.sent, move)
	return nil
}

func openState(frame int, self game.Position) *game.GameState {
	cells := make([][]int, 8)
	for y := range cells {
		cells[y] = make([]int, 8)
	}
	return &game.GameState{
		Frame:   frame,
		Grid:    game.Grid{Width: 8, Height: 8, Cells: cells},
		Players: []game.Player{{Name: "tester", Position: self}},
	}
}

func TestClientPlaysUntilSessionEnds(t *testing.T) {
	comm := &scriptedComm{states: []*game.GameState{
		openState(1, game.Position{X: 3, Y: 3}),
		openState(2, game.Position{X: 3, Y: 4}),
	}}
	client := NewClient("tester", comm, bot.NewDecider(), bot.NewTrail(bot.DefaultTrailCapacity))

	err := client.Run()

	require.NoError(t, err, "EOF from the server is a clean shutdown")
	require.Equal(t, []game.Direction{game.South, game.South}, comm.sent)
}

func TestClientTrailBlocksRevisit(t *testing.T) {
	// the server keeps reporting the old position, so the cell claimed on the
	// first tick must be vetoed by the trail on the second
	comm := &scriptedComm{states: []*game.GameState{
		openState(1, game.Position{X: 3, Y: 3}),
		openState(2, game.Position{X: 3, Y: 3}),
	}}
	client := NewClient("tester", comm, bot.NewDecider(), bot.NewTrail(bot.DefaultTrailCapacity))

	err := client.Run()

	require.NoError(t, err)
	require.Equal(t, []game.Direction{game.South, game.East}, comm.sent)
}

func TestClientFatalWhenSelfMissing(t *testing.T) {
	state := openState(1, game.Position{X: 3, Y: 3})
	state.Players = []game.Player{{Name: "someone-else", Position: game.Position{X: 0, Y: 0}}}
	comm := &scriptedComm{states: []*game.GameState{state}}
	client := NewClient("tester", comm, bot.NewDecider(), bot.NewTrail(bot.DefaultTrailCapacity))

	err := client.Run()

	require.ErrorIs(t, err, ErrPlayerNotFound)
	require.Empty(t, comm.sent)
}

func TestNewClientRejectsBadArguments(t *testing.T) {
	comm := &scriptedComm{}
	require.Panics(t, func() { NewClient("", comm, bot.NewDecider(), bot.NewTrail(1)) })
	require.Panics(t, func() { NewClient("tester", nil, bot.NewDecider(), bot.NewTrail(1)) })
	require.Panics(t, func() { NewClient("tester", comm, nil, bot.NewTrail(1)) })
	require.Panics(t, func() { NewClient("tester", comm, bot.NewDecider(), nil) })
}
