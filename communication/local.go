package communication

import (
	"io"

	"cycles/game"
)

// Local bridges a bot to an in-process arena without a socket. The arena
// pushes one snapshot per tick and collects the bot's reply; the exchange is
// strictly alternating, like the wire protocol.
type Local struct {
	states   chan *game.GameState
	moves    chan game.Direction
	inactive bool
}

func NewLocal() *Local {
	return &Local{
		states: make(chan *game.GameState),
		moves:  make(chan game.Direction),
	}
}

// Bot side.

func (l *Local) IsActive() bool {
	return !l.inactive
}

func (l *Local) ReceiveGameState() (*game.GameState, error) {
	state, ok := <-l.states
	if !ok {
		l.inactive = true
		return nil, io.EOF
	}
	return state, nil
}

func (l *Local) SendMove(move game.Direction) error {
	l.moves <- move
	return nil
}

// Arena side.

// PushState hands the next snapshot to the bot; it blocks until the bot's
// loop picks it up.
func (l *Local) PushState(state *game.GameState) {
	l.states <- state
}

// AwaitMove blocks until the bot answers the last pushed snapshot.
func (l *Local) AwaitMove() game.Direction {
	return <-l.moves
}

// Shutdown ends the session; the bot's next receive reports io.EOF.
func (l *Local) Shutdown() {
	close(l.states)
}
