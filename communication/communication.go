package communication

import "cycles/game"

// Communicator is an interface that abstracts the session with the game
// server.
type Communicator interface {
	IsActive() bool
	ReceiveGameState() (*game.GameState, error)
	SendMove(game.Direction) error
}
