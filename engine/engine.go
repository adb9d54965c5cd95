package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"cycles/bot"
	"cycles/communication"
)

// ErrPlayerNotFound means a server snapshot no longer lists this bot. The
// caller is expected to treat it as fatal.
var ErrPlayerNotFound = errors.New("player not found in game state")

// Client drives one bot through the tick loop: receive a snapshot, locate
// itself, pick a move, send it, and remember the cell the move claims.
type Client struct {
	name    string
	comm    communication.Communicator
	decider *bot.Decider
	trail   *bot.Trail
}

func NewClient(name string, comm communication.Communicator, decider *bot.Decider, trail *bot.Trail) *Client {
	if name == "" {
		panic("client needs a bot name")
	}
	if comm == nil || decider == nil || trail == nil {
		panic("client needs a communicator, a decider and a trail")
	}
	return &Client{
		name:    name,
		comm:    comm,
		decider: decider,
		trail:   trail,
	}
}

// Run loops until the session ends. A nil return means the server closed the
// session; any error is fatal and the caller should exit nonzero.
func (c *Client) Run() error {
	log.Info().Str("bot", c.name).Msg("entering game loop")

	for c.comm.IsActive() {
		state, err := c.comm.ReceiveGameState()
		if errors.Is(err, io.EOF) {
			log.Info().Str("bot", c.name).Msg("server closed the session")
			return nil
		}
		if err != nil {
			return fmt.Errorf("receiving game state: %w", err)
		}

		self, ok := state.PlayerNamed(c.name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPlayerNotFound, c.name)
		}
		log.Debug().Int("frame", state.Frame).
			Int("x", self.Position.X).Int("y", self.Position.Y).
			Msgf("%s: updated position", c.name)

		move := c.decider.Decide(self.Position, state, c.trail)
		if err := c.comm.SendMove(move); err != nil {
			return fmt.Errorf("sending move: %w", err)
		}
		log.Info().Str("bot", c.name).Stringer("move", move).Msg("sent move")

		vec, err := move.Vector()
		if err != nil {
			return fmt.Errorf("recording move: %w", err)
		}
		c.trail.Record(self.Position.Add(vec))
	}

	log.Info().Str("bot", c.name).Msg("connection inactive, leaving game loop")
	return nil
}
