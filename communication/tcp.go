package communication

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"

	"cycles/game"
)

// Connection is the TCP client side of the arena protocol: newline-delimited
// JSON, one snapshot in and one move out per tick.
type Connection struct {
	name    string
	conn    net.Conn
	reader  *bufio.Reader
	encoder *json.Encoder
	active  bool
}

type helloMessage struct {
	Name string `json:"name"`
}

type moveMessage struct {
	Name string         `json:"name"`
	Move game.Direction `json:"move"`
}

// Connect dials the server and announces the bot's name.
func Connect(addr, name string) (*Connection, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	return NewConnection(conn, name)
}

// NewConnection wraps an established conn and sends the hello message.
func NewConnection(conn net.Conn, name string) (*Connection, error) {
	c := &Connection{
		name:    name,
		conn:    conn,
		reader:  bufio.NewReader(conn),
		encoder: json.NewEncoder(conn),
		active:  true,
	}
	if err := c.encoder.Encode(helloMessage{Name: name}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("announcing name: %w", err)
	}
	return c, nil
}

func (c *Connection) IsActive() bool {
	return c.active
}

// ReceiveGameState blocks until the next snapshot line arrives. io.EOF is
// returned as-is so the caller can treat a server close as a clean shutdown.
func (c *Connection) ReceiveGameState() (*game.GameState, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		c.active = false
		return nil, err
	}
	var state game.GameState
	if err := json.Unmarshal(line, &state); err != nil {
		return nil, fmt.Errorf("decoding game state: %w", err)
	}
	return &state, nil
}

func (c *Connection) SendMove(move game.Direction) error {
	if err := c.encoder.Encode(moveMessage{Name: c.name, Move: move}); err != nil {
		c.active = false
		return fmt.Errorf("encoding move: %w", err)
	}
	return nil
}

func (c *Connection) Close() error {
	c.active = false
	return c.conn.Close()
}
