package metrics

import "time"

// BotConfig identifies one bot setup across recorded games.
type BotConfig struct {
	ID            int
	Name          string
	Primary       string // "east" or "west"
	TrailCapacity int
}

// GameRecord is the outcome of one offline game.
type GameRecord struct {
	ID        int
	Winner    string // empty on a draw
	Ticks     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// BotRecord is one bot's result within a game.
type BotRecord struct {
	Game     int // GameRecord.ID
	Bot      int // BotConfig.ID
	Survived int // ticks alive
	Won      bool
}

// MoveRecord is one move a bot answered within a game.
type MoveRecord struct {
	Game int // GameRecord.ID
	Bot  int // BotConfig.ID
	Tick int
	Move string
}
