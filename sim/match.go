package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"cycles/bot"
	"cycles/engine"
	"cycles/game"
	"cycles/sim/metrics"
)

// MaxTicks caps a single offline game so two mutually avoiding bots cannot
// spin forever.
const MaxTicks = 10000

// RunMatches plays the configured bots against each other for a number of
// games and writes per-game and per-bot CSV records.
func RunMatches(configs []metrics.BotConfig, games, width, height int, seed uint64) error {
	if len(configs) < 2 {
		return fmt.Errorf("need at least two bot configs, got %d", len(configs))
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		return fmt.Errorf("creating record writer: %w", err)
	}
	if err := writer.WriteBotConfigs(configs); err != nil {
		return fmt.Errorf("storing bot configs: %w", err)
	}

	gameRecords := []metrics.GameRecord{}
	botRecords := []metrics.BotRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Int("games", games).Msg("starting arena matches")

	for i := 0; i < games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		record, results, moves, err := runGame(i+1, configs, width, height, seed+uint64(i))
		if err != nil {
			return err
		}
		gameRecords = append(gameRecords, record)
		botRecords = append(botRecords, results...)
		moveRecords = append(moveRecords, moves...)

		log.Info().Msgf("game %d over, winner: %q", i+1, record.Winner)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("storing game records: %w", err)
	}
	if err := writer.WriteBotRecords(botRecords); err != nil {
		return fmt.Errorf("storing bot records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("storing move records: %w", err)
	}

	log.Info().Msg("finished arena matches")
	return nil
}

func runGame(id int, configs []metrics.BotConfig, width, height int, seed uint64) (metrics.GameRecord, []metrics.BotRecord, []metrics.MoveRecord, error) {
	// validate every config before any bot joins
	primaries := make([]game.Direction, len(configs))
	for i, cfg := range configs {
		primary, err := game.ParseDirection(cfg.Primary)
		if err != nil {
			return metrics.GameRecord{}, nil, nil, fmt.Errorf("bot %q: %w", cfg.Name, err)
		}
		primaries[i] = primary
	}

	arena := NewArena(width, height, seed)

	var wg sync.WaitGroup
	for i, cfg := range configs {
		capacity := cfg.TrailCapacity
		if capacity <= 0 {
			capacity = bot.DefaultTrailCapacity
		}

		comm := arena.Join(cfg.Name)
		client := engine.NewClient(cfg.Name, comm, bot.NewDecider(bot.WithPrimary(primaries[i])), bot.NewTrail(capacity))

		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := client.Run(); err != nil {
				log.Error().Err(err).Str("bot", name).Msg("bot loop failed")
			}
		}(cfg.Name)
	}

	start := time.Now()
	ticks := 0
	for arena.Step() && ticks < MaxTicks {
		ticks++
	}
	arena.Shutdown()
	wg.Wait()
	end := time.Now()

	record := metrics.GameRecord{
		ID:        id,
		Winner:    arena.Winner(),
		Ticks:     ticks,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	botRecords := make([]metrics.BotRecord, 0, len(configs))
	for i, result := range arena.Results() {
		botRecords = append(botRecords, metrics.BotRecord{
			Game:     id,
			Bot:      configs[i].ID,
			Survived: result.Ticks,
			Won:      result.Alive && result.Name == record.Winner,
		})
	}

	moves := arena.Moves()
	moveRecords := make([]metrics.MoveRecord, 0, len(moves))
	for _, event := range moves {
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game: id,
			Bot:  configs[event.Bot].ID,
			Tick: event.Frame,
			Move: event.Move.String(),
		})
	}
	return record, botRecords, moveRecords, nil
}
