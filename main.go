package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cycles/bot"
	"cycles/communication"
	"cycles/config"
	"cycles/engine"
	"cycles/sim"
	"cycles/sim/metrics"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		name       = flag.String("name", "", "bot name (overrides config)")
		server     = flag.String("server", "", "server address (overrides config)")
		simulate   = flag.Bool("sim", false, "run offline arena games instead of connecting")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *name != "" {
		cfg.Name = *name
	}
	if *server != "" {
		cfg.Server = *server
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *simulate {
		runArena(cfg)
		return
	}
	runClient(cfg)
}

func runClient(cfg config.Config) {
	conn, err := communication.Connect(cfg.Server, cfg.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to server")
	}
	defer conn.Close()
	log.Info().Str("bot", cfg.Name).Str("server", cfg.Server).Msg("connected to server")

	client := engine.NewClient(cfg.Name, conn, bot.NewDecider(), bot.NewTrail(cfg.TrailCapacity))
	if err := client.Run(); err != nil {
		log.Fatal().Err(err).Msg("bot encountered a critical error")
	}
}

func runArena(cfg config.Config) {
	configs := []metrics.BotConfig{
		{ID: 1, Name: "east-sweeper", Primary: "east", TrailCapacity: cfg.TrailCapacity},
		{ID: 2, Name: "west-sweeper", Primary: "west", TrailCapacity: cfg.TrailCapacity},
	}
	if err := sim.RunMatches(configs, cfg.Sim.Games, cfg.Sim.Width, cfg.Sim.Height, cfg.Sim.Seed); err != nil {
		log.Fatal().Err(err).Msg("arena run failed")
	}
}
