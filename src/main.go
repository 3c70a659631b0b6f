package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/env"
	"elevsim/src/utils"
)

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.NumFloors, "floors", config.NumFloors, "Number of floors")
	flag.IntVar(&cfg.NumElevators, "elevators", config.NumElevators, "Number of elevators")
	flag.IntVar(&cfg.Capacity, "capacity", config.Capacity, "Passengers per elevator")
	flag.IntVar(&cfg.Speed, "speed", config.Speed, "Floors per tick")
	flag.IntVar(&cfg.DoorCloseTicks, "door-close", config.DoorCloseTicks, "Ticks before open doors close, 0 keeps them open")
	flag.IntVar(&cfg.EpisodeLength, "episode", config.EpisodeLength, "Ticks per episode")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Seed for passenger arrivals")
	episodes := flag.Int("episodes", 1, "Number of episodes to run")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	flag.Parse()

	if err := run(cfg, *episodes, *logLevel, *logFile); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

// run sets up logging and plays the requested episodes with the baseline dispatcher.
func run(cfg config.Config, episodes int, logLevel, logFile string) error {
	cleanup, err := utils.InitLogger(logLevel, logFile)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer cleanup()

	simEnv, err := env.New(cfg)
	if err != nil {
		return fmt.Errorf("create environment: %w", err)
	}

	for episode := range episodes {
		if episode > 0 {
			if _, err := simEnv.Reset(); err != nil {
				return fmt.Errorf("reset environment: %w", err)
			}
		}

		agent := dispatcher.New()
		b := simEnv.Building()
		obs := b.Observe()
		for {
			result := simEnv.Step(agent.Next(b.Elevators(), obs))
			obs = result.Observation
			if result.Done || result.Truncated {
				break
			}
		}

		summary := simEnv.Summary()
		slog.Info("Episode summary",
			"episode", episode,
			"id", summary.EpisodeID,
			"reward", summary.TotalReward,
			"spawned", summary.Spawned,
			"delivered", summary.Delivered,
			"waiting", summary.Waiting,
			"onboard", summary.Onboard)
	}
	return nil
}
