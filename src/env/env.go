package env

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"elevsim/src/building"
	"elevsim/src/config"
	"elevsim/src/types"
)

// Env runs fixed-length episodes over a Building, one action per tick.
type Env struct {
	cfg       config.Config
	rng       *rand.Rand
	building  *building.Building
	episodeID uuid.UUID
	tick      int

	totalReward    float64
	invalidActions int
}

// Summary describes a finished or running episode.
type Summary struct {
	EpisodeID      uuid.UUID
	Ticks          int
	TotalReward    float64
	InvalidActions int
	Spawned        int
	Delivered      int
	Waiting        int
	Onboard        int
}

// New validates cfg and starts the first episode. All episodes draw from one
// generator seeded with cfg.Seed, so a run of episodes replays exactly.
func New(cfg config.Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env := &Env{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}
	if _, err := env.Reset(); err != nil {
		return nil, err
	}
	return env, nil
}

// Reset replaces the building with a fresh one and returns its first observation.
func (env *Env) Reset() (types.State, error) {
	b, err := building.New(env.cfg, env.rng)
	if err != nil {
		return types.State{}, err
	}
	env.building = b
	env.episodeID = uuid.New()
	env.tick = 0
	env.totalReward = 0
	env.invalidActions = 0

	slog.Info("Episode started", "episode", env.episodeID, "floors", env.cfg.NumFloors, "elevators", env.cfg.NumElevators)
	return env.observe(), nil
}

// Step advances one tick and applies action.
//   - an out-of-range action is penalised and the building does not move
//   - otherwise the building steps first, then the action is applied
func (env *Env) Step(action types.Action) types.StepResult {
	env.tick++

	var reward float64
	if env.validAction(action) {
		env.building.Step(env.tick)
		reward = env.building.TakeAction(action)
	} else {
		slog.Warn("Invalid action", "episode", env.episodeID, "tick", env.tick, "action", action)
		reward = config.InvalidActionPenalty
		env.invalidActions++
	}
	env.totalReward += reward

	result := types.StepResult{
		Observation: env.observe(),
		Reward:      reward,
		Done:        env.tick >= env.cfg.EpisodeLength,
		Info:        env.info(),
	}
	if result.Done {
		slog.Info("Episode finished", "episode", env.episodeID, "summary", env.Summary())
	}
	return result
}

func (env *Env) validAction(action types.Action) bool {
	return action.ElevatorID >= 0 && action.ElevatorID < env.cfg.NumElevators &&
		action.Floor >= 0 && action.Floor < env.cfg.NumFloors
}

func (env *Env) observe() types.State {
	obs := env.building.Observe()
	obs.Tick = env.tick
	return obs
}

func (env *Env) info() types.Info {
	totalWait := lo.SumBy(env.building.AllWaiting(), func(p types.Passenger) int {
		return p.WaitTime
	})
	views := env.building.Elevators()
	utilization := lo.SumBy(views, func(v types.ElevView) float64 {
		return float64(v.Load()) / float64(v.Capacity)
	}) / float64(len(views))

	return types.Info{
		TotalWaitTime:       totalWait,
		ElevatorUtilization: utilization,
		Spawned:             env.building.Spawned(),
		Delivered:           env.building.Delivered(),
	}
}

func (env *Env) Building() *building.Building {
	return env.building
}

func (env *Env) Tick() int {
	return env.tick
}

func (env *Env) EpisodeID() uuid.UUID {
	return env.episodeID
}

func (env *Env) Summary() Summary {
	return Summary{
		EpisodeID:      env.episodeID,
		Ticks:          env.tick,
		TotalReward:    env.totalReward,
		InvalidActions: env.invalidActions,
		Spawned:        env.building.Spawned(),
		Delivered:      env.building.Delivered(),
		Waiting:        env.building.Waiting(),
		Onboard:        env.building.Onboard(),
	}
}
