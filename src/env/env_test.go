package env

import (
	"errors"
	"reflect"
	"testing"

	"elevsim/src/config"
	"elevsim/src/types"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.NumFloors = 5
	cfg.NumElevators = 2
	cfg.EpisodeLength = 20
	cfg.Seed = 11
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.EpisodeLength = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, was %v", err)
	}
}

func TestEpisodeRunsToLength(t *testing.T) {
	env, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	var result types.StepResult
	for i := 1; i <= 20; i++ {
		result = env.Step(types.Action{ElevatorID: i % 2, Floor: i % 5})
		if result.Observation.Tick != i {
			t.Fatalf("Expected observation tick %d, was %d", i, result.Observation.Tick)
		}
		if result.Reward < -1 || result.Reward > 1 {
			t.Fatalf("Reward %v out of range for a valid action", result.Reward)
		}
		if result.Done != (i == 20) {
			t.Fatalf("tick %d: done=%v", i, result.Done)
		}
	}
	if len(result.Observation.ElevatorPositions) != 2 || len(result.Observation.WaitingCounts) != 5 {
		t.Errorf("Observation has wrong shape: %+v", result.Observation)
	}
}

func TestInvalidActionDoesNotStepBuilding(t *testing.T) {
	env, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	before := env.Building().Observe()

	result := env.Step(types.Action{ElevatorID: 2, Floor: 0})
	if result.Reward != config.InvalidActionPenalty {
		t.Errorf("Expected %v, was %v", config.InvalidActionPenalty, result.Reward)
	}
	if after := env.Building().Observe(); !reflect.DeepEqual(before, after) {
		t.Errorf("Building changed on an invalid action")
	}
	if env.Summary().InvalidActions != 1 || env.Tick() != 1 {
		t.Errorf("Unexpected summary after invalid action: %+v", env.Summary())
	}
}

func TestResetStartsFreshEpisode(t *testing.T) {
	env, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	first := env.EpisodeID()
	for i := 0; i < 10; i++ {
		env.Step(types.Action{ElevatorID: 0, Floor: 4})
	}

	obs, err := env.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if env.EpisodeID() == first {
		t.Errorf("Episode ID not renewed on reset")
	}
	if obs.Tick != 0 || env.Summary().TotalReward != 0 {
		t.Errorf("Reset did not clear episode counters")
	}
	for _, v := range env.Building().Elevators() {
		if v.Floor != 0 || v.Behaviour != types.Idle {
			t.Errorf("Elevator %d not reset: %+v", v.ID, v)
		}
	}
	if env.Building().Waiting() != 0 {
		t.Errorf("Queues not empty after reset")
	}
}

func TestInfoMatchesBuilding(t *testing.T) {
	env, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	var result types.StepResult
	for i := 0; i < 15; i++ {
		result = env.Step(types.Action{ElevatorID: 1, Floor: (i * 3) % 5})
	}

	totalWait := 0
	for _, p := range env.Building().AllWaiting() {
		totalWait += p.WaitTime
	}
	if result.Info.TotalWaitTime != totalWait {
		t.Errorf("Expected total wait %d, was %d", totalWait, result.Info.TotalWaitTime)
	}
	if result.Info.ElevatorUtilization < 0 || result.Info.ElevatorUtilization > 1 {
		t.Errorf("Utilization out of range: %v", result.Info.ElevatorUtilization)
	}
	if result.Info.Spawned != env.Building().Spawned() {
		t.Errorf("Spawn count mismatch")
	}
}
