package config

import (
	"errors"
	"fmt"
)

const (
	NumFloors      = 10
	NumElevators   = 3
	Capacity       = 10
	Speed          = 1 // floors per tick
	LoadingTime    = 2 // ticks needed for boarding/alighting
	DoorCloseTicks = 0 // 0 keeps doors open until the next assignment
	EpisodeLength  = 1440

	DayLength        = 1440
	MorningPeakStart = 480 // 8-10AM
	MorningPeakEnd   = 600
	EveningPeakStart = 1020 // 5-7PM
	EveningPeakEnd   = 1140

	BaseArrivalProb = 0.05
	PeakArrivalProb = 0.3

	InvalidActionPenalty = -10.0
	DeliveryBonus        = 5.0
	WaitPenaltyRate      = 0.1
	WaitPenaltyCap       = 20
	MovePenaltyLoaded    = 0.1
	MovePenaltyEmpty     = 0.05
	RewardScale          = 10.0

	TravelCost       = 1 // ticks per floor, used by the dispatcher cost function
	DirChangePenalty = 2
	LoadPenalty      = 3
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the per-episode parameters of a simulated building.
type Config struct {
	NumFloors      int
	NumElevators   int
	Capacity       int
	Speed          int
	DoorCloseTicks int
	EpisodeLength  int
	Seed           uint64
}

func Default() Config {
	return Config{
		NumFloors:      NumFloors,
		NumElevators:   NumElevators,
		Capacity:       Capacity,
		Speed:          Speed,
		DoorCloseTicks: DoorCloseTicks,
		EpisodeLength:  EpisodeLength,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return fmt.Errorf("%w: need at least 2 floors, got %d", ErrInvalidConfig, c.NumFloors)
	case c.NumElevators < 1:
		return fmt.Errorf("%w: need at least 1 elevator, got %d", ErrInvalidConfig, c.NumElevators)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.Speed < 1:
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalidConfig, c.Speed)
	case c.DoorCloseTicks < 0:
		return fmt.Errorf("%w: door close ticks must not be negative, got %d", ErrInvalidConfig, c.DoorCloseTicks)
	case c.EpisodeLength < 1:
		return fmt.Errorf("%w: episode length must be positive, got %d", ErrInvalidConfig, c.EpisodeLength)
	}
	return nil
}
