package types

import (
	"fmt"

	"github.com/google/uuid"
)

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	default:
		return "idle"
	}
}

// DirectionTo returns the sign of dest-from.
func DirectionTo(from, dest int) MotorDirection {
	switch {
	case dest > from:
		return MD_Up
	case dest < from:
		return MD_Down
	default:
		return MD_Stop
	}
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
)

func (b ElevBehaviour) String() string {
	return [...]string{"idle", "moving", "door open"}[b]
}

// Passenger is a single arrival. It is owned by exactly one floor queue or
// one elevator at a time and is moved between them by value.
type Passenger struct {
	ID          uuid.UUID
	Origin      int
	Destination int
	SpawnTick   int
	WaitTime    int // ticks spent in a floor queue, frozen once boarded
}

func NewPassenger(origin, destination, spawnTick int) Passenger {
	return Passenger{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
		SpawnTick:   spawnTick,
	}
}

// Action is the decision supplied by the external agent once per tick.
type Action struct {
	ElevatorID int
	Floor      int
}

func (a Action) String() string {
	return fmt.Sprintf("Elevator(%d)->Floor(%d)", a.ElevatorID, a.Floor)
}
