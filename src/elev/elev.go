package elev

import (
	"fmt"
	"strings"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// Hall is the side of the building an elevator boards passengers from.
type Hall interface {
	// Board offers the passengers waiting at floor, longest-waiting first, to
	// accept. Accepted passengers leave the floor queue, rejected ones stay.
	Board(floor int, accept func(p types.Passenger) bool) int
}

// Elevator owns its motion state, its doors and the passengers on board.
type Elevator struct {
	id       int
	capacity int
	speed    int

	floor   int
	dest    int
	hasDest bool
	dir     types.MotorDirection

	passengers []types.Passenger

	doorOpen      bool
	closeOnDepart bool
	doorTimer     timer.DoorTimer
}

// New creates an idle elevator on floor 0 with its doors closed.
// A positive doorCloseTicks enables timed door closing.
func New(id, capacity, speed, doorCloseTicks int) *Elevator {
	return &Elevator{
		id:            id,
		capacity:      capacity,
		speed:         speed,
		dir:           types.MD_Stop,
		passengers:    make([]types.Passenger, 0, capacity),
		closeOnDepart: doorCloseTicks > 0,
		doorTimer:     timer.NewDoorTimer(doorCloseTicks),
	}
}

func (e *Elevator) String() string {
	status := []string{"doors closed"}
	if e.doorOpen {
		status[0] = "doors open"
	}
	switch e.dir {
	case types.MD_Up:
		status = append(status, "moving up")
	case types.MD_Down:
		status = append(status, "moving down")
	}
	return fmt.Sprintf("Elevator %d at floor %d (%s), %d/%d passengers",
		e.id, e.floor, strings.Join(status, ", "), len(e.passengers), e.capacity)
}
