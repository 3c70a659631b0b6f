package elev

import (
	"slices"

	"github.com/samber/lo"

	"elevsim/src/types"
)

func (e *Elevator) ID() int {
	return e.id
}

func (e *Elevator) Floor() int {
	return e.floor
}

func (e *Elevator) Capacity() int {
	return e.capacity
}

func (e *Elevator) Speed() int {
	return e.speed
}

func (e *Elevator) DoorOpen() bool {
	return e.doorOpen
}

func (e *Elevator) Dir() types.MotorDirection {
	return e.dir
}

// Destination returns the assigned floor, if any.
func (e *Elevator) Destination() (int, bool) {
	return e.dest, e.hasDest
}

// SetDestination assigns the next floor to travel to. Range checks are the
// caller's job.
func (e *Elevator) SetDestination(floor int) {
	e.dest = floor
	e.hasDest = true
	if e.closeOnDepart && e.doorOpen {
		e.closeDoor()
	}
}

func (e *Elevator) Passengers() []types.Passenger {
	return slices.Clone(e.passengers)
}

func (e *Elevator) Load() int {
	return len(e.passengers)
}

func (e *Elevator) LoadRatio() float64 {
	return float64(len(e.passengers)) / float64(e.capacity)
}

func (e *Elevator) AvailableSpace() int {
	return e.capacity - len(e.passengers)
}

func (e *Elevator) IsFull() bool {
	return e.AvailableSpace() <= 0
}

func (e *Elevator) IsIdle() bool {
	return !e.hasDest && !e.doorOpen
}

func (e *Elevator) Behaviour() types.ElevBehaviour {
	switch {
	case e.hasDest:
		return types.Moving
	case e.doorOpen:
		return types.DoorOpen
	default:
		return types.Idle
	}
}

// HasArrivalHere reports whether someone on board wants to leave at the current floor.
func (e *Elevator) HasArrivalHere() bool {
	return lo.ContainsBy(e.passengers, func(p types.Passenger) bool {
		return p.Destination == e.floor
	})
}

// NextDestinations returns the floors still to visit: every onboard
// destination plus the assigned one.
//   - ascending by default
//   - descending while moving up
func (e *Elevator) NextDestinations() []int {
	floors := lo.Map(e.passengers, func(p types.Passenger, _ int) int {
		return p.Destination
	})
	if e.hasDest {
		floors = append(floors, e.dest)
	}
	floors = lo.Uniq(floors)
	slices.Sort(floors)
	if e.dir == types.MD_Up {
		slices.Reverse(floors)
	}
	return floors
}

// View returns a copy of the elevator that agents can inspect freely.
func (e *Elevator) View() types.ElevView {
	destinations := lo.Map(e.passengers, func(p types.Passenger, _ int) int {
		return p.Destination
	})
	return types.ElevView{
		ID:           e.id,
		Floor:        e.floor,
		Destination:  e.dest,
		HasDest:      e.hasDest,
		Dir:          e.dir,
		Behaviour:    e.Behaviour(),
		DoorOpen:     e.doorOpen,
		Capacity:     e.capacity,
		Destinations: destinations,
	}
}
