package elev

import (
	"github.com/samber/lo"

	"elevsim/src/types"
)

// AddPassenger boards p if there is room and the doors are open.
func (e *Elevator) AddPassenger(p types.Passenger) bool {
	if len(e.passengers) >= e.capacity || !e.doorOpen {
		return false
	}
	e.passengers = append(e.passengers, p)
	return true
}

// RemovePassengers discharges everyone whose destination is the current floor.
// Nothing leaves while the doors are closed.
func (e *Elevator) RemovePassengers() []types.Passenger {
	if !e.doorOpen {
		return nil
	}
	arrivesHere := func(p types.Passenger, _ int) bool {
		return p.Destination == e.floor
	}
	departing := lo.Filter(e.passengers, arrivesHere)
	if len(departing) == 0 {
		return nil
	}
	e.passengers = lo.Reject(e.passengers, arrivesHere)
	return departing
}
