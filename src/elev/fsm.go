// Contains the per-tick state machine of a single elevator: Idle -> Moving -> DoorOpen.
package elev

import (
	"log/slog"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// Move advances the elevator by one tick and returns the passengers that left it.
//   - steps one floor at a time, up to speed floors, towards the destination
//   - tries to pick up at every floor passed on the way
//   - on reaching the destination opens the door, discharges and boards
//   - a stopped elevator with open doors keeps boarding at its floor
func (e *Elevator) Move(hall Hall) []types.Passenger {
	if !e.hasDest {
		if e.doorOpen {
			e.tryPickup(hall)
			if e.doorTimer.Tick() {
				e.closeDoor()
			}
		}
		return nil
	}

	for range e.speed {
		if e.floor == e.dest {
			break
		}
		e.dir = types.DirectionTo(e.floor, e.dest)
		e.floor += int(e.dir)
		if e.floor != e.dest {
			e.tryPickup(hall)
		}
	}

	if e.floor == e.dest {
		return e.handleArrival(hall)
	}
	slog.Debug("Elevator passing floor", "id", e.id, "floor", e.floor, "destination", e.dest, "direction", e.dir)
	return nil
}

func (e *Elevator) handleArrival(hall Hall) []types.Passenger {
	slog.Debug("Elevator reached destination", "id", e.id, "floor", e.floor)
	e.hasDest = false
	e.dir = types.MD_Stop
	e.openDoor()

	departing := e.RemovePassengers()
	if len(departing) > 0 {
		slog.Debug("Dropped off passengers", "id", e.id, "floor", e.floor, "count", len(departing))
	}
	e.tryPickup(hall)
	return departing
}

// tryPickup boards the longest-waiting passengers at the current floor until full.
func (e *Elevator) tryPickup(hall Hall) {
	if hall == nil || e.IsFull() {
		return
	}
	boarded := hall.Board(e.floor, e.AddPassenger)
	if boarded > 0 {
		slog.Debug("Picked up passengers", "id", e.id, "floor", e.floor, "count", boarded, "load", len(e.passengers))
	}
}

func (e *Elevator) openDoor() {
	e.doorOpen = true
	e.doorTimer.Apply(timer.Start)
}

func (e *Elevator) closeDoor() {
	slog.Debug("Closing door", "id", e.id, "floor", e.floor)
	e.doorOpen = false
	e.doorTimer.Apply(timer.Stop)
}
