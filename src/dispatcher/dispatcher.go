package dispatcher

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/samber/lo"

	"elevsim/src/types"
)

// Dispatcher is a baseline agent: it produces one action per tick from the
// elevator views and the latest observation.
type Dispatcher struct {
	cursor int
}

func New() *Dispatcher {
	return &Dispatcher{}
}

// Next picks the action for this tick.
//  1. a stopped elevator with riders goes to its nearest rider destination
//  2. the longest-waiting floor nobody serves goes to the cheapest elevator
//  3. otherwise an elevator is re-sent where it is already going
func (d *Dispatcher) Next(elevators []types.ElevView, obs types.State) types.Action {
	if len(elevators) == 0 {
		return types.Action{}
	}

	for i := range elevators {
		e := elevators[(d.cursor+i)%len(elevators)]
		if e.HasDest || e.Load() == 0 {
			continue
		}
		d.cursor = (e.ID + 1) % len(elevators)
		dest := nearest(e.Floor, e.Destinations)
		slog.Debug("Delivering riders", "elevator", e.ID, "floor", dest)
		return types.Action{ElevatorID: e.ID, Floor: dest}
	}

	for _, floor := range hallCalls(obs) {
		if served(elevators, floor) {
			continue
		}
		assignee, cost := findAssignee(elevators, floor)
		if assignee < 0 {
			break
		}
		slog.Debug("Assigning hall call", "elevator", assignee, "floor", floor, "cost", cost)
		return types.Action{ElevatorID: assignee, Floor: floor}
	}

	e := elevators[d.cursor%len(elevators)]
	if e.HasDest {
		return types.Action{ElevatorID: e.ID, Floor: e.Destination}
	}
	return types.Action{ElevatorID: e.ID, Floor: e.Floor}
}

// hallCalls lists floors with someone waiting, longest wait first.
func hallCalls(obs types.State) []int {
	floors := lo.Filter(lo.Range(len(obs.WaitingCounts)), func(floor int, _ int) bool {
		return obs.WaitingCounts[floor] > 0
	})
	slices.SortStableFunc(floors, func(a, b int) int {
		if c := cmp.Compare(obs.WaitingTimes[b], obs.WaitingTimes[a]); c != 0 {
			return c
		}
		return cmp.Compare(obs.WaitingCounts[b], obs.WaitingCounts[a])
	})
	return floors
}

// served reports whether an elevator is heading to floor or boarding there.
func served(elevators []types.ElevView, floor int) bool {
	return lo.ContainsBy(elevators, func(e types.ElevView) bool {
		if e.HasDest {
			return e.Destination == floor
		}
		return e.DoorOpen && e.Floor == floor && e.Load() < e.Capacity
	})
}

// findAssignee returns the cheapest elevator for floor, lowest id on ties,
// or -1 when every elevator is full.
func findAssignee(elevators []types.ElevView, floor int) (int, int) {
	assignee := -1
	lowestCost := math.MaxInt
	for _, e := range elevators {
		cost := ticksToServe(e, floor)
		if cost < lowestCost {
			lowestCost = cost
			assignee = e.ID
		}
	}
	return assignee, lowestCost
}

func nearest(from int, floors []int) int {
	return lo.MinBy(floors, func(a, b int) bool {
		return abs(a-from) < abs(b-from)
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
