package building

import (
	"github.com/samber/lo"
	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// snapshot computes the observation from live state.
func (b *Building) snapshot() types.State {
	s := types.State{
		ElevatorPositions:  make([]int, 0, len(b.elevators)),
		ElevatorDirections: make([]types.MotorDirection, 0, len(b.elevators)),
		ElevatorLoads:      make([]float64, 0, len(b.elevators)),
		WaitingCounts:      make([]int, 0, b.numFloors),
		WaitingTimes:       make([]int, 0, b.numFloors),
		Tick:               b.tick,
	}
	for _, e := range b.elevators {
		s.ElevatorPositions = append(s.ElevatorPositions, e.Floor())
		s.ElevatorDirections = append(s.ElevatorDirections, e.Dir())
		s.ElevatorLoads = append(s.ElevatorLoads, e.LoadRatio())
	}
	for _, queue := range b.waiting {
		maxWait := 0
		if len(queue) > 0 {
			maxWait = lo.MaxBy(queue, func(p, q types.Passenger) bool {
				return p.WaitTime > q.WaitTime
			}).WaitTime
		}
		s.WaitingCounts = append(s.WaitingCounts, len(queue))
		s.WaitingTimes = append(s.WaitingTimes, maxWait)
	}
	return s
}

// Observe computes a fresh snapshot of the building as it is now.
func (b *Building) Observe() types.State {
	return b.snapshot()
}

// State returns a copy of the current cached snapshot.
func (b *Building) State() types.State {
	return cloneState(&b.state)
}

// NextState returns a copy of the snapshot precomputed by the last Step.
func (b *Building) NextState() (types.State, bool) {
	if b.next == nil {
		return types.State{}, false
	}
	return cloneState(b.next), true
}

func cloneState(s *types.State) types.State {
	clone := new(types.State)
	if err := deepcopy.Copy(clone, s); err != nil {
		panic(err)
	}
	return *clone
}
