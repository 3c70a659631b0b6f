package dispatcher

import (
	"math"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/config"
	"elevsim/src/types"
)

// ticksToServe estimates the cost of sending an elevator to floor.
//   - full elevators cannot take the call
//   - walks a copy of the elevator floor by floor, dropping off riders it passes
//   - adds a penalty per rider still on board at the target, and for reversing
func ticksToServe(elevator types.ElevView, floor int) int {
	if elevator.Load() >= elevator.Capacity {
		return math.MaxInt
	}
	simElev := new(types.ElevView)
	if err := deepcopy.Copy(simElev, &elevator); err != nil {
		panic(err)
	}

	cost := 0
	dir := types.DirectionTo(simElev.Floor, floor)
	if simElev.Dir != types.MD_Stop && dir != types.MD_Stop && dir != simElev.Dir {
		cost += config.DirChangePenalty
	}

	for simElev.Floor != floor {
		simElev.Floor += int(dir)
		cost += config.TravelCost
		if slices.Contains(simElev.Destinations, simElev.Floor) {
			simElev.Destinations = slices.DeleteFunc(simElev.Destinations, func(d int) bool {
				return d == simElev.Floor
			})
			cost += config.LoadingTime
		}
	}

	return cost + len(simElev.Destinations)*config.LoadPenalty
}
