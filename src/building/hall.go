package building

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"elevsim/src/types"
)

// Board implements elev.Hall. Passengers are offered longest-waiting first;
// the first refusal ends boarding, since a car only refuses when it is full
// or its doors are closed.
func (b *Building) Board(floor int, accept func(p types.Passenger) bool) int {
	if floor < 0 || floor >= len(b.waiting) || len(b.waiting[floor]) == 0 {
		return 0
	}
	queue := b.waiting[floor]

	order := make([]int, len(queue))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(queue[j].WaitTime, queue[i].WaitTime)
	})

	boarded := make([]bool, len(queue))
	count := 0
	for _, i := range order {
		if !accept(queue[i]) {
			break
		}
		boarded[i] = true
		count++
	}
	if count == 0 {
		return 0
	}

	b.waiting[floor] = lo.Reject(queue, func(_ types.Passenger, i int) bool {
		return boarded[i]
	})
	return count
}

// WaitingAt returns a copy of one floor's queue.
func (b *Building) WaitingAt(floor int) []types.Passenger {
	if floor < 0 || floor >= len(b.waiting) {
		return nil
	}
	return slices.Clone(b.waiting[floor])
}

// AllWaiting returns every waiting passenger, floor by floor.
func (b *Building) AllWaiting() []types.Passenger {
	return lo.Flatten(b.waiting)
}

func (b *Building) Waiting() int {
	return lo.SumBy(b.waiting, func(queue []types.Passenger) int {
		return len(queue)
	})
}
