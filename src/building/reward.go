package building

import (
	"github.com/samber/lo"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

// calculateReward scores the current state in [-1, 1].
//   - DeliveryBonus per elevator holding someone for its current floor
//   - WaitPenaltyRate per waiting tick, capped at WaitPenaltyCap per passenger
//   - a movement cost per moving elevator, higher when loaded
func (b *Building) calculateReward() float64 {
	delivering := lo.CountBy(b.elevators, func(e *elev.Elevator) bool {
		return e.HasArrivalHere()
	})

	waitTicks := lo.SumBy(b.AllWaiting(), func(p types.Passenger) int {
		return min(p.WaitTime, config.WaitPenaltyCap)
	})

	movePenalty := lo.SumBy(b.elevators, func(e *elev.Elevator) float64 {
		switch {
		case e.Dir() == types.MD_Stop:
			return 0
		case e.Load() > 0:
			return config.MovePenaltyLoaded
		default:
			return config.MovePenaltyEmpty
		}
	})

	reward := float64(delivering)*config.DeliveryBonus -
		float64(waitTicks)*config.WaitPenaltyRate -
		movePenalty
	return lo.Clamp(reward/config.RewardScale, -1, 1)
}
