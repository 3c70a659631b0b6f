package building

import (
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/types"
)

func timeOfDay(tick int) int {
	return ((tick % config.DayLength) + config.DayLength) % config.DayLength
}

func isMorningPeak(tick int) bool {
	t := timeOfDay(tick)
	return t >= config.MorningPeakStart && t < config.MorningPeakEnd
}

func isEveningPeak(tick int) bool {
	t := timeOfDay(tick)
	return t >= config.EveningPeakStart && t < config.EveningPeakEnd
}

// generatePassengers runs one Bernoulli trial per floor.
//   - morning peak: the lobby arrives at PeakArrivalProb, heading anywhere above
//   - evening peak: the top floor arrives at PeakArrivalProb, heading to the lobby
//   - otherwise BaseArrivalProb, heading to any other floor
func (b *Building) generatePassengers(tick int) {
	morning := isMorningPeak(tick)
	evening := isEveningPeak(tick)
	top := b.numFloors - 1

	for floor := range b.numFloors {
		lobbyRush := morning && floor == 0
		topRush := evening && floor == top

		prob := config.BaseArrivalProb
		if lobbyRush || topRush {
			prob = config.PeakArrivalProb
		}
		if b.rng.Float64() >= prob {
			continue
		}

		var dest int
		switch {
		case lobbyRush:
			dest = 1 + b.rng.IntN(b.numFloors-1)
		case topRush:
			dest = 0
		default:
			dest = b.rng.IntN(b.numFloors - 1)
			if dest >= floor {
				dest++
			}
		}

		b.waiting[floor] = append(b.waiting[floor], types.NewPassenger(floor, dest, tick))
		b.spawned++
		slog.Debug("Passenger arrived", "tick", tick, "floor", floor, "destination", dest)
	}
}
