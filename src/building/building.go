package building

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/samber/lo"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"
)

// Building owns the floor queues and the elevators and drives them tick by tick.
// It is not safe for concurrent use.
type Building struct {
	numFloors int
	elevators []*elev.Elevator
	waiting   [][]types.Passenger // floor -> queue, in arrival order
	rng       *rand.Rand

	tick      int
	spawned   int
	delivered int

	state types.State
	next  *types.State
}

// New builds an empty building with every elevator idle on floor 0.
// A nil rng is replaced by a PCG source seeded from cfg.Seed.
func New(cfg config.Config, rng *rand.Rand) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	b := &Building{
		numFloors: cfg.NumFloors,
		elevators: make([]*elev.Elevator, cfg.NumElevators),
		waiting:   make([][]types.Passenger, cfg.NumFloors),
		rng:       rng,
	}
	for id := range b.elevators {
		b.elevators[id] = elev.New(id, cfg.Capacity, cfg.Speed, cfg.DoorCloseTicks)
	}
	b.state = b.snapshot()

	slog.Debug("Building initialized", "floors", cfg.NumFloors, "elevators", cfg.NumElevators, "capacity", cfg.Capacity)
	return b, nil
}

// Step advances the simulation by one tick.
//  1. waiting passengers age by one tick
//  2. elevators move and discharge, in id order
//  3. new passengers arrive
//  4. the cached snapshots rotate
func (b *Building) Step(tick int) {
	b.tick = tick

	for floor := range b.waiting {
		for i := range b.waiting[floor] {
			b.waiting[floor][i].WaitTime++
		}
	}

	for _, e := range b.elevators {
		b.delivered += len(e.Move(b))
		b.delivered += len(e.RemovePassengers())
	}

	b.generatePassengers(tick)

	if b.next != nil {
		b.state = *b.next
	} else {
		b.state = b.snapshot()
	}
	next := b.snapshot()
	b.next = &next
}

// TakeAction sends one elevator to a floor and returns the reward for the tick.
//   - out-of-range ids or floors return InvalidActionPenalty and change nothing
//   - a full elevator keeps its current destination
func (b *Building) TakeAction(action types.Action) float64 {
	if action.ElevatorID < 0 || action.ElevatorID >= len(b.elevators) {
		slog.Warn("Invalid elevator in action", "action", action)
		return config.InvalidActionPenalty
	}
	if action.Floor < 0 || action.Floor >= b.numFloors {
		slog.Warn("Invalid floor in action", "action", action)
		return config.InvalidActionPenalty
	}

	e := b.elevators[action.ElevatorID]
	if e.IsFull() {
		slog.Debug("Ignoring assignment to full elevator", "action", action)
	} else {
		e.SetDestination(action.Floor)
	}
	return b.calculateReward()
}

// AddWaiting places a passenger in the queue of its origin floor.
// Passengers with an origin or destination outside the building, or
// travelling to their own floor, are rejected.
func (b *Building) AddWaiting(p types.Passenger) bool {
	if p.Origin < 0 || p.Origin >= b.numFloors {
		return false
	}
	if p.Destination < 0 || p.Destination >= b.numFloors || p.Destination == p.Origin {
		slog.Warn("Rejecting passenger", "origin", p.Origin, "destination", p.Destination)
		return false
	}
	b.waiting[p.Origin] = append(b.waiting[p.Origin], p)
	b.spawned++
	return true
}

func (b *Building) NumFloors() int {
	return b.numFloors
}

func (b *Building) NumElevators() int {
	return len(b.elevators)
}

func (b *Building) Tick() int {
	return b.tick
}

// Elevator gives direct access to one elevator, mainly for tests and renderers.
func (b *Building) Elevator(id int) *elev.Elevator {
	if id < 0 || id >= len(b.elevators) {
		return nil
	}
	return b.elevators[id]
}

func (b *Building) Elevators() []types.ElevView {
	return lo.Map(b.elevators, func(e *elev.Elevator, _ int) types.ElevView {
		return e.View()
	})
}

// Spawned counts every passenger that ever entered a floor queue.
func (b *Building) Spawned() int {
	return b.spawned
}

// Delivered counts every passenger that left an elevator at its destination.
func (b *Building) Delivered() int {
	return b.delivered
}

func (b *Building) Onboard() int {
	return lo.SumBy(b.elevators, func(e *elev.Elevator) int {
		return e.Load()
	})
}

func (b *Building) String() string {
	return fmt.Sprintf("Building with %d floors and %d elevators", b.numFloors, len(b.elevators))
}
