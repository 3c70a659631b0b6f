package types

// State is the observation handed to the agent after every tick.
type State struct {
	ElevatorPositions  []int            `json:"elevator_positions"`
	ElevatorDirections []MotorDirection `json:"elevator_directions"`
	ElevatorLoads      []float64        `json:"elevator_loads"`
	WaitingCounts      []int            `json:"waiting_counts"`
	WaitingTimes       []int            `json:"waiting_times"`
	Tick               int              `json:"time_step"`
}

// ElevView is a read-only copy of one elevator, richer than State.
type ElevView struct {
	ID           int
	Floor        int
	Destination  int
	HasDest      bool
	Dir          MotorDirection
	Behaviour    ElevBehaviour
	DoorOpen     bool
	Capacity     int
	Destinations []int // destinations of onboard passengers
}

func (v ElevView) Load() int {
	return len(v.Destinations)
}

type Info struct {
	TotalWaitTime       int
	ElevatorUtilization float64
	Spawned             int
	Delivered           int
}

type StepResult struct {
	Observation State
	Reward      float64
	Done        bool
	Truncated   bool
	Info        Info
}
