package timer

import "log/slog"

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// DoorTimer counts ticks while a door is open.
//   - a limit of 0 never times out
//   - Tick reports true once the limit is reached, and keeps the timer stopped after that
type DoorTimer struct {
	limit   int
	elapsed int
	running bool
}

func NewDoorTimer(limit int) DoorTimer {
	return DoorTimer{limit: limit}
}

func (t *DoorTimer) Apply(action TimerAction) {
	switch action {
	case Start:
		t.elapsed = 0
		t.running = true
	case Stop:
		t.running = false
	}
}

// Tick advances the timer by one simulation tick.
func (t *DoorTimer) Tick() bool {
	if !t.running {
		return false
	}
	t.elapsed++
	if t.limit > 0 && t.elapsed >= t.limit {
		t.running = false
		slog.Debug("Door timer timed out", "ticks", t.elapsed)
		return true
	}
	return false
}

func (t *DoorTimer) Elapsed() int {
	return t.elapsed
}

func (t *DoorTimer) Running() bool {
	return t.running
}
