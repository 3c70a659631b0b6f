package timer

import "testing"

func TestDoorTimerTimesOutAtLimit(t *testing.T) {
	dt := NewDoorTimer(2)
	dt.Apply(Start)

	if dt.Tick() {
		t.Errorf("Timer timed out after 1 tick, limit is 2")
	}
	if !dt.Tick() {
		t.Errorf("Timer did not time out after 2 ticks")
	}
	if dt.Running() {
		t.Errorf("Timer still running after timeout")
	}
	if dt.Tick() {
		t.Errorf("Stopped timer timed out again")
	}
}

func TestDoorTimerZeroLimitNeverTimesOut(t *testing.T) {
	dt := NewDoorTimer(0)
	dt.Apply(Start)
	for range 100 {
		if dt.Tick() {
			t.Fatalf("Timer with zero limit timed out")
		}
	}
	if dt.Elapsed() != 100 {
		t.Errorf("Expected 100 elapsed ticks, was %d", dt.Elapsed())
	}
}

func TestDoorTimerRestart(t *testing.T) {
	dt := NewDoorTimer(3)
	dt.Apply(Start)
	dt.Tick()
	dt.Tick()
	dt.Apply(Start)
	if dt.Elapsed() != 0 {
		t.Errorf("Restart did not reset elapsed ticks, was %d", dt.Elapsed())
	}
	dt.Apply(Stop)
	if dt.Tick() {
		t.Errorf("Stopped timer ticked")
	}
}
