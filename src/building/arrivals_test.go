package building

import (
	"math/rand/v2"
	"testing"

	"elevsim/src/config"
)

func TestPeakWindows(t *testing.T) {
	cases := []struct {
		tick    int
		morning bool
		evening bool
	}{
		{479, false, false},
		{480, true, false},
		{599, true, false},
		{600, false, false},
		{1019, false, false},
		{1020, false, true},
		{1139, false, true},
		{1140, false, false},
		{480 + config.DayLength, true, false},
		{1020 - config.DayLength, false, true},
	}
	for _, c := range cases {
		if isMorningPeak(c.tick) != c.morning || isEveningPeak(c.tick) != c.evening {
			t.Errorf("tick %d: expected morning=%v evening=%v", c.tick, c.morning, c.evening)
		}
	}
}

func seededBuilding(t *testing.T, floors int) *Building {
	t.Helper()
	cfg := config.Default()
	cfg.NumFloors = floors
	b, err := New(cfg, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestMorningPeakLobbyGoesUp(t *testing.T) {
	b := seededBuilding(t, 5)
	const trials = 2000
	for range trials {
		b.generatePassengers(500)
	}

	lobby := b.WaitingAt(0)
	if len(lobby) < 450 || len(lobby) > 750 {
		t.Errorf("Expected about %d lobby arrivals at peak rate, was %d", int(trials*config.PeakArrivalProb), len(lobby))
	}
	for _, p := range lobby {
		if p.Destination <= 0 || p.Destination >= 5 {
			t.Fatalf("Morning lobby arrival heading to floor %d", p.Destination)
		}
		if p.SpawnTick != 500 || p.Origin != 0 {
			t.Fatalf("Wrong arrival record: %+v", p)
		}
	}
	if upper := len(b.WaitingAt(3)); upper > 200 {
		t.Errorf("Expected base rate on upper floors, was %d arrivals", upper)
	}
}

func TestEveningPeakTopGoesToLobby(t *testing.T) {
	b := seededBuilding(t, 5)
	for range 2000 {
		b.generatePassengers(1050)
	}
	top := b.WaitingAt(4)
	if len(top) < 450 {
		t.Errorf("Expected peak rate on top floor, was %d arrivals", len(top))
	}
	for _, p := range top {
		if p.Destination != 0 {
			t.Fatalf("Evening top-floor arrival heading to floor %d", p.Destination)
		}
	}
}

func TestOffPeakDestinationsDifferFromOrigin(t *testing.T) {
	b := seededBuilding(t, 4)
	for range 2000 {
		b.generatePassengers(0)
	}
	seen := make(map[int]bool)
	for _, p := range b.AllWaiting() {
		if p.Destination == p.Origin || p.Destination < 0 || p.Destination >= 4 {
			t.Fatalf("Bad off-peak destination: %+v", p)
		}
		seen[p.Destination] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected every floor as a destination, saw %v", seen)
	}
	if b.Spawned() != b.Waiting() {
		t.Errorf("Spawn count %d does not match queues %d", b.Spawned(), b.Waiting())
	}
}
