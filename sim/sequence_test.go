package sim

import (
	"errors"
	"testing"
)

func TestCountMatchesPiDigits(t *testing.T) {
	cases := []struct {
		mass float64
		want int
	}{
		{1, 3},
		{100, 31},
		{10000, 314},
	}
	for _, c := range cases {
		seq, err := Calculate(c.mass)
		if err != nil {
			t.Fatalf("Calculate(%g): %v", c.mass, err)
		}
		if got := seq.Count(); got != c.want {
			t.Fatalf("Count for mass %g = %d, want %d", c.mass, got, c.want)
		}
	}
}

func TestCalculateRejectsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{0, -1, -100} {
		if _, err := Calculate(mass); !errors.Is(err, ErrInvalidMass) {
			t.Fatalf("Calculate(%g) error = %v, want ErrInvalidMass", mass, err)
		}
	}
}

func TestSequenceIsNeverEmpty(t *testing.T) {
	for _, mass := range []float64{0.25, 1, 2, 3.7, 42, 1e6} {
		seq, err := Calculate(mass)
		if err != nil {
			t.Fatalf("Calculate(%g): %v", mass, err)
		}
		if len(seq.Pairs()) == 0 {
			t.Fatalf("Calculate(%g) produced an empty sequence", mass)
		}
	}
}

func TestOnlyLastPairMayLackWallBounce(t *testing.T) {
	seq, err := Calculate(100)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	pairs := seq.Pairs()
	for i, p := range pairs[:len(pairs)-1] {
		if !p.HitWall {
			t.Fatalf("pair %d of %d has no wall bounce; only the last may", i, len(pairs))
		}
	}
}

func TestCountMatchesPairEvents(t *testing.T) {
	for _, mass := range []float64{1, 2, 100, 12345} {
		seq, err := Calculate(mass)
		if err != nil {
			t.Fatalf("Calculate(%g): %v", mass, err)
		}
		pairs := seq.Pairs()
		want := (len(pairs) - 1) * 2
		if pairs[len(pairs)-1].HitWall {
			want += 2
		} else {
			want++
		}
		if got := seq.Count(); got != want {
			t.Fatalf("Count for mass %g = %d, want %d from %d pairs", mass, got, want, len(pairs))
		}
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	a, err := Calculate(10000)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	b, err := Calculate(10000)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(a.Pairs()) != len(b.Pairs()) {
		t.Fatalf("pair counts differ between runs: %d vs %d", len(a.Pairs()), len(b.Pairs()))
	}
	for i := range a.Pairs() {
		if a.Pairs()[i] != b.Pairs()[i] {
			t.Fatalf("pair %d differs between runs: %+v vs %+v", i, a.Pairs()[i], b.Pairs()[i])
		}
	}
}

func TestPairsMutationDoesNotReachSequence(t *testing.T) {
	seq, err := Calculate(100)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	first := seq.Pairs()[0]
	mutated := seq.Pairs()
	for i := range mutated {
		mutated[i] = CollisionPair{}
	}

	if got := seq.Pairs()[0]; got != first {
		t.Fatalf("mutating the returned slice changed the sequence: %+v != %+v", got, first)
	}
}

// With equal masses the boxes simply swap velocities, so the whole run is
// exact in floating point and can be pinned down pair by pair.
func TestMassOneGoldenSequence(t *testing.T) {
	seq, err := Calculate(1)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	want := []CollisionPair{
		{VBigAfterBox: 0, VSmallAfterBox: 1, VSmallAfterWall: -1, HitWall: true},
		{VBigAfterBox: -1, VSmallAfterBox: 0},
	}
	pairs := seq.Pairs()
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d = %+v, want %+v", i, pairs[i], want[i])
		}
	}
	if got := seq.Count(); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
}
