package sim

import (
	"errors"
	"fmt"
)

// The small box always has unit mass; only the big box's mass varies.
const massSmall = 1.0

var ErrInvalidMass = errors.New("mass must be greater than 0")

// Sequence is the chronological record of one collision scenario. Pairs are
// appended during Calculate and never change afterwards.
type Sequence struct {
	pairs   []CollisionPair
	massBig float64
}

// Calculate runs the scenario where a box of mass massBig slides leftward at
// unit velocity into a resting unit-mass box in front of a wall, recording
// every collision until the two boxes separate for good.
func Calculate(massBig float64) (*Sequence, error) {
	if massBig <= 0 {
		return nil, fmt.Errorf("calculate with mass %g: %w", massBig, ErrInvalidMass)
	}

	var pairs []CollisionPair

	vBig := 1.0
	vSmall := 0.0
	massSum := massBig + massSmall

	for {
		// Elastic box-box collision, written through the shared offset term.
		offset := 2.0 * ((massSmall*vSmall + massBig*vBig) / massSum)
		vBig = offset - vBig
		vSmall = offset - vSmall

		pair := CollisionPair{
			VBigAfterBox:   vBig,
			VSmallAfterBox: vSmall,
		}

		// Positive velocity is leftward motion. With none left the small
		// box never reaches the wall again, so this pair records no wall
		// bounce and the run is over.
		endAfterBox := vSmall <= 0

		if !endAfterBox {
			// The wall reflects the small box; the big box is untouched.
			vSmall = -vSmall
			pair.VSmallAfterWall = vSmall
			pair.HitWall = true
		}

		pairs = append(pairs, pair)

		// After the bounce both velocities point rightward (negative).
		// vSmall < vBig means the small box still out-runs the big one and
		// catches it again; anything else and they are separated for good.
		endAfterWall := !(vSmall < vBig)

		if endAfterBox || endAfterWall {
			break
		}
	}

	return &Sequence{pairs: pairs, massBig: massBig}, nil
}

// Count returns the total number of individual collision events, box and
// wall alike.
func (s *Sequence) Count() int {
	last := s.pairs[len(s.pairs)-1]
	return (len(s.pairs)-1)*2 + last.events()
}

// MassBig returns the mass the sequence was calculated for.
func (s *Sequence) MassBig() float64 { return s.massBig }

// Pairs returns a copy of the chronological collision records, so callers
// cannot disturb the sequence after construction.
func (s *Sequence) Pairs() []CollisionPair {
	out := make([]CollisionPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}
