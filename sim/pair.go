package sim

// CollisionPair records one simulation step: the box-box collision and, if
// the small box went on to strike the wall, the reflection that followed.
type CollisionPair struct {
	VBigAfterBox   float64
	VSmallAfterBox float64

	// VSmallAfterWall is only meaningful when HitWall is true. HitWall is
	// false at most once, for the final pair, when the small box had no
	// leftward motion left after the box collision.
	VSmallAfterWall float64
	HitWall         bool
}

func (p CollisionPair) events() int {
	if p.HitWall {
		return 2
	}
	return 1
}
