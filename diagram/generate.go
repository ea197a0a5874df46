package diagram

import (
	"strings"

	"clack/sim"
)

// Generate runs the scenario for massBig and returns the finished diagram as
// a string. It is the entry point for hosts that bring their own output
// channel and want no file I/O.
func Generate(massBig float64) (string, error) {
	seq, err := sim.Calculate(massBig)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := WriteSVG(&b, seq); err != nil {
		return "", err
	}
	return b.String(), nil
}
