package diagram

import (
	"fmt"
	"io"
	"math"

	"clack/sim"
)

const (
	size      = 1400.0
	svgRadius = 500.0
	margin    = 50.0
	pointSize = 4.0
	lineWidth = 1.0
)

// svgWriter remembers the first failed write so the emit calls below can
// stay on one line each. Once err is set all further output is dropped.
type svgWriter struct {
	w   io.Writer
	err error
}

func (sw *svgWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format+"\n", args...)
}

// WriteSVG serializes seq to w as a 1400x1400 phase diagram: every collision
// becomes a point in normalized velocity space, connected in chronological
// order. The first write failure aborts the rest of the document and is
// returned as-is.
func WriteSVG(w io.Writer, seq *sim.Sequence) error {
	radius := math.Sqrt(seq.MassBig())
	sw := &svgWriter{w: w}

	sw.printf(`<svg width="%v" height="%v" version="1.1" xmlns="http://www.w3.org/2000/svg">`, size, size)

	sw.printf(`<style>`)
	sw.printf(`.text { font-weight: bold; font-size: 20px; font-family: sans-serif; }`)
	sw.printf(`</style>`)

	// Opaque background so the diagram reads the same on any page.
	sw.printf(`<rect width="100%%" height="100%%" fill="white"/>`)

	// Unit circle of the normalized velocity space: kinetic energy is
	// conserved, so every plotted point lands on it.
	sw.printf(`<circle cx="%v" cy="%v" r="%v" stroke="red" fill="transparent" stroke-width="3"/>`,
		size/2, size/2, svgRadius)

	// Axes and labels.
	sw.printf(`<line x1="%v" x2="%v" y1="%v" y2="%v" stroke="orange" stroke-width="5"/>`,
		size/2, size/2, margin, size-margin)
	sw.printf(`<text x="%v" y="%v" text-anchor="middle" dominant-baseline="middle" class="text">sqrt(m_b) * v_b</text>`,
		size/2, margin/2)
	sw.printf(`<line x1="%v" x2="%v" y1="%v" y2="%v" stroke="orange" stroke-width="5"/>`,
		margin, size-margin, size/2, size/2)
	sw.printf(`<text x="%v" y="%v" text-anchor="middle" class="text">sqrt(m_s) * v_s</text>`,
		size-2*margin, size/2-10)

	sqrtMassBig := math.Sqrt(seq.MassBig())

	// Before the first collision the big box moves at unit velocity and the
	// small box rests, which normalizes to (0, 1).
	lastX := 0.0
	lastY := 1.0

	toSVGX := func(x float64) float64 { return size/2 + x*svgRadius }
	toSVGY := func(y float64) float64 { return size/2 + (-y)*svgRadius }

	for _, pair := range seq.Pairs() {
		x := pair.VSmallAfterBox / radius
		y := (pair.VBigAfterBox * sqrtMassBig) / radius

		sw.printf(`<circle cx="%v" cy="%v" r="%v" stroke="black" fill="blue" stroke-width="1"/>`,
			toSVGX(x), toSVGY(y), pointSize)
		sw.printf(`<line x1="%v" x2="%v" y1="%v" y2="%v" stroke="black" stroke-width="%v"/>`,
			toSVGX(lastX), toSVGX(x), toSVGY(lastY), toSVGY(y), lineWidth)

		if pair.HitWall {
			xReflected := pair.VSmallAfterWall / radius

			sw.printf(`<circle cx="%v" cy="%v" r="%v" stroke="black" fill="blue" stroke-width="1"/>`,
				toSVGX(xReflected), toSVGY(y), pointSize)
			// The wall bounce only flips the small box, so the segment is
			// horizontal.
			sw.printf(`<line x1="%v" x2="%v" y1="%v" y2="%v" stroke="black" stroke-width="%v"/>`,
				toSVGX(x), toSVGX(xReflected), toSVGY(y), toSVGY(y), lineWidth)

			lastX = xReflected
			lastY = y
		}
	}

	sw.printf(`</svg>`)

	return sw.err
}
