package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"clack/diagram"
	"clack/sim"
)

const outPath = "out.svg"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	mass, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		usage()
		return
	}

	seq, err := sim.Calculate(mass)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		return
	}

	fmt.Printf("Number of collisions: %d\n", seq.Count())

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := diagram.WriteSVG(f, seq); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Mass parameter missing! Usage:")
	fmt.Fprintln(os.Stderr, "    clack <mass-of-bigger-object>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "    clack 100")
}
