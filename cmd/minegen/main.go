package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

var (
	difficulty string
	width      int
	height     int
	mines      int
	seed       uint64
	verbose    bool
)

func init() {
	flag.StringVar(&difficulty, "difficulty", "beginner", "preset name, ignored when -width/-height/-mines are set")
	flag.IntVar(&width, "width", 0, "grid width")
	flag.IntVar(&height, "height", 0, "grid height")
	flag.IntVar(&mines, "mines", 0, "mine count")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func params() (minefield.Params, error) {
	if width != 0 || height != 0 || mines != 0 {
		return minefield.Params{Width: width, Height: height, MineCount: mines}, nil
	}
	d, err := config.LookupDifficulty(difficulty)
	if err != nil {
		return minefield.Params{}, err
	}
	return d.Params, nil
}

func main() {
	flag.Parse()

	minefield.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		minefield.Log.SetLevel(logrus.DebugLevel)
	}

	p, err := params()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	m, err := minefield.GenerateSeeded(p, seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("params %s seed %d\n", p.Seed(), seed)
	fmt.Print(m.Dump())
}
