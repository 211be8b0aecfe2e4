// Command navdemo drives the wayfarer incremental replanner (package
// dstarlite) over the scripted scenarios from SPEC_FULL.md §11, and is
// the only place in this module that wires together every ambient and
// domain dependency at once: kong for subcommand parsing,
// charmbracelet/log for structured output, and prometheus for the
// serve subcommand's metrics endpoint.
//
// It is not part of the library's public API; nothing under dstarlite,
// ipq, or the adapter packages imports it.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var cli struct {
	Corridor    CorridorCmd    `cmd:"" help:"Straight 5x1 corridor, start=(0,0), goal=(4,0)."`
	Wall        WallCmd        `cmd:"" help:"3x3 grid wall insertion and 3x1 wall on the only route, demonstrating incremental replan."`
	MovingStart MovingStartCmd `cmd:"" help:"5x5 grid with UpdateStart mid-plan."`
	Skeleton    SkeletonCmd    `cmd:"" help:"Patrol skeleton over landmarks (prim_kruskal MST) replanned leg by leg."`
	Serve       ServeCmd       `cmd:"" help:"Serve Prometheus metrics while replaying a scripted change sequence."`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	kctx := kong.Parse(&cli,
		kong.Name("navdemo"),
		kong.Description("Drives the wayfarer incremental replanner over scripted scenarios."),
		kong.UsageOnError(),
	)
	err := kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}
