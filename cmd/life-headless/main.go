package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"canvas-life/internal/app"
	"canvas-life/internal/core"
	"canvas-life/internal/loop"
	"canvas-life/internal/render"
	_ "canvas-life/internal/sims/life"
)

func main() {
	simName := flag.String("sim", "life", "simulation to run")
	frames := flag.Uint64("frames", 600, "frames to render before exiting (0 runs until interrupted)")
	hz := flag.Int("hz", 60, "refresh rate of the simulated display")
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}
	sim, err := factory(nil)
	if err != nil {
		log.Fatal(err)
	}
	if *hz <= 0 {
		*hz = 60
	}

	size := sim.Size()
	surface := render.NewImageSurface(render.CanvasSize(size.W, size.H))
	frame := app.NewFrame(sim, surface, core.NewMonotonicClock(), app.NewLogLabel(nil))
	frame.Paint()

	sched := loop.New()
	sched.Run(func() {
		frame.Run()
		if *frames > 0 && sched.Frames()+1 >= *frames {
			sched.Stop()
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = loop.RunTicker(ctx, sched, time.Second/time.Duration(*hz))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}

	fmt.Printf("%s %dx%d: %d frames in %s, generation %d, population %d, fps %s\n",
		sim.Name(), size.W, size.H, sched.Frames(), time.Since(start).Round(time.Millisecond),
		sim.Generation(), sim.Grid().Population(), core.FormatRate(frame.Meter.Rate()))
}
