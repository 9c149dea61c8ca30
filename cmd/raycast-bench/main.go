package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"time"

	"gridcaster/internal/app"
)

type benchResult struct {
	workers  int
	frames   int
	elapsed  time.Duration
	perFrame time.Duration
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 200, "frames to render per worker count")
	maxWorkers := flag.Int("max-workers", runtime.NumCPU(), "largest worker count to try")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := cfg.NewLogger(os.Stderr)
	if rejected := cfg.Apply(overrides.Map()); len(rejected) > 0 {
		log.WithField("keys", rejected).Warn("ignoring invalid overrides")
	}

	if *maxWorkers < 1 {
		*maxWorkers = 1
	}
	var counts []int
	for w := 1; w <= *maxWorkers; w *= 2 {
		counts = append(counts, w)
	}
	if counts[len(counts)-1] != *maxWorkers {
		counts = append(counts, *maxWorkers)
	}

	fmt.Printf("Rendering %d frames of %dx%d on %q for worker counts %v\n", *frames, cfg.Width, cfg.Height, cfg.Level, counts)

	var results []benchResult
	for _, workers := range counts {
		cfg.Workers = workers
		session, err := app.NewSession(cfg, log)
		if err != nil {
			log.Fatal(err)
		}
		turn := 2 * math.Pi / float64(max(*frames, 1))

		start := time.Now()
		for i := 0; i < *frames; i++ {
			if _, err := session.Render(context.Background()); err != nil {
				log.Fatal(err)
			}
			if err := session.Player().Rotate(turn); err != nil {
				log.Fatal(err)
			}
		}
		elapsed := time.Since(start)
		res := benchResult{workers: workers, frames: *frames, elapsed: elapsed}
		if *frames > 0 {
			res.perFrame = elapsed / time.Duration(*frames)
		}
		results = append(results, res)
		fmt.Printf("  workers=%2d  %v total  %v/frame\n", workers, elapsed.Round(time.Millisecond), res.perFrame.Round(time.Microsecond))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed < results[j].elapsed })
	best := results[0]
	fps := 0.0
	if best.perFrame > 0 {
		fps = float64(time.Second) / float64(best.perFrame)
	}
	fmt.Printf("\nFastest: workers=%d at %v/frame (%.0f fps)\n", best.workers, best.perFrame.Round(time.Microsecond), fps)
}
