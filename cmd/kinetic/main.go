// Command kinetic runs stop energy scenarios and records their trajectories.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/kinetic/debug"
	"github.com/oomph-ac/kinetic/param"
	"github.com/oomph-ac/kinetic/simulation"
	"github.com/oomph-ac/kinetic/trajectory"
	"github.com/oomph-ac/kinetic/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	paramsPath := flag.String("params", "", "parameter file (TOML or YAML) merged over the defaults")
	outDir := flag.String("out", "", "directory to write one CSV recording per scenario to")
	expectDir := flag.String("expect", "", "directory of expected recordings to compare against")
	debugModes := flag.String("debug", "", "comma separated debug modes, or \"all\"")
	disable := flag.Bool("disable", false, "run with the stop energy state machine disabled")
	limit := flag.Int("j", 0, "amount of scenarios to run at once, defaults to the amount of CPUs")
	verbose := flag.Bool("v", false, "enable debug logging")
	dumpParams := flag.Bool("dump-params", false, "print the effective parameters and exit")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || *debugModes != "" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(time.Second * 5)
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	modes, err := debug.ParseModes(*debugModes)
	if err != nil {
		return err
	}
	var dbg *debug.Debugger
	if modes != 0 {
		dbg = debug.New(log, modes)
	}

	base := param.Defaults()
	if *paramsPath != "" {
		custom, err := param.Load(*paramsPath)
		if err != nil {
			return err
		}
		base.Merge(custom)
	}
	if *dumpParams {
		return writeParams(os.Stdout, base)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		return errors.New("usage: kinetic [flags] scenario.yaml...")
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	jobs := make([]worker.Job, len(paths))
	for i, path := range paths {
		jobs[i] = func(ctx context.Context) error {
			return runScenario(ctx, path, base, log, dbg, *disable, *outDir, *expectDir)
		}
	}
	return worker.Run(ctx, *limit, jobs...)
}

// runScenario runs the scenario at path, writes its recording to outDir and compares it against the
// recording of the same name in expectDir. Empty directories skip the respective step.
func runScenario(ctx context.Context, path string, base *param.Store, log *slog.Logger, dbg *debug.Debugger, disable bool, outDir, expectDir string) error {
	sc, err := simulation.LoadScenario(path)
	if err != nil {
		return err
	}
	if disable {
		enabled := false
		sc.Enabled = &enabled
	}

	start := time.Now()
	frames, err := sc.Run(ctx, base, log, dbg)
	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	rec := trajectory.NewRecording(sc.Name, frames)
	log.Info("scenario simulated", "path", path, "name", sc.Name, "frames", len(frames), "run", rec.RunID, "took", time.Since(start))

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".csv"
	if outDir != "" {
		if err := rec.WriteFile(filepath.Join(outDir, name)); err != nil {
			return err
		}
	}
	if expectDir == "" {
		return nil
	}
	want, err := trajectory.ReadFile(filepath.Join(expectDir, name))
	if err != nil {
		return err
	}
	diff, err := trajectory.Compare(want.Frames, frames)
	if err != nil {
		return fmt.Errorf("compare %s: %w", path, err)
	}
	if !diff.Equal() {
		log.Warn("trajectory differs", "path", path, "mismatches", diff.Mismatches, "distance", diff.Distance, "max_delta", diff.MaxDelta, "mean_delta", diff.MeanDelta)
		return fmt.Errorf("%s: %d mismatches, first at %s", path, diff.Mismatches, diff.First)
	}
	log.Info("trajectory matches", "path", path, "frames", diff.Frames)
	return nil
}

// writeParams writes every parameter of s as a group.name = value line, in store order.
func writeParams(w io.Writer, s *param.Store) error {
	for _, e := range s.Entries() {
		if _, err := fmt.Fprintf(w, "%s = %v\n", e.Key, e.Float); err != nil {
			return err
		}
	}
	return nil
}
