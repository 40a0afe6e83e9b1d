package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meminfo/internal/config"
	"meminfo/internal/logger"
	reader "meminfo/internal/memory"
	"meminfo/internal/monitor"

	"k8s.io/apimachinery/pkg/util/wait"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	mon := monitor.NewMonitor(reader.NewMemoryReader(cfg.Source), log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Monitoring %s every %s\n", cfg.Source, cfg.Interval)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	run(ctx, mon, os.Stdout, cfg.Interval)

	fmt.Println("\nShutting down...")
}

// run prints a header, then polls right away and again one interval after
// each poll returns, printing a row per poll until ctx is done.
func run(ctx context.Context, mon *monitor.Monitor, out io.Writer, interval time.Duration) {
	fmt.Fprintf(out, "%-10s %-12s %-12s %-12s %-12s\n",
		"Time",
		"Dirty",
		"DirtyMax",
		"Writeback",
		"WritebackMax")

	wait.UntilWithContext(ctx, func(context.Context) {
		mon.Poll()
		printCounts(out, time.Now(), mon.Snapshot())
	}, interval)
}

func printCounts(out io.Writer, now time.Time, counters []monitor.Counter) {
	fmt.Fprintf(out, "%-10s", now.Format("15:04:05"))
	for _, c := range counters {
		fmt.Fprintf(out, " %-12s %-12s", c.Current, c.Highest)
	}
	fmt.Fprintln(out)
}
