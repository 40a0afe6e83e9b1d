package main

import (
	"fmt"
	"io"
	"os"

	"meminfo/internal/config"
	"meminfo/internal/logger"
	reader "meminfo/internal/memory"
	"meminfo/internal/model"
	"meminfo/internal/monitor"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the exit code, so deferred cleanup happens before main exits.
func run(args []string, stderr io.Writer, opts ...tea.ProgramOption) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	// The terminal belongs to the UI, so diagnostics only go to a log file.
	// The latest problem is also shown on the status line.
	log, closer, err := logger.New(cfg, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	log.Info("meminfo starting", "source", cfg.Source, "interval", cfg.Interval)

	mon := monitor.NewMonitor(reader.NewMemoryReader(cfg.Source), log)
	p := tea.NewProgram(model.NewModel(mon, cfg.Interval), opts...)
	if _, err := p.Run(); err != nil {
		log.Error("program stopped", "err", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}
