// Package main provides a headless sweep tracer for the square enclosing line.
//
// It drives the node chain without opening a window: every tap is run to
// completion tick by tick and the resulting cursor, sweep direction and node
// progress are printed as YAML.
//
// Usage:
//
//	go run cmd/trace_sweep/main.go [flags]
//
// Flags:
//
//	--taps <n>         Number of taps to simulate (default: two full sweeps' worth, 2*nodes)
//	--config <path>    Stage config YAML (default: built-in defaults)
//	--verbose          Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/squareline/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	tapsFlag    = flag.Int("taps", 0, "Number of taps to simulate (0 = 2*nodes)")
	configFlag  = flag.String("config", "", "Path to a stage config YAML")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultStageConfig()
	if *configFlag != "" {
		loaded, err := config.LoadStageConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	taps := *tapsFlag
	if taps <= 0 {
		taps = 2 * cfg.Nodes
	}

	if err := writeTrace(os.Stdout, buildTrace(cfg, taps)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeTrace(w io.Writer, trace Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(trace); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	return enc.Close()
}
