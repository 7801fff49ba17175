// SPDX-License-Identifier: MIT

// Command worklist plans the liquid-handling worklist of an assembly
// protocol and writes it, with the plate layout, as CSV.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/assemblygenie/config"
	"github.com/katalvlaran/assemblygenie/export"
	"github.com/katalvlaran/assemblygenie/internal/logging"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/protocol"
	"github.com/katalvlaran/assemblygenie/worklist"
)

// Output file names inside -out.
const (
	worklistFile = "worklist.csv"
	platesFile   = "plates.csv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()

	if err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit.
func run(ctx context.Context, out io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, out)
	if err != nil || shouldExit {
		return err
	}

	// 1. Configuration and logger
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))

	// 2. Protocol and seeded plates
	proto, err := protocol.Load(opts.ProtocolPath)
	if err != nil {
		return err
	}
	reg := plate.NewRegistry(cfg.PlateOptions()...)
	if err = proto.Seed(reg); err != nil {
		return err
	}
	log.Debug("protocol loaded",
		zap.String("path", opts.ProtocolPath),
		zap.Int("nodes", proto.Graph.NodeCount()),
		zap.Int("edges", proto.Graph.EdgeCount()),
		zap.Int("seeded_plates", len(proto.Plates)),
	)

	// 3. Plan
	wl, err := worklist.Generate(ctx, proto.Graph,
		worklist.WithRegistry(reg),
		worklist.WithLogger(log),
		worklist.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}
	for _, id := range opts.Spread {
		if err = wl.SpreadSource(id); err != nil {
			return err
		}
		log.Debug("source plate spread", zap.String("plate", id))
	}

	// 4. Export
	if err = os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	wlPath := filepath.Join(opts.OutDir, worklistFile)
	if err = writeFile(wlPath, func(w io.Writer) error { return export.WriteWorklist(w, wl) }); err != nil {
		return err
	}
	layout := reg.Layout()
	if err = writeFile(filepath.Join(opts.OutDir, platesFile), func(w io.Writer) error {
		return export.WriteLayout(w, layout)
	}); err != nil {
		return err
	}

	if opts.ShowPlates {
		for _, pl := range layout {
			fmt.Fprintln(out, renderPlate(pl))
		}
	}
	fmt.Fprintf(out, "planned %d operations on %d plates -> %s\n", len(wl.Rows), len(layout), wlPath)

	return nil
}

// writeFile creates path and hands it to fn, keeping fn's error first.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return fn(f)
}
