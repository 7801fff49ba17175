// SPDX-License-Identifier: MIT

package worklist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/assemblygenie/core"
)

// Generator plans a worklist for one graph. The first successful plan is
// cached and returned by later calls; a failed plan is retried on the next call.
type Generator struct {
	graph *core.Graph
	opts  Options

	mu sync.Mutex
	wl *Worklist
}

// NewGenerator prepares a Generator for g.
func NewGenerator(g *core.Graph, opts ...Option) *Generator {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Generator{graph: g, opts: o}
}

// Worklist returns the ordered worklist, planning it on first use.
func (gen *Generator) Worklist(ctx context.Context) (*Worklist, error) {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	if gen.wl != nil {
		return gen.wl, nil
	}
	wl, err := generate(ctx, gen.graph, gen.opts)
	if err != nil {
		return nil, err
	}
	gen.wl = wl

	return wl, nil
}

// Generate runs Traverse, Populate, Resolve and Order for g. On error no
// worklist is returned.
func Generate(ctx context.Context, g *core.Graph, opts ...Option) (*Worklist, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return generate(ctx, g, o)
}

func generate(ctx context.Context, g *core.Graph, opts Options) (*Worklist, error) {
	log, reg := opts.Logger, opts.Registry
	start := time.Now()

	// 1. Traverse
	rows, err := Traverse(ctx, g)
	if err != nil {
		return nil, err
	}
	log.Debug("graph traversed", zap.Int("rows", len(rows)), zap.Int("edges", g.EdgeCount()))

	// 2. Populate
	if err = Populate(rows, reg); err != nil {
		return nil, err
	}
	log.Debug("plates populated", zap.Int("plates", len(reg.Plates())))

	// 3. Resolve
	if err = Resolve(ctx, rows, reg, opts.Workers); err != nil {
		return nil, fmt.Errorf("worklist: resolve: %w", err)
	}

	// 4. Order
	Order(rows)

	log.Info("worklist planned",
		zap.Int("operations", len(rows)),
		zap.Int("plates", len(reg.Plates())),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Worklist{Rows: rows, Registry: reg}, nil
}
