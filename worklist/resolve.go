// SPDX-License-Identifier: MIT

package worklist

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

// Resolve sets every row's Location to the nearest (source, destination)
// pair over all locations registered for the two names. On equal distances
// the first pair in Find order wins: plates in creation order, then wells in
// fill order, source outer and destination inner.
//
// The registry must be fully populated and must not change while Resolve
// runs. Rows are resolved by up to workers goroutines. Every row side with no
// location yields an *UnresolvedLocationError; all of them are returned
// joined and the affected rows keep Resolved == false.
func Resolve(ctx context.Context, rows []Row, reg *plate.Registry, workers int) error {
	if workers < 1 {
		workers = 1
	}
	perRow := make([][]error, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perRow[i] = resolveRow(i, &rows[i], reg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for _, e := range perRow {
		errs = append(errs, e...)
	}

	return errors.Join(errs...)
}

// resolveRow runs the cross-product search for a single row.
func resolveRow(i int, r *Row, reg *plate.Registry) []error {
	srcs := reg.Find(r.SrcName)
	dests := reg.Find(r.DestName)

	var errs []error
	if len(srcs) == 0 {
		errs = append(errs, &UnresolvedLocationError{Row: i, Name: r.SrcName, Side: SideSource})
	}
	if len(dests) == 0 {
		errs = append(errs, &UnresolvedLocationError{Row: i, Name: r.DestName, Side: SideDestination})
	}
	if len(errs) > 0 {
		r.Resolved = false
		r.Location = Location{}
		return errs
	}

	best := -1
	var bestSrc, bestDest plate.Location
	for _, s := range srcs {
		for _, d := range dests {
			dist := well.Distance(s.Coord, d.Coord)
			if best < 0 || dist < best {
				best, bestSrc, bestDest = dist, s, d
			}
		}
	}

	r.Location = Location{
		SourcePlate:      bestSrc.PlateID,
		SourceWell:       bestSrc.Well,
		SourceIndex:      bestSrc.Index,
		SourceCoord:      bestSrc.Coord,
		DestinationPlate: bestDest.PlateID,
		DestinationWell:  bestDest.Well,
		DestinationIndex: bestDest.Index,
		DestinationCoord: bestDest.Coord,
		Distance:         best,
	}
	r.Resolved = true

	return nil
}
