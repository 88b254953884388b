// Package enumerator implements the breadth-first search that discovers every
// satchel reachable from a seed by minimal coin exchanges.
package enumerator

import (
	"context"

	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of the frontier handed to one worker.
const minChunk = 64

// Options configures one enumeration run.
type Options struct {
	// Parallelism is the number of workers expanding the frontier.
	// Values below 2 expand serially.
	Parallelism int
	// Observer, when set, is told when each round starts and completes.
	Observer ports.RoundObserver
}

// Result holds every distinct satchel discovered from the seed.
type Result struct {
	Seed domain.Satchel
	// Satchels lists the results in discovery order, seed first.
	Satchels []domain.Satchel
	// Rounds is the number of frontier generations that were expanded.
	Rounds int
}

// Contains reports whether the result holds a satchel with the given key.
func (r *Result) Contains(key domain.Key) bool {
	for _, s := range r.Satchels {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// Enumerator runs the exchange search.
type Enumerator struct {
	tracer ports.Tracer
}

// New creates a new Enumerator.
func New(tracer ports.Tracer) *Enumerator {
	return &Enumerator{tracer: tracer}
}

// runState is the search state owned by a single Run call.
type runState struct {
	results  map[domain.Key]struct{}
	order    []domain.Satchel
	frontier []domain.Satchel
	opts     Options
}

// Run expands the seed until no new satchel can be produced.
// The only error it returns is the context's, once it is done.
func (e *Enumerator) Run(ctx context.Context, seed domain.Satchel, opts Options) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "enumerate")
	defer span.End()
	span.SetAttribute("amount", seed.Value())
	span.SetAttribute("parallelism", opts.Parallelism)

	state := &runState{
		results:  make(map[domain.Key]struct{}),
		frontier: []domain.Satchel{seed},
		opts:     opts,
	}

	rounds := 0
	for len(state.frontier) > 0 {
		if err := ctx.Err(); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrEnumerationCanceled.Error()), "round", rounds)
			span.RecordError(err)
			return nil, err
		}

		rounds++
		if err := e.round(ctx, state, rounds); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	span.SetAttribute("rounds", rounds)
	span.SetAttribute("results", len(state.order))

	return &Result{
		Seed:     seed,
		Satchels: state.order,
		Rounds:   rounds,
	}, nil
}

// round records the frontier as results and replaces it with the satchels
// first seen during its expansion.
func (e *Enumerator) round(ctx context.Context, state *runState, n int) error {
	ctx, span := e.tracer.Start(ctx, "enumerate.round")
	defer span.End()
	span.SetAttribute("round", n)
	span.SetAttribute("frontier", len(state.frontier))
	if state.opts.Observer != nil {
		state.opts.Observer.OnRoundStart(n, len(state.frontier))
	}

	for _, s := range state.frontier {
		if _, ok := state.results[s.Key()]; ok {
			continue
		}
		state.results[s.Key()] = struct{}{}
		state.order = append(state.order, s)
	}

	candidates, err := state.expand(ctx)
	if err != nil {
		return err
	}

	scratch := make(map[domain.Key]struct{})
	var next []domain.Satchel
	for _, c := range candidates {
		key := c.Key()
		if _, ok := state.results[key]; ok {
			continue
		}
		if _, ok := scratch[key]; ok {
			continue
		}
		scratch[key] = struct{}{}
		next = append(next, c)
	}

	span.SetAttribute("discovered", len(next))
	span.SetAttribute("results", len(state.order))
	state.frontier = next
	if state.opts.Observer != nil {
		state.opts.Observer.OnRoundComplete(n, len(next), len(state.order))
	}
	return nil
}

// expand applies every exchange pair to every frontier satchel.
// results is only read while workers run.
func (state *runState) expand(ctx context.Context) ([]domain.Satchel, error) {
	pairs := domain.Pairs()
	workers := state.opts.Parallelism
	if workers < 2 || len(state.frontier) < 2*minChunk {
		return state.neighbors(state.frontier, pairs), nil
	}

	chunk := (len(state.frontier) + workers - 1) / workers
	chunk = max(chunk, minChunk)
	parts := make([][]domain.Satchel, (len(state.frontier)+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range parts {
		lo := i * chunk
		hi := min(lo+chunk, len(state.frontier))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = state.neighbors(state.frontier[lo:hi], pairs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEnumerationCanceled.Error())
	}

	var out []domain.Satchel
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// neighbors returns the satchels one exchange away from the given ones that
// are not yet results. Duplicates are left for the caller to drop.
func (state *runState) neighbors(from []domain.Satchel, pairs []domain.Pair) []domain.Satchel {
	var out []domain.Satchel
	for _, s := range from {
		for _, p := range pairs {
			next, ok := domain.Exchange(s, p.Low, p.High)
			if !ok {
				continue
			}
			if _, seen := state.results[next.Key()]; seen {
				continue
			}
			out = append(out, next)
		}
	}
	return out
}
