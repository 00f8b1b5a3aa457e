// core/search/matcher.go
package search

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fastagrep-core/genome"
)

// ErrEmptyPattern is reported before any worker is dispatched.
var ErrEmptyPattern = errors.New("search: empty pattern")

// Config holds parallel search parameters.
type Config struct {
	Workers int // number of scan workers (0 = all CPUs)
}

// Matcher runs exact byte-pattern searches over a genome.Store.
// A Matcher is stateless between calls and safe for reuse; the store may be
// searched any number of times.
type Matcher struct {
	cfg Config
}

// New creates a new Matcher.
func New(c Config) *Matcher { return &Matcher{cfg: c} }

func (m *Matcher) workers() int {
	w := m.cfg.Workers
	if w == 0 {
		w = runtime.NumCPU()
	}
	if w < 1 {
		w = 1
	}
	return w
}

// FindAll returns the start offset of every occurrence of pattern within the
// store's valid bytes, ascending and deduplicated. The result is identical
// for any worker count: regions are disjoint by start-offset ownership and
// collected in region order, so no completion-order dependence and no final
// sort. A worker failure (context cancellation) fails the whole search; no
// partial results are returned.
func (m *Matcher) FindAll(ctx context.Context, store *genome.Store, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	valid := store.ValidLen()
	if valid == 0 || len(pattern) > valid {
		return nil, nil
	}

	buf := store.Bytes()
	regions := Partition(valid, m.workers())
	parts := make([][]int, len(regions))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range regions {
		if r.Len() == 0 {
			continue
		}
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = scanRange(buf, pattern, r.Lo, r.Hi, valid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]int, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
