package domain

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// shardOutcome holds one worker's share of the conjunctive cross product.
type shardOutcome struct {
	combined accumulator
	conflict float64
}

// FuseParallel is Fuse with the conjunctive cross product sharded across
// workers goroutines. The left operand's focal sets are split into
// contiguous runs of canonical key order and each worker combines its run
// against all of m2; shard partials are merged in shard order, so the
// result is deterministic for a fixed worker count (though not bit
// identical to the sequential fold, which associates additions
// differently).
//
// Average has no cross product and small inputs are not worth the fan-out;
// both fall through to the sequential Fuse.
func FuseParallel(ctx context.Context, m1, m2 *BeliefMass, rule FusionRule, workers int) (*FusionResult, error) {
	if rule == "" {
		rule = DefaultRule
	}
	if !m1.frame.Equal(m2.frame) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrIncompatibleFrames, m1.frame, m2.frame)
	}
	keys1 := m1.sortedKeys()
	if rule == RuleAverage || workers <= 1 || len(keys1) < 2 {
		return Fuse(m1, m2, rule)
	}
	if !ValidFusionRule(string(rule)) {
		return nil, fmt.Errorf("unknown fusion rule %q", rule)
	}
	if workers > len(keys1) {
		workers = len(keys1)
	}

	keys2 := m2.sortedKeys()
	shards := make([]shardOutcome, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * len(keys1) / workers
		hi := (w + 1) * len(keys1) / workers
		shards[w].combined = make(accumulator)
		shard := &shards[w]
		g.Go(func() error {
			for _, k1 := range keys1[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				e1 := m1.entries[k1]
				for _, k2 := range keys2 {
					e2 := m2.entries[k2]
					p := e1.mass * e2.mass
					switch {
					case e1.set.Intersects(e2.set):
						shard.combined.add(e1.set.Intersect(e2.set), p)
					case rule == RuleDuboisPrade:
						shard.combined.add(e1.set.Union(e2.set), p)
						shard.conflict += p
					default:
						shard.conflict += p
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel combination: %w", err)
	}

	combined := make(accumulator)
	k := 0.0
	for _, shard := range shards {
		keys := make([]string, 0, len(shard.combined))
		for key := range shard.combined {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			e := shard.combined[key]
			combined.add(e.set, e.mass)
		}
		k += shard.conflict
	}

	switch rule {
	case RuleDempster:
		return finalizeDempster(m1, combined, k)
	case RuleYager:
		return finalizeYager(m1, combined, k)
	default:
		return finalizeDuboisPrade(m1, combined, k)
	}
}
