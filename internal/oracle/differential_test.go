package oracle_test

import (
	"math/rand"
	"testing"

	"github.com/rbscholtus/brp-idbb/internal/brp"
	"github.com/rbscholtus/brp-idbb/internal/instance"
	"github.com/rbscholtus/brp-idbb/internal/oracle"
)

// randomInstance builds a small feasible-by-construction instance: a
// random permutation of 1..blocks distributed across stacks leaving at
// least one tier of headroom per stack, so MinMax-style greedy
// completion (and therefore both solvers) can always finish it.
func randomInstance(rng *rand.Rand, stacks, tiers, blocks int) *instance.Instance {
	perm := rng.Perm(blocks)
	inst := instance.New(stacks, tiers)
	for i := 0; i < blocks; i++ {
		s := rng.Intn(stacks)
		for inst.Heights[s] >= tiers-1 {
			s = (s + 1) % stacks
		}
		inst.Heights[s]++
		inst.Priorities[s][inst.Heights[s]] = perm[i] + 1
	}
	inst.Finalize()
	return inst
}

func TestDifferentialAgreesWithCanonicalSolver(t *testing.T) {
	rng := rand.New(rand.NewSource(20260801))

	for trial := 0; trial < 12; trial++ {
		stacks := 3 + rng.Intn(3) // 3..5
		tiers := 3 + rng.Intn(2)  // 3..4
		maxBlocks := stacks*(tiers-1) - 1
		blocks := 2 + rng.Intn(maxBlocks-1)

		inst := randomInstance(rng, stacks, tiers, blocks)
		if err := inst.Validate(); err != nil {
			t.Fatalf("trial %d produced an invalid instance: %v", trial, err)
		}

		canonical := brp.Solve(inst, 0, nil)
		reference, ok := oracle.Solve(inst, oracle.Options{MaxDepth: blocks * tiers})

		if canonical == nil && ok {
			t.Fatalf("trial %d: internal/brp called it infeasible but oracle found BestUB=%d", trial, reference.BestUB)
		}
		if canonical != nil && !ok {
			t.Fatalf("trial %d: oracle called it infeasible but internal/brp found BestUB=%d", trial, canonical.BestUB)
		}
		if canonical == nil {
			continue
		}
		if canonical.BestUB != reference.BestUB {
			t.Fatalf("trial %d: optimal relocation count disagrees: brp=%d oracle=%d (instance %+v)",
				trial, canonical.BestUB, reference.BestUB, inst)
		}
	}
}

func TestDifferentialTanakaVariantNeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 6; trial++ {
		inst := randomInstance(rng, 4, 3, 6)

		plain, okPlain := oracle.Solve(inst, oracle.Options{MaxDepth: 24})
		strict, okStrict := oracle.Solve(inst, oracle.Options{MaxDepth: 24, RulesByTanaka: true})

		if okPlain != okStrict {
			t.Fatalf("trial %d: RulesByTanaka changed feasibility: plain=%v strict=%v", trial, okPlain, okStrict)
		}
		if !okPlain {
			continue
		}
		if strict.BestUB != plain.BestUB {
			t.Fatalf("trial %d: RulesByTanaka changed the optimum: plain=%d strict=%d", trial, plain.BestUB, strict.BestUB)
		}
	}
}
