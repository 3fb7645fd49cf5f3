package interact

import (
	"testing"

	"github.com/interactd/server/internal/world"
)

func TestFreshCandidateInvalid(t *testing.T) {
	c := newCandidate()
	if c.Valid() {
		t.Error("fresh candidate should be invalid")
	}
	if c.Distance != farDistance {
		t.Errorf("fresh candidate distance: expected %v, got %v", farDistance, c.Distance)
	}
}

func TestCandidateUpdateStrictlyCloser(t *testing.T) {
	c := newCandidate()
	h1 := &world.Entity{ID: 1}
	h2 := &world.Entity{ID: 2}

	c.Update(1, h1, world.KindCreature, 4.0)
	if !c.Valid() || c.ID != 1 {
		t.Fatalf("first update should record, got id %d", c.ID)
	}

	// Farther: ignored.
	c.Update(2, h2, world.KindCreature, 4.5)
	if c.ID != 1 {
		t.Errorf("farther entity replaced incumbent, got id %d", c.ID)
	}

	// Exact tie: incumbent wins.
	c.Update(2, h2, world.KindCreature, 4.0)
	if c.ID != 1 {
		t.Errorf("tie should keep first found, got id %d", c.ID)
	}

	// Strictly closer: replaces.
	c.Update(2, h2, world.KindCreature, 3.9)
	if c.ID != 2 || c.Distance != 3.9 {
		t.Errorf("closer entity should replace, got id %d dist %v", c.ID, c.Distance)
	}
}

func TestCandidateUpdateMonotonic(t *testing.T) {
	c := newCandidate()
	dists := []float64{4.8, 3.0, 3.0, 2.1, 4.9, 0.5}
	prev := c.Distance
	for i, d := range dists {
		c.Update(world.ObjectID(i+1), &world.Entity{}, world.KindCreature, d)
		if c.Distance > prev {
			t.Fatalf("recorded distance increased at step %d: %v -> %v", i, prev, c.Distance)
		}
		prev = c.Distance
	}
	if c.ID != 6 || c.Distance != 0.5 {
		t.Errorf("expected final id 6 at 0.5, got id %d at %v", c.ID, c.Distance)
	}
}

func TestClassPriorityOrder(t *testing.T) {
	if ClassLootableRemains >= ClassWorldObject ||
		ClassWorldObject >= ClassSkinnableRemains ||
		ClassSkinnableRemains >= ClassLivingCreature {
		t.Error("class declaration order must be priority order")
	}
}

func TestClassString(t *testing.T) {
	if ClassWorldObject.String() != "world_object" {
		t.Errorf("got %q", ClassWorldObject.String())
	}
	if Class(42).String() != "unknown" {
		t.Errorf("got %q", Class(42).String())
	}
}
