package world

import (
	"math"
	"testing"
)

func TestKindFromRaw(t *testing.T) {
	cases := []struct {
		raw  uint32
		want Kind
	}{
		{0, KindNone},
		{3, KindCreature},
		{5, KindWorldObject},
		{7, KindRemains},
		{8, KindNone},
		{200, KindNone},
	}
	for _, c := range cases {
		if got := KindFromRaw(c.raw); got != c.want {
			t.Errorf("KindFromRaw(%d): expected %v, got %v", c.raw, c.want, got)
		}
	}
}

func TestParseKind(t *testing.T) {
	if ParseKind("world_object") != KindWorldObject {
		t.Error("world_object did not parse")
	}
	if ParseKind("CREATURE") != KindCreature {
		t.Error("kind names should be case-insensitive")
	}
	if ParseKind("dragon") != KindNone {
		t.Error("unknown kind should map to KindNone")
	}
}

func TestParseKindRawValues(t *testing.T) {
	// Templates may carry the host's raw numeric kind instead of a name.
	if ParseKind("5") != KindWorldObject {
		t.Error("raw 5 should parse as world object")
	}
	if ParseKind("3") != KindCreature {
		t.Error("raw 3 should parse as creature")
	}
	if ParseKind("0") != KindNone {
		t.Error("raw 0 is not a valid target kind")
	}
	if ParseKind("42") != KindNone {
		t.Error("out-of-range raw value should normalize to KindNone")
	}
	if ParseKind("-1") != KindNone {
		t.Error("negative raw value should map to KindNone")
	}
}

func TestKindString(t *testing.T) {
	if KindWorldObject.String() != "world_object" {
		t.Errorf("got %q", KindWorldObject.String())
	}
	if Kind(99).String() != "none" {
		t.Errorf("out-of-range kind: got %q", Kind(99).String())
	}
}

func TestVector3Distance(t *testing.T) {
	a := Vector3{0, 0, 0}
	b := Vector3{3, 4, 0}
	if d := a.Distance(b); d != 5.0 {
		t.Errorf("expected 5.0, got %v", d)
	}
	if d := b.Distance(a); d != 5.0 {
		t.Errorf("distance should be symmetric, got %v", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Errorf("self distance should be 0, got %v", d)
	}

	c := Vector3{1, 1, 1}
	if d := a.Distance(c); math.Abs(d-math.Sqrt(3)) > 1e-12 {
		t.Errorf("expected sqrt(3), got %v", d)
	}
}
