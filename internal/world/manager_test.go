package world

import "testing"

func collectIDs(m *Manager) []ObjectID {
	var ids []ObjectID
	for l := m.ListHead(); !m.LinkIsTerminal(l); l = m.ListNext(l) {
		ids = append(ids, m.EntityAt(l))
	}
	return ids
}

func TestManagerEmptyListTerminates(t *testing.T) {
	m := NewManager()
	if !m.LinkIsTerminal(m.ListHead()) {
		t.Fatal("empty list head should be terminal")
	}
	if m.Count() != 0 {
		t.Errorf("expected 0 entities, got %d", m.Count())
	}
}

func TestManagerTraversalOrder(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{Kind: KindCreature, Name: "a"})
	b := m.Add(&Entity{Kind: KindCreature, Name: "b"})
	c := m.Add(&Entity{Kind: KindCreature, Name: "c"})

	ids := collectIDs(m)
	if len(ids) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ids))
	}
	want := []ObjectID{a, b, c}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected id %d, got %d", i, want[i], ids[i])
		}
	}
}

func TestManagerLinkShapes(t *testing.T) {
	m := NewManager()
	m.Add(&Entity{Kind: KindCreature})

	head := m.ListHead()
	if head&1 != 0 {
		t.Errorf("live link should be even, got %d", head)
	}
	if m.LinkIsTerminal(head) {
		t.Error("live link reported terminal")
	}

	tail := m.ListNext(head)
	if !m.LinkIsTerminal(tail) {
		t.Errorf("tail link %d should be terminal", tail)
	}

	// Both terminal shapes count.
	if !m.LinkIsTerminal(0) {
		t.Error("zero link should be terminal")
	}
	if !m.LinkIsTerminal(7) {
		t.Error("odd link should be terminal")
	}
}

func TestManagerRemoveMiddle(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{Name: "a"})
	b := m.Add(&Entity{Name: "b"})
	c := m.Add(&Entity{Name: "c"})

	m.Remove(b)

	if _, ok := m.Resolve(b); ok {
		t.Error("removed entity should not resolve")
	}
	ids := collectIDs(m)
	if len(ids) != 2 || ids[0] != a || ids[1] != c {
		t.Errorf("expected [%d %d], got %v", a, c, ids)
	}
}

func TestManagerRemoveHeadAndTail(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{Name: "a"})
	b := m.Add(&Entity{Name: "b"})
	c := m.Add(&Entity{Name: "c"})

	m.Remove(a)
	m.Remove(c)

	ids := collectIDs(m)
	if len(ids) != 1 || ids[0] != b {
		t.Errorf("expected [%d], got %v", b, ids)
	}

	// Append after tail removal must still link correctly.
	d := m.Add(&Entity{Name: "d"})
	ids = collectIDs(m)
	if len(ids) != 2 || ids[0] != b || ids[1] != d {
		t.Errorf("expected [%d %d], got %v", b, d, ids)
	}
}

func TestManagerRemoveLast(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{Name: "a"})
	m.Remove(a)

	if !m.LinkIsTerminal(m.ListHead()) {
		t.Error("head should be terminal after removing the only entity")
	}
	if m.Count() != 0 {
		t.Errorf("expected 0 entities, got %d", m.Count())
	}

	b := m.Add(&Entity{Name: "b"})
	ids := collectIDs(m)
	if len(ids) != 1 || ids[0] != b {
		t.Errorf("expected [%d], got %v", b, ids)
	}
}

func TestManagerIDsNeverReused(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{})
	m.Remove(a)
	b := m.Add(&Entity{})
	if b == a {
		t.Errorf("id %d was reused", a)
	}
}

func TestManagerRemoveUnknownIsNoop(t *testing.T) {
	m := NewManager()
	a := m.Add(&Entity{})
	m.Remove(999)
	if _, ok := m.Resolve(a); !ok {
		t.Error("existing entity lost after removing unknown id")
	}
}
