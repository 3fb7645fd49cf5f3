package world

// Link is an opaque cursor into the visible-object list. Live entries are
// always even; a zero link or a link with its lowest bit set marks the end
// of the list. Callers must not do arithmetic on links; termination is
// decided by LinkIsTerminal only.
type Link uint64

// linkEnd terminates the list. Odd on purpose: both terminal shapes (zero
// head on an empty list, low-bit-set tail link) occur in practice.
const linkEnd Link = 1

type listEntry struct {
	id   ObjectID
	prev Link
	next Link
}

// Manager owns the entity store and the visible-object list. Single
// goroutine access only (simulation loop), no locks.
type Manager struct {
	head    Link
	tail    Link
	entries map[Link]*listEntry

	byID   map[ObjectID]*Entity
	links  map[ObjectID]Link
	nextID ObjectID
	nextLn Link
}

func NewManager() *Manager {
	return &Manager{
		entries: make(map[Link]*listEntry),
		byID:    make(map[ObjectID]*Entity),
		links:   make(map[ObjectID]Link),
		nextID:  1,
		nextLn:  2,
	}
}

// NewID allocates a fresh ObjectID.
func (m *Manager) NewID() ObjectID {
	id := m.nextID
	m.nextID++
	return id
}

// Add registers an entity and appends it to the visible-object list.
// Entities with a zero ID get a fresh one.
func (m *Manager) Add(e *Entity) ObjectID {
	if e.ID == 0 {
		e.ID = m.NewID()
	}
	m.byID[e.ID] = e

	l := m.nextLn
	m.nextLn += 2
	le := &listEntry{id: e.ID, prev: m.tail, next: linkEnd}
	m.entries[l] = le
	if m.head == 0 {
		m.head = l
	} else {
		m.entries[m.tail].next = l
	}
	m.tail = l
	m.links[e.ID] = l
	return e.ID
}

// Remove unregisters an entity. Subsequent Resolve calls for its ID fail.
func (m *Manager) Remove(id ObjectID) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	delete(m.byID, id)
	l := m.links[id]
	delete(m.links, id)

	le := m.entries[l]
	if le == nil {
		return
	}
	if le.prev != 0 {
		m.entries[le.prev].next = le.next
	} else if m.LinkIsTerminal(le.next) {
		m.head = 0
	} else {
		m.head = le.next
	}
	if m.LinkIsTerminal(le.next) {
		m.tail = le.prev
	} else {
		m.entries[le.next].prev = le.prev
	}
	delete(m.entries, l)
}

// Resolve looks up a live entity by ID. The second return is false when the
// entity has despawned; callers skip, they never fail the pass.
func (m *Manager) Resolve(id ObjectID) (*Entity, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// ListHead returns the first link of the visible-object list.
func (m *Manager) ListHead() Link {
	return m.head
}

// EntityAt returns the ObjectID stored at a list link.
func (m *Manager) EntityAt(l Link) ObjectID {
	if le := m.entries[l]; le != nil {
		return le.id
	}
	return 0
}

// ListNext returns the link following l.
func (m *Manager) ListNext(l Link) Link {
	if le := m.entries[l]; le != nil {
		return le.next
	}
	return linkEnd
}

// LinkIsTerminal reports whether a link marks the end of the list.
func (m *Manager) LinkIsTerminal(l Link) bool {
	return l == 0 || l&1 != 0
}

// Count returns the number of live entities.
func (m *Manager) Count() int {
	return len(m.byID)
}
