package interact

import (
	"github.com/interactd/server/internal/world"
)

const (
	// MaxInteractRange is the interaction reach in world distance units.
	MaxInteractRange = 5.0

	// farDistance initializes candidates. Must exceed MaxInteractRange so a
	// fresh candidate loses to any in-range entity.
	farDistance = 1000.0
)

// Class is a candidate priority bucket. Declaration order is priority
// order, highest first.
type Class int

const (
	ClassLootableRemains Class = iota
	ClassWorldObject
	ClassSkinnableRemains
	ClassLivingCreature
	classCount
)

var classNames = [...]string{"lootable_remains", "world_object", "skinnable_remains", "living_creature"}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Candidate tracks the best entity seen so far for one priority class.
// A fresh candidate is invalid: KindNone and a distance beyond reach.
// Candidates live for a single selection pass only.
type Candidate struct {
	ID       world.ObjectID
	Handle   *world.Entity
	Kind     world.Kind
	Distance float64
}

func newCandidate() Candidate {
	return Candidate{Kind: world.KindNone, Distance: farDistance}
}

// Valid reports whether an eligible entity has been recorded.
func (c *Candidate) Valid() bool {
	return c.Kind != world.KindNone
}

// Update records the entity iff it is strictly closer than the stored one.
// Exact ties keep the incumbent: first found wins. The caller has already
// checked range and kind.
func (c *Candidate) Update(id world.ObjectID, handle *world.Entity, kind world.Kind, distance float64) {
	if distance < c.Distance {
		c.ID = id
		c.Handle = handle
		c.Kind = kind
		c.Distance = distance
	}
}
