// Package interact implements the candidate-selection core: classify the
// entities visible to the controlling agent, filter by eligibility, rank by
// priority class and proximity, and pick one entity to act on.
package interact

import (
	"github.com/interactd/server/internal/world"
)

// Accessor is the capability set the core consumes from the live world.
// Every handle resolution is fallible: the world mutates between passes and
// entities may vanish. Implemented by *world.State.
type Accessor interface {
	IsAgentActive() bool
	AgentID() world.ObjectID
	Resolve(world.ObjectID) (*world.Entity, bool)

	// Visible-object list traversal. Termination is decided solely by
	// LinkIsTerminal (null link or low bit set); links are otherwise opaque.
	ListHead() world.Link
	EntityAt(world.Link) world.ObjectID
	ListNext(world.Link) world.Link
	LinkIsTerminal(world.Link) bool

	KindOf(*world.Entity) world.Kind
	PositionOf(*world.Entity, world.Kind) (world.Vector3, bool)
	VitalityOf(*world.Entity) int32
	Lootable(*world.Entity) bool
	Skinnable(*world.Entity) bool
	SummonedBy(*world.Entity) world.ObjectID
	WorldObjectTypeID(*world.Entity) int32

	// Action primitives.
	SetFocus(world.ObjectID)
	Interact(h *world.Entity, intent int)
}

// Select makes one pass over the visible-object list and returns the best
// candidate and its priority class. ok=false means nothing to do: agent not
// resolvable, or no eligible entity in range. Never an error: per-entity
// resolution failures are skipped.
func Select(acc Accessor) (Candidate, Class, bool) {
	agent, ok := acc.Resolve(acc.AgentID())
	if !ok {
		return Candidate{}, 0, false
	}
	agentPos, ok := acc.PositionOf(agent, acc.KindOf(agent))
	if !ok {
		return Candidate{}, 0, false
	}

	var cands [classCount]Candidate
	for i := range cands {
		cands[i] = newCandidate()
	}

	for l := acc.ListHead(); !acc.LinkIsTerminal(l); l = acc.ListNext(l) {
		h, ok := acc.Resolve(acc.EntityAt(l))
		if !ok {
			continue // despawned mid-scan
		}
		if !Eligible(acc, h) {
			continue
		}

		kind := acc.KindOf(h)
		pos, ok := acc.PositionOf(h, kind)
		if !ok {
			continue // kind has no position concept
		}
		dist := agentPos.Distance(pos)
		if dist > MaxInteractRange {
			continue
		}

		switch kind {
		case world.KindCreature:
			// Exactly zero vitality means remains. Lootable is checked
			// before skinnable, so an entity with both flags counts only
			// as lootable. Negative vitality is routed to living.
			if acc.VitalityOf(h) == 0 {
				if acc.Lootable(h) {
					cands[ClassLootableRemains].Update(h.ID, h, kind, dist)
				} else if acc.Skinnable(h) {
					cands[ClassSkinnableRemains].Update(h.ID, h, kind, dist)
				}
			} else {
				cands[ClassLivingCreature].Update(h.ID, h, kind, dist)
			}
		case world.KindWorldObject:
			cands[ClassWorldObject].Update(h.ID, h, kind, dist)
		}
	}

	// Priority dominates distance across classes; distance only broke ties
	// within a class.
	for i := range cands {
		if cands[i].Valid() {
			return cands[i], Class(i), true
		}
	}
	return Candidate{}, 0, false
}
