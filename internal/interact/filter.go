package interact

import (
	"github.com/interactd/server/internal/world"
)

// excludedObjectTypes lists world-object type ids unsuitable for
// auto-interaction. Built once at process start, read-only afterward.
var excludedObjectTypes = map[int32]struct{}{
	179830: {},
	179831: {},
	179785: {},
	179786: {},
}

// Excluded reports whether a world-object type id is on the exclusion list.
func Excluded(typeID int32) bool {
	_, ok := excludedObjectTypes[typeID]
	return ok
}

// Eligible decides whether an entity may be considered at all. Range and
// position checks belong to the selection pass, not here.
func Eligible(acc Accessor, h *world.Entity) bool {
	// Entities summoned by a player character are never auto-interacted
	// with. A summoner that no longer resolves counts as not summoned.
	if summoner := acc.SummonedBy(h); summoner != 0 {
		if sh, ok := acc.Resolve(summoner); ok && acc.KindOf(sh) == world.KindPlayer {
			return false
		}
	}

	if acc.KindOf(h) == world.KindWorldObject && Excluded(acc.WorldObjectTypeID(h)) {
		return false
	}

	return true
}
