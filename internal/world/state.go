package world

import (
	"go.uber.org/zap"
)

// State is the live world: the object manager plus the controlling agent and
// its focus. It implements the accessor capability set the selection core
// consumes. Owned by the simulation goroutine, no locks.
type State struct {
	mgr     *Manager
	agentID ObjectID
	focusID ObjectID
	log     *zap.Logger
}

func NewState(log *zap.Logger) *State {
	return &State{mgr: NewManager(), log: log}
}

// Spawn adds an entity to the world and returns its ID.
func (s *State) Spawn(e *Entity) ObjectID {
	id := s.mgr.Add(e)
	s.log.Debug("spawn",
		zap.Uint64("id", uint64(id)),
		zap.String("kind", e.Kind.String()),
		zap.String("name", e.Name))
	return id
}

// Despawn removes an entity. The focus is cleared if it pointed at it.
func (s *State) Despawn(id ObjectID) {
	s.mgr.Remove(id)
	if s.focusID == id {
		s.focusID = 0
	}
}

// SetAgent designates the controlling agent.
func (s *State) SetAgent(id ObjectID) {
	s.agentID = id
}

// Focus returns the agent's current focus target, 0 if none.
func (s *State) Focus() ObjectID {
	return s.focusID
}

// Entities returns a snapshot slice of all live entities, for tick systems.
// Mutating the world while ranging over the snapshot is safe.
func (s *State) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.mgr.byID))
	for l := s.mgr.ListHead(); !s.mgr.LinkIsTerminal(l); l = s.mgr.ListNext(l) {
		if e, ok := s.mgr.Resolve(s.mgr.EntityAt(l)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities.
func (s *State) Count() int {
	return s.mgr.Count()
}

// ── Accessor capability set ────────────────────────────────────────

// IsAgentActive reports whether the controlling agent is currently in-world.
func (s *State) IsAgentActive() bool {
	if s.agentID == 0 {
		return false
	}
	_, ok := s.mgr.Resolve(s.agentID)
	return ok
}

func (s *State) AgentID() ObjectID {
	return s.agentID
}

func (s *State) Resolve(id ObjectID) (*Entity, bool) {
	return s.mgr.Resolve(id)
}

func (s *State) ListHead() Link             { return s.mgr.ListHead() }
func (s *State) EntityAt(l Link) ObjectID   { return s.mgr.EntityAt(l) }
func (s *State) ListNext(l Link) Link       { return s.mgr.ListNext(l) }
func (s *State) LinkIsTerminal(l Link) bool { return s.mgr.LinkIsTerminal(l) }

func (s *State) KindOf(h *Entity) Kind {
	if h == nil {
		return KindNone
	}
	return h.Kind
}

// PositionOf returns an entity's position. Creatures and players carry their
// position inline; world objects resolve through their position record.
// Kinds without a position concept report ok=false.
func (s *State) PositionOf(h *Entity, kind Kind) (Vector3, bool) {
	switch kind {
	case KindCreature, KindPlayer:
		return h.Pos, true
	case KindWorldObject:
		if h.PosRecord == nil {
			return Vector3{}, false
		}
		return h.PosRecord.Pos, true
	}
	return Vector3{}, false
}

func (s *State) VitalityOf(h *Entity) int32 { return h.Vitality }
func (s *State) Lootable(h *Entity) bool    { return h.Lootable }
func (s *State) Skinnable(h *Entity) bool   { return h.Skinnable }

func (s *State) SummonedBy(h *Entity) ObjectID { return h.SummonedBy }

func (s *State) WorldObjectTypeID(h *Entity) int32 { return h.TypeID }

// SetFocus makes the given entity the agent's focus target.
func (s *State) SetFocus(id ObjectID) {
	s.focusID = id
	s.log.Debug("set focus", zap.Uint64("target", uint64(id)))
}

// Interact performs the world-side effect of interacting with an entity.
// intent > 0 requests auto-loot behavior where it applies.
func (s *State) Interact(h *Entity, intent int) {
	switch {
	case h.Kind == KindCreature && h.Vitality == 0 && h.Lootable:
		h.Lootable = false // loot taken
		s.log.Info("looted remains",
			zap.Uint64("target", uint64(h.ID)),
			zap.String("name", h.Name),
			zap.Int("autoloot", intent))
	case h.Kind == KindCreature && h.Vitality == 0 && h.Skinnable:
		h.Skinnable = false
		if h.DecayTicks > 2 {
			h.DecayTicks = 2 // skinned remains collapse quickly
		}
		s.log.Info("skinned remains",
			zap.Uint64("target", uint64(h.ID)),
			zap.String("name", h.Name))
	case h.Kind == KindWorldObject:
		h.Uses++
		s.log.Info("used world object",
			zap.Uint64("target", uint64(h.ID)),
			zap.String("name", h.Name),
			zap.Int32("type_id", h.TypeID),
			zap.Int("autoloot", intent))
	default:
		s.log.Info("engaged",
			zap.Uint64("target", uint64(h.ID)),
			zap.String("name", h.Name))
	}
}
