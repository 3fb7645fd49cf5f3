package world

import (
	"math"
	"strconv"
	"strings"
)

// ObjectID identifies an entity for the lifetime of the process. IDs are
// never reused, so a stale ID held across ticks simply fails to resolve.
type ObjectID uint64

// Kind classifies an entity. The raw values are part of the host contract;
// anything outside the known range normalizes to KindNone.
type Kind uint8

const (
	KindNone Kind = iota
	KindItem
	KindContainer
	KindCreature // creature or non-player character
	KindPlayer
	KindWorldObject // chest, resource node, lever, ...
	KindEffect
	KindRemains
)

// KindFromRaw converts a raw kind value, normalizing unknown values to KindNone.
func KindFromRaw(v uint32) Kind {
	if v >= 1 && v <= uint32(KindRemains) {
		return Kind(v)
	}
	return KindNone
}

var kindNames = [...]string{"none", "item", "container", "creature", "player", "world_object", "effect", "remains"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "none"
}

// ParseKind maps a template kind to a Kind. Accepts the symbolic names and,
// for templates carrying the host's raw values, bare numerics. Anything else
// yields KindNone.
func ParseKind(name string) Kind {
	switch strings.ToLower(name) {
	case "item":
		return KindItem
	case "container":
		return KindContainer
	case "creature":
		return KindCreature
	case "player":
		return KindPlayer
	case "world_object":
		return KindWorldObject
	case "effect":
		return KindEffect
	case "remains":
		return KindRemains
	}
	if raw, err := strconv.ParseUint(name, 10, 32); err == nil {
		return KindFromRaw(uint32(raw))
	}
	return KindNone
}

// Vector3 is a position in world space.
type Vector3 struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance to another position.
func (v Vector3) Distance(o Vector3) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	dz := o.Z - v.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PosRecord is the indirect position record world objects carry. Creatures
// hold their live position inline; world objects resolve through this.
type PosRecord struct {
	Pos Vector3
}

// Entity is the in-memory record behind a resolved handle. Owned by the
// simulation goroutine; handles are only valid within one pass and must be
// re-resolved across ticks.
type Entity struct {
	ID   ObjectID
	Kind Kind
	Name string

	Pos       Vector3    // live position (creatures, players)
	PosRecord *PosRecord // world objects: indirect position record

	Vitality   int32 // creatures: current health; exactly zero = remains
	Lootable   bool
	Skinnable  bool
	SummonedBy ObjectID // spawner's ID, 0 = not summoned
	TypeID     int32    // world objects: numeric object type id
	Uses       int32    // world objects: times interacted with

	// Simulation bookkeeping, invisible to the selection core.
	TemplateID int32
	SpawnIndex int // index into the spawn list, -1 = ad hoc
	DecayTicks int // remains/effects: ticks until despawn, 0 = no decay
}
