package sim

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/interactd/server/internal/data"
	"github.com/interactd/server/internal/world"
)

// pendingRespawn is a despawned spawn-list entity waiting to re-enter.
type pendingRespawn struct {
	spawnIndex int
	ticksLeft  int
}

// Simulator owns the per-tick world systems: creature wander, remains and
// effect decay, despawn and respawn. Runs on the simulation goroutine only.
type Simulator struct {
	ws        *world.State
	templates *data.EntityTable
	spawns    []data.SpawnEntry
	respawns  []pendingRespawn
	rng       *rand.Rand
	log       *zap.Logger
}

func NewSimulator(ws *world.State, templates *data.EntityTable, spawns []data.SpawnEntry, rng *rand.Rand, log *zap.Logger) *Simulator {
	return &Simulator{
		ws:        ws,
		templates: templates,
		spawns:    spawns,
		rng:       rng,
		log:       log,
	}
}

// SpawnAll populates the world from the spawn list and returns the number of
// entities created. Unknown template ids are logged and skipped.
func (s *Simulator) SpawnAll() int {
	total := 0
	for i := range s.spawns {
		sp := &s.spawns[i]
		tmpl := s.templates.Get(sp.TemplateID)
		if tmpl == nil {
			s.log.Warn("spawn: unknown template", zap.Int32("template_id", sp.TemplateID))
			continue
		}
		count := sp.Count
		if count < 1 {
			count = 1
		}
		for n := 0; n < count; n++ {
			s.spawnOne(i, sp, tmpl)
			total++
		}
	}
	return total
}

func (s *Simulator) spawnOne(spawnIndex int, sp *data.SpawnEntry, tmpl *data.EntityTemplate) world.ObjectID {
	pos := world.Vector3{X: sp.X, Y: sp.Y, Z: sp.Z}
	if sp.RandomRadius > 0 {
		pos.X += (s.rng.Float64()*2 - 1) * sp.RandomRadius
		pos.Y += (s.rng.Float64()*2 - 1) * sp.RandomRadius
	}

	e := &world.Entity{
		Kind:       world.ParseKind(tmpl.Kind),
		Name:       tmpl.Name,
		Vitality:   tmpl.Vitality,
		Lootable:   tmpl.Lootable,
		Skinnable:  tmpl.Skinnable,
		TypeID:     tmpl.TypeID,
		TemplateID: tmpl.TemplateID,
		SpawnIndex: spawnIndex,
		DecayTicks: tmpl.DecayTicks,
	}
	if e.Kind == world.KindWorldObject {
		e.PosRecord = &world.PosRecord{Pos: pos}
	} else {
		e.Pos = pos
	}
	return s.ws.Spawn(e)
}

// Tick advances the world one step.
func (s *Simulator) Tick() {
	// Respawn timers first so this tick's despawns wait a full delay.
	remaining := s.respawns[:0]
	for _, r := range s.respawns {
		r.ticksLeft--
		if r.ticksLeft > 0 {
			remaining = append(remaining, r)
			continue
		}
		sp := &s.spawns[r.spawnIndex]
		if tmpl := s.templates.Get(sp.TemplateID); tmpl != nil {
			s.spawnOne(r.spawnIndex, sp, tmpl)
		}
	}
	s.respawns = remaining

	for _, e := range s.ws.Entities() {
		switch {
		case e.Kind == world.KindCreature && e.Vitality > 0:
			s.wander(e)
		case e.DecayTicks > 0:
			e.DecayTicks--
			if e.DecayTicks <= 0 {
				s.despawn(e)
			}
		}
	}
}

// wander moves a living creature a small random step.
func (s *Simulator) wander(e *world.Entity) {
	tmpl := s.templates.Get(e.TemplateID)
	if tmpl == nil || tmpl.WanderStep <= 0 {
		return
	}
	e.Pos.X += (s.rng.Float64()*2 - 1) * tmpl.WanderStep
	e.Pos.Y += (s.rng.Float64()*2 - 1) * tmpl.WanderStep
}

func (s *Simulator) despawn(e *world.Entity) {
	s.ws.Despawn(e.ID)
	s.log.Debug("decayed",
		zap.Uint64("id", uint64(e.ID)),
		zap.String("name", e.Name))
	if e.SpawnIndex >= 0 {
		delay := s.spawns[e.SpawnIndex].RespawnDelay
		if delay <= 0 {
			delay = 1
		}
		s.respawns = append(s.respawns, pendingRespawn{spawnIndex: e.SpawnIndex, ticksLeft: delay})
	}
}
