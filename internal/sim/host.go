// Package sim wires the live world, the Lua engine and the journal into a
// running host, and owns the tick systems that keep the world moving.
package sim

import (
	"sync"

	"go.uber.org/zap"

	"github.com/interactd/server/internal/interact"
	"github.com/interactd/server/internal/journal"
	"github.com/interactd/server/internal/scripting"
	"github.com/interactd/server/internal/world"
)

var _ interact.Accessor = (*world.State)(nil)

// Host ties the world state to the scripting engine. The host surfaces two
// initialization callbacks; whichever fires first performs the one-time
// setup (accessor binding, host API registration), the other is a no-op.
type Host struct {
	ws       *world.State
	engine   *scripting.Engine
	recorder *journal.Recorder // nil when journaling is disabled
	log      *zap.Logger

	initOnce sync.Once
	installs int // incremented inside the once body
}

func NewHost(ws *world.State, engine *scripting.Engine, recorder *journal.Recorder, log *zap.Logger) *Host {
	return &Host{ws: ws, engine: engine, recorder: recorder, log: log}
}

// WorldInit is the world-construction callback.
func (h *Host) WorldInit() {
	h.bootstrap()
}

// ScriptInit is the script-system callback.
func (h *Host) ScriptInit() {
	h.bootstrap()
}

func (h *Host) bootstrap() {
	h.initOnce.Do(func() {
		h.installs++
		h.engine.RegisterHostAPI(&scripting.HostAPI{
			Acc:        h.ws,
			Log:        h.log,
			OnInteract: h.journalInteraction,
		})
		h.log.Info("host api installed")
	})
}

// Initialized reports whether bootstrap has run.
func (h *Host) Initialized() bool {
	return h.installs > 0
}

// Exec runs one console chunk on the simulation goroutine.
func (h *Host) Exec(line string) (string, error) {
	return h.engine.Eval(line)
}

func (h *Host) journalInteraction(res scripting.Result) {
	if h.recorder == nil {
		return
	}
	h.recorder.Record(journal.Interaction{
		AgentID:  uint64(res.AgentID),
		TargetID: uint64(res.TargetID),
		Kind:     res.Kind.String(),
		Class:    res.Class.String(),
		Distance: res.Distance,
		Autoloot: res.Autoloot,
	})
}
