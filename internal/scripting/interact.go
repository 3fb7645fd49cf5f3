package scripting

import (
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/interactd/server/internal/interact"
	"github.com/interactd/server/internal/world"
)

// usageInteractNearest is raised verbatim to the Lua caller on a missing or
// non-numeric argument.
const usageInteractNearest = "Usage: InteractNearest(autoloot)"

// Result describes one completed interaction, for observers (journal).
type Result struct {
	AgentID  world.ObjectID
	TargetID world.ObjectID
	Kind     world.Kind
	Class    interact.Class
	Distance float64
	Autoloot int
}

// HostAPI binds world capabilities into the Lua VM.
type HostAPI struct {
	Acc        interact.Accessor
	Log        *zap.Logger
	OnInteract func(Result) // optional, called after a successful interaction
}

// RegisterHostAPI installs the host command set as Lua globals.
func (e *Engine) RegisterHostAPI(api *HostAPI) {
	e.vm.SetGlobal("InteractNearest", e.vm.NewFunction(api.interactNearest))
	e.log.Debug("registered host api", zap.String("fn", "InteractNearest"))
}

// interactNearest implements Lua InteractNearest(autoloot): pick the best
// eligible entity within reach and interact with it. Pushes true on success,
// nothing when there was nothing to do.
func (api *HostAPI) interactNearest(L *lua.LState) int {
	// Agent gone from the world entirely: quiet no-result, checked before
	// the arguments are even looked at.
	if !api.Acc.IsAgentActive() {
		return 0
	}

	arg := L.Get(1)
	if !luaIsNumber(arg) {
		L.RaiseError(usageInteractNearest)
		return 0 // unreachable, RaiseError does not return
	}
	autoloot := int(lua.LVAsNumber(arg))

	cand, class, ok := interact.Select(api.Acc)
	if !ok {
		return 0
	}

	switch cand.Kind {
	case world.KindCreature:
		api.Acc.SetFocus(cand.ID)
		api.Acc.Interact(cand.Handle, autoloot)
	case world.KindWorldObject:
		api.Acc.Interact(cand.Handle, autoloot)
	default:
		// Unreachable given the selection dispatch; treated as nothing-to-do.
		return 0
	}

	api.Log.Debug("interact nearest",
		zap.Uint64("target", uint64(cand.ID)),
		zap.String("class", class.String()),
		zap.Float64("distance", cand.Distance))

	if api.OnInteract != nil {
		api.OnInteract(Result{
			AgentID:  api.Acc.AgentID(),
			TargetID: cand.ID,
			Kind:     cand.Kind,
			Class:    class,
			Distance: cand.Distance,
			Autoloot: autoloot,
		})
	}

	L.Push(lua.LTrue)
	return 1
}

// luaIsNumber mirrors lua_isnumber: a number, or a string convertible to
// one, passes.
func luaIsNumber(v lua.LValue) bool {
	switch v := v.(type) {
	case lua.LNumber:
		return true
	case lua.LString:
		_, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return err == nil
	}
	return false
}
