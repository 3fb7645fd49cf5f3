package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM. Single-goroutine access only
// (simulation loop): host API calls and console chunks all execute there.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory tree. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "macros"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Eval runs a console chunk and returns its results rendered as a single
// tab-joined line. Errors raised inside the chunk (including host API usage
// errors) propagate to the caller.
func (e *Engine) Eval(src string) (string, error) {
	top := e.vm.GetTop()
	if err := e.vm.DoString(src); err != nil {
		e.vm.SetTop(top)
		return "", err
	}
	n := e.vm.GetTop() - top
	if n <= 0 {
		return "", nil
	}
	parts := make([]string, 0, n)
	for i := top + 1; i <= e.vm.GetTop(); i++ {
		parts = append(parts, e.vm.Get(i).String())
	}
	e.vm.SetTop(top)
	return strings.Join(parts, "\t"), nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
