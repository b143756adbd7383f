package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/game/dice"
)

// globalKey is the reserved key for shared scripts loaded via LoadGlobal.
// CallHook and Global fall back to this VM when no keyed VM is found.
const globalKey = "__global__"

type script struct {
	L     *lua.LState
	limit int
}

// Manager owns one sandboxed LState per script key and dispatches hooks to it.
//
// Manager is safe for concurrent use; calls into the VMs are serialized.
type Manager struct {
	mu      sync.Mutex
	scripts map[string]*script
	roller  *dice.Roller
	logger  *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no scripts loaded.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting: NewManager requires a non-nil roller")
	}
	if logger == nil {
		panic("scripting: NewManager requires a non-nil logger")
	}
	return &Manager{
		scripts: make(map[string]*script),
		roller:  roller,
		logger:  logger,
	}
}

// Load creates a sandboxed VM for key, registers the engine module, then
// executes every *.lua file in scriptDir in lexicographic order. Loading an
// existing key replaces its VM.
//
// Precondition: key must be non-empty; scriptDir must be a readable directory.
func (m *Manager) Load(key, scriptDir string, instLimit int) error {
	if key == "" {
		return fmt.Errorf("scripting: key must not be empty")
	}
	return m.loadInto(key, scriptDir, instLimit)
}

// LoadGlobal creates the fallback VM shared by every key.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.loadInto(globalKey, scriptDir, instLimit)
}

// LoadDir loads each immediate sub-directory of root as a script keyed by
// the sub-directory name, and returns the loaded keys in order.
func (m *Manager) LoadDir(root string, instLimit int) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading script root %q: %w", root, err)
	}
	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := m.Load(e.Name(), filepath.Join(root, e.Name()), instLimit); err != nil {
			return nil, err
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}

func (m *Manager) loadInto(key, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState()
	m.RegisterModules(L, key)
	for _, path := range luaFiles {
		if err := RunWithLimit(L, instLimit, func() error { return L.DoFile(path) }); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.scripts[key]; ok {
		old.L.Close()
	}
	m.scripts[key] = &script{L: L, limit: instLimit}
	m.mu.Unlock()

	m.logger.Debug("scripting: loaded", zap.String("script", key), zap.Int("files", len(luaFiles)))
	return nil
}

// lookup returns the VM for key or the global fallback. Caller holds m.mu.
func (m *Manager) lookup(key string) *script {
	if s, ok := m.scripts[key]; ok {
		return s
	}
	return m.scripts[globalKey]
}

// Logger returns the logger scripts report through.
func (m *Manager) Logger() *zap.Logger {
	return m.logger
}

// Has reports whether key has its own VM.
func (m *Manager) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.scripts[key]
	return ok
}

// CallHook calls the named Lua global function in key's VM, falling back to
// the global VM. Returns (LNil, nil) if the hook is not defined or no VM
// exists. Lua runtime errors, including an exhausted instruction budget, are
// logged at Warn level and never propagated.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(key, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.lookup(key)
	if s == nil {
		m.logger.Info("scripting: no VM for script",
			zap.String("script", key),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	fn := s.L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, nil
	}

	err := RunWithLimit(s.L, s.limit, func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	})
	if err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("script", key),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Global returns the value of a Lua global in key's VM (or the global VM),
// or LNil when neither defines it.
func (m *Manager) Global(key, name string) lua.LValue {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.lookup(key)
	if s == nil {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Close releases every VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, s := range m.scripts {
		s.L.Close()
		delete(m.scripts, key)
	}
}
