package scripting_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/protocols/internal/game/dice"
	"github.com/cory-johannsen/protocols/internal/scripting"
)

func newTestManager(t testing.TB) (*scripting.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	src := dice.GeneratorSource{Gen: dice.NewDefaultLCG()}
	roller := dice.NewLoggedRoller(src, logger)
	mgr := scripting.NewManager(roller, logger)
	t.Cleanup(mgr.Close)
	return mgr, logs
}

func writeTempLua(t testing.TB, filename, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(src), 0644))
	return dir
}

func TestManager_Load_CallsHook(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "hooks.lua", `
		function test_hook(a, b)
			return a + b
		end
	`)
	require.NoError(t, mgr.Load("adder", dir, 0))
	assert.True(t, mgr.Has("adder"))
	ret, err := mgr.CallHook("adder", "test_hook", lua.LNumber(3), lua.LNumber(4))
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(7), ret)
}

func TestManager_Load_EmptyKey(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.Error(t, mgr.Load("", t.TempDir(), 0))
}

func TestManager_CallHook_MissingHook_NoOp(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "empty.lua", `-- no functions`)
	require.NoError(t, mgr.Load("empty", dir, 0))
	ret, err := mgr.CallHook("empty", "nonexistent_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_NonFunctionGlobal_NoOp(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "value.lua", `not_a_function = 3`)
	require.NoError(t, mgr.Load("value", dir, 0))
	ret, err := mgr.CallHook("value", "not_a_function")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_UnknownKey_LogsInfoReturnsNil(t *testing.T) {
	mgr, logs := newTestManager(t)
	ret, err := mgr.CallHook("no_such_script", "some_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterMessage("scripting: no VM for script").Len())
}

func TestManager_CallHook_RuntimeError_WarnLogNoPanic(t *testing.T) {
	mgr, logs := newTestManager(t)
	dir := writeTempLua(t, "bad.lua", `
		function bad_hook()
			error("intentional error")
		end
	`)
	require.NoError(t, mgr.Load("bad", dir, 0))
	ret, err := mgr.CallHook("bad", "bad_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestManager_CallHook_InstructionLimit_WarnLog(t *testing.T) {
	mgr, logs := newTestManager(t)
	dir := writeTempLua(t, "spin.lua", `
		function spin()
			while true do end
		end
		function ok() return 1 end
	`)
	require.NoError(t, mgr.Load("spin", dir, 100))
	ret, err := mgr.CallHook("spin", "spin")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())

	ret, err = mgr.CallHook("spin", "ok")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(1), ret, "a spent budget must not poison later calls")
}

func TestManager_LoadGlobal_Fallback(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "global.lua", `
		answer = 42
		function global_hook()
			return answer
		end
	`)
	require.NoError(t, mgr.LoadGlobal(dir, 0))
	ret, err := mgr.CallHook("unknown", "global_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(42), ret)
	assert.Equal(t, lua.LNumber(42), mgr.Global("unknown", "answer"))
	assert.False(t, mgr.Has("unknown"))
}

func TestManager_Global(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "fixed.lua", `fixed_increment = 3`)
	require.NoError(t, mgr.Load("three", dir, 0))
	assert.Equal(t, lua.LNumber(3), mgr.Global("three", "fixed_increment"))
	assert.Equal(t, lua.LNil, mgr.Global("three", "missing"))
	assert.Equal(t, lua.LNil, mgr.Global("nowhere", "fixed_increment"))
}

func TestManager_Load_InvalidLua_ReturnsError(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "bad.lua", `this is not valid lua @@@@`)
	assert.Error(t, mgr.Load("bad", dir, 0))
	assert.False(t, mgr.Has("bad"))
}

func TestManager_Load_MissingDir(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.Error(t, mgr.Load("gone", filepath.Join(t.TempDir(), "missing"), 0))
}

func TestManager_Load_MultipleFiles_OrderedByName(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte(`base_val = 10`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lua"), []byte(`
		function get_val() return base_val end
	`), 0644))
	require.NoError(t, mgr.Load("ordered", dir, 0))
	ret, err := mgr.CallHook("ordered", "get_val")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(10), ret)
}

func TestManager_LoadDir(t *testing.T) {
	mgr, _ := newTestManager(t)
	root := t.TempDir()
	for name, src := range map[string]string{
		"alpha": `function id() return 1 end`,
		"beta":  `function id() return 2 end`,
	} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, name, "init.lua"), []byte(src), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.lua"), []byte(`x = 1`), 0644))

	keys, err := mgr.LoadDir(root, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, keys)

	ret, err := mgr.CallHook("beta", "id")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(2), ret)
}

func TestManager_EngineModule(t *testing.T) {
	mgr, logs := newTestManager(t)
	dir := writeTempLua(t, "engine.lua", `
		function roll_it()
			engine.log("rolling")
			return engine.roll("2d6+3")
		end
		function bad_roll()
			return engine.roll("nonsense")
		end
	`)
	require.NoError(t, mgr.Load("engine", dir, 0))

	ret, err := mgr.CallHook("engine", "roll_it")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(11), ret, "default LCG rolls 3 and 5")
	assert.Equal(t, 1, logs.FilterMessage("script log").Len())
	assert.Equal(t, 1, logs.FilterMessage("dice roll").Len())

	ret, err = mgr.CallHook("engine", "bad_roll")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestProperty_CallHookMissingKeyNeverPanics(t *testing.T) {
	mgr, _ := newTestManager(t)
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "key")
		hook := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "hook")
		ret, err := mgr.CallHook(key, hook)
		assert.NoError(rt, err)
		assert.Equal(rt, lua.LNil, ret)
	})
}

func TestManager_CallHookConcurrent_NoRace(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "hooks.lua", `
		function concurrent_hook(a, b)
			return a + b
		end
	`)
	require.NoError(t, mgr.Load("conc", dir, 0))

	const goroutines = 10
	const callsEach = 5
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				ret, err := mgr.CallHook("conc", "concurrent_hook", lua.LNumber(1), lua.LNumber(2))
				assert.NoError(t, err)
				assert.Equal(t, lua.LNumber(3), ret)
			}
		}()
	}
	wg.Wait()
}

func TestNewManager_PanicsOnNilRoller(t *testing.T) {
	assert.Panics(t, func() {
		scripting.NewManager(nil, zap.NewNop())
	})
}

func TestNewManager_PanicsOnNilLogger(t *testing.T) {
	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), zap.NewNop())
	assert.Panics(t, func() {
		scripting.NewManager(roller, nil)
	})
}

func TestManager_Close_ReleasesScripts(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "init.lua", `function get_x() return 1 end`)
	require.NoError(t, mgr.Load("closing", dir, 0))
	mgr.Close()
	ret, err := mgr.CallHook("closing", "get_x")
	assert.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}
