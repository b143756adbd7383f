package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the engine table into L:
//
//	engine.log(msg)     logs msg at info level
//	engine.roll(expr)   rolls a dice expression and returns its total
//
// Precondition: L must be from NewSandboxedState.
func (m *Manager) RegisterModules(L *lua.LState, key string) {
	engine := L.NewTable()
	L.SetField(engine, "log", L.NewFunction(func(L *lua.LState) int {
		m.logger.Info("script log", zap.String("script", key), zap.String("msg", L.CheckString(1)))
		return 0
	}))
	L.SetField(engine, "roll", L.NewFunction(func(L *lua.LState) int {
		res, err := m.roller.RollExpr(L.CheckString(1))
		if err != nil {
			L.RaiseError("engine.roll: %s", err.Error())
			return 0
		}
		L.Push(lua.LNumber(res.Total()))
		return 1
	}))
	L.SetGlobal("engine", engine)
}
