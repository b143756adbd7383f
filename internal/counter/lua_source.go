package counter

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/scripting"
)

// Script hook and global consulted by LuaSource.
const (
	incrementHook  = "increment_for_count"
	fixedIncrement = "fixed_increment"
)

// maxScriptIncrement bounds the magnitude of a scripted increment.
const maxScriptIncrement = math.MaxInt32

// LuaSource is an OptionalSource backed by a loaded script. The script may
// define a function increment_for_count(count), a number fixed_increment, or
// both; the function wins. A value that is not a whole number within
// ±math.MaxInt32 is logged at warn and ignored, so a rejected hook result
// falls back to fixed_increment.
type LuaSource struct {
	mgr *scripting.Manager
	key string
}

// NewLuaSource returns a source reading the script loaded under key.
//
// Precondition: mgr must be non-nil.
func NewLuaSource(mgr *scripting.Manager, key string) *LuaSource {
	return &LuaSource{mgr: mgr, key: key}
}

// Name returns the script key.
func (s *LuaSource) Name() string {
	return s.key
}

// Increment implements OptionalSource.
func (s *LuaSource) Increment(count int) (int, bool) {
	ret, err := s.mgr.CallHook(s.key, incrementHook, lua.LNumber(count))
	if err == nil {
		if n, ok := ret.(lua.LNumber); ok {
			if v, ok := s.whole(incrementHook, n); ok {
				return v, true
			}
		}
	}
	if n, ok := s.mgr.Global(s.key, fixedIncrement).(lua.LNumber); ok {
		return s.whole(fixedIncrement, n)
	}
	return 0, false
}

func (s *LuaSource) whole(name string, n lua.LNumber) (int, bool) {
	f := float64(n)
	if f != math.Trunc(f) || math.Abs(f) > maxScriptIncrement {
		s.mgr.Logger().Warn("counter: script increment is not a whole number",
			zap.String("script", s.key),
			zap.String("name", name),
			zap.Float64("value", f),
		)
		return 0, false
	}
	return int(f), true
}
