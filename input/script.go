package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptSource drives input from a tengo script. The script sees the current tick number
// as `tick` and must leave the held key names in an array named `keys`.
//
//	keys := tick < 60 ? ["W", "D"] : []
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	held     KeySet
}

// NewScriptSource compiles src once; Sample re-runs it every tick.
func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))
	if err := script.Add("tick", 0); err != nil {
		return nil, fmt.Errorf("input: script %s: bind tick: %w", name, err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: script %s: compile: %w", name, err)
	}
	return &ScriptSource{name: name, compiled: compiled, held: KeySet{}}, nil
}

// Sample runs the script for tick and returns the held keys. The returned set is reused
// between calls.
func (s *ScriptSource) Sample(tick uint64) (Snapshot, error) {
	s.held.Clear()
	if err := s.compiled.Set("tick", int64(tick)); err != nil {
		return s.held, fmt.Errorf("input: script %s: set tick: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return s.held, fmt.Errorf("input: script %s: tick %d: %w", s.name, tick, err)
	}
	if !s.compiled.IsDefined("keys") {
		return s.held, fmt.Errorf("input: script %s: keys is not defined", s.name)
	}
	for _, raw := range s.compiled.Get("keys").Array() {
		name, ok := raw.(string)
		if !ok {
			return s.held, fmt.Errorf("input: script %s: tick %d: key %v is not a string", s.name, tick, raw)
		}
		k, err := ParseKey(name)
		if err != nil {
			return s.held, fmt.Errorf("input: script %s: tick %d: %w", s.name, tick, err)
		}
		s.held.Press(k)
	}
	return s.held, nil
}
