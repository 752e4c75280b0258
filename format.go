package jsonschema

import "sync"

// formatDef mirrors the teacher's FormatDef: a validator plus an optional
// type restriction, so a custom format can declare it only applies to, say,
// strings and is skipped (rather than failed) against other instance kinds.
type formatDef struct {
	validate  func(any) bool
	appliesTo kind
}

// formatRegistry holds the pluggable format -> predicate map a Compiler
// consults when evaluating the format keyword. draft3 through draft7 treat
// format as an assertion by default; 2019-09 onward demote it to an
// annotation unless strictFormat is set — evaluation consults the dialect's assertFormat flag rather than a single
// global switch, the way the teacher's Compiler.AssertFormat gates
// evaluateFormat's NewEvaluationError call.
type formatRegistry struct {
	mu     sync.RWMutex
	byName map[string]*formatDef
}

func newFormatRegistry() *formatRegistry {
	r := &formatRegistry{byName: make(map[string]*formatDef)}
	for name, fn := range defaultFormats() {
		r.byName[name] = &formatDef{validate: fn}
	}
	return r
}

// register installs or overrides a format predicate, the way the teacher's
// Compiler.RegisterFormat does. An empty appliesTo matches every kind.
func (r *formatRegistry) register(name string, validate func(any) bool, appliesTo kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = &formatDef{validate: validate, appliesTo: appliesTo}
}

func (r *formatRegistry) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byName, name)
}

func (r *formatRegistry) lookup(name string) (*formatDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.byName[name]
	return fn, ok
}

// check runs the named format predicate against value. It reports
// (matched=true, known=true) on success, (false, true) on a genuine
// mismatch, (true, false) when the format name is unregistered, and
// (true, true) when the format is restricted to a kind value doesn't have —
// an unrecognized format is never itself an error, per the open-world
// format keyword.
func (r *formatRegistry) check(name string, value any) (matched, known bool) {
	def, ok := r.lookup(name)
	if !ok {
		return true, false
	}
	if def.appliesTo != "" && typeOf(value) != def.appliesTo {
		return true, true
	}
	return def.validate(value), true
}
