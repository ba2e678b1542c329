// Package libmap holds the static tables mapping fully-qualified wire-DSP
// library names and language primitives to builder-side operation
// descriptors. Pure data plus lookup; a miss is not an error — callers
// degrade to verbatim pass-through.
package libmap

// Entry describes one builder-side operation.
type Entry struct {
	// Op is the builder function name emitted by the host-DSL generator.
	Op string
	// Arity is the expected argument count; ignored when Variadic.
	Arity int
	// Variadic marks operations with no fixed arity.
	Variadic bool
	// Unit names the unit-constructor idiom (db, midi, sec) applied when the
	// sole argument is a bare numeric literal.
	Unit string
}

// Lookup resolves a fully-qualified name or primitive spelling.
func Lookup(name string) (Entry, bool) {
	e, ok := table[name]
	return e, ok
}

// IsUIElement reports whether name spells a UI widget form.
func IsUIElement(name string) bool {
	switch name {
	case "hslider", "vslider", "nentry", "button", "checkbox":
		return true
	default:
		return false
	}
}

// IsUIGroup reports whether name spells a UI group form.
func IsUIGroup(name string) bool {
	switch name {
	case "hgroup", "vgroup", "tgroup":
		return true
	default:
		return false
	}
}
