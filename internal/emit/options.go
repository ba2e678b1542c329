package emit

// Declare is one `declare key "value";` line.
type Declare struct {
	Key   string
	Value string
}

// Options controls program emission.
type Options struct {
	// Name is the binding for the main expression; defaults to "process".
	Name string
	// Imports lists library imports; defaults to the standard library.
	Imports []string
	// Declares are emitted before imports.
	Declares []Declare
	// Pretty renders composition operators across indented lines.
	Pretty bool
	// ExtractCSE hoists subgraphs referenced by two or more distinct
	// parents into named bindings.
	ExtractCSE bool
	// IndentWidth is the pretty-mode indent; defaults to 4.
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = "process"
	}
	if o.Imports == nil {
		o.Imports = []string{"stdfaust.lib"}
	}
	return o
}
