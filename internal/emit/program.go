package emit

import (
	"fmt"
	"strconv"

	"wirec/internal/ir"
)

// Program renders a complete wire-DSP source file: declares, imports,
// optional hoisted bindings, then the main definition.
func Program(root *ir.Node, opts Options) string {
	opts = opts.withDefaults()

	e := &emitter{
		w:      NewWriter(opts.IndentWidth),
		pretty: opts.Pretty,
	}

	for _, d := range opts.Declares {
		e.w.WriteString("declare ")
		e.w.WriteString(d.Key)
		e.w.WriteString(" ")
		e.w.WriteString(strconv.Quote(d.Value))
		e.w.WriteString(";")
		e.w.Newline()
	}
	for _, imp := range opts.Imports {
		e.w.WriteString("import(")
		e.w.WriteString(strconv.Quote(imp))
		e.w.WriteString(");")
		e.w.Newline()
	}
	if len(opts.Declares) > 0 || len(opts.Imports) > 0 {
		e.w.Newline()
	}

	if opts.ExtractCSE {
		e.names = make(map[*ir.Node]string)
		for _, n := range sharedNodes(root) {
			name := fmt.Sprintf("s%d", len(e.names))
			e.binding(name, n)
			e.names[n] = name
		}
	}

	e.binding(opts.Name, root)
	return e.w.String()
}

// binding emits `name = expr;`. The node being defined must not resolve to
// its own name, so it is emitted before its entry lands in the name map.
func (e *emitter) binding(name string, n *ir.Node) {
	e.w.WriteString(name)
	e.w.WriteString(" = ")
	if e.pretty {
		e.w.Indent()
		e.expr(n, 0)
		e.w.Dedent()
	} else {
		e.expr(n, 0)
	}
	e.w.WriteString(";")
	e.w.Newline()
}
