package diagfmt

import (
	"encoding/json"
	"io"

	"wirec/internal/diag"
	"wirec/internal/source"
)

type jsonNote struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
}

type jsonDiag struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	ID       string     `json:"id"`
	Message  string     `json:"message"`
	Path     string     `json:"path"`
	Line     int        `json:"line,omitempty"`
	Col      int        `json:"col,omitempty"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// JSON renders diagnostics as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]jsonDiag, 0, bag.Len())
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(out) >= opts.Max {
			break
		}
		jd := jsonDiag{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			ID:       d.Code.ID(),
			Message:  d.Message,
			Path:     fs.Get(d.Primary.File).Path,
		}
		if opts.IncludePositions {
			pos := fs.Position(d.Primary)
			jd.Line = int(pos.Line)
			jd.Col = int(pos.Col)
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := jsonNote{Message: n.Msg}
				if opts.IncludePositions {
					npos := fs.Position(n.Span)
					jn.Line = int(npos.Line)
					jn.Col = int(npos.Col)
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
