package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wirec/internal/diag"
	"wirec/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("voice.dsp", []byte("process = xx.yy(1);\n"))

	bag := diag.NewBag(16)
	bag.Add(diag.New(
		diag.SevWarning, diag.GenUnmappedFunction,
		source.Span{File: id, Start: 10, End: 18},
		"no builder mapping for xx.yy",
	).WithNote(source.Span{File: id, Start: 0, End: 7}, "defined here"))
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf strings.Builder
	Pretty(&buf, bag, fs, PrettyOpts{})

	want := "voice.dsp:1:11: WARNING[3001]: no builder mapping for xx.yy\n" +
		"    process = xx.yy(1);\n" +
		"              ^~~~~~~~\n"
	require.Equal(t, want, buf.String())
}

func TestPretty_Notes(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf strings.Builder
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	require.Contains(t, buf.String(), "  note: voice.dsp:1:1: defined here\n")
}

func TestPretty_UnderlineClampsToLineEnd(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.dsp", []byte("ab\ncd\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken,
		source.Span{File: id, Start: 0, End: 20}, "boom"))

	var buf strings.Builder
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "a.dsp:1:1: ERROR[2001]: boom\n" +
		"    ab\n" +
		"    ^~\n"
	require.Equal(t, want, buf.String())
}

func TestJSON(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf strings.Builder
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &out))
	require.Len(t, out, 1)
	require.Equal(t, "WARNING", out[0]["severity"])
	require.Equal(t, "3001", out[0]["code"])
	require.Equal(t, "GEN_UNMAPPED_FUNCTION", out[0]["id"])
	require.Equal(t, "voice.dsp", out[0]["path"])
	require.EqualValues(t, 1, out[0]["line"])
	require.EqualValues(t, 11, out[0]["col"])
	require.Len(t, out[0]["notes"], 1)
}

func TestJSON_Max(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.dsp", []byte("x\n"))

	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken,
			source.Span{File: id, Start: 0, End: 1}, "boom"))
	}

	var buf strings.Builder
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{Max: 2}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &out))
	require.Len(t, out, 2)
}
