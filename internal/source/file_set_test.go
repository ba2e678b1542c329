package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVirtual_PositionResolution(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.dsp", []byte("first\nsecond\nthird"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},  // the newline itself
		{6, 2, 1},  // "second"
		{8, 2, 3},
		{13, 3, 1}, // "third"
	}
	for _, tt := range tests {
		pos := fs.Position(Span{File: id, Start: tt.off, End: tt.off})
		require.Equal(t, tt.line, pos.Line, "offset %d", tt.off)
		require.Equal(t, tt.col, pos.Col, "offset %d", tt.off)
	}
}

func TestLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.dsp", []byte("alpha\nbeta\ngamma"))

	require.Equal(t, "alpha", fs.Line(id, 2))
	require.Equal(t, "beta", fs.Line(id, 7))
	require.Equal(t, "gamma", fs.Line(id, 12))
}

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dsp")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	fs := NewFileSet()
	id, err := fs.Load(path)
	require.NoError(t, err)

	f := fs.Get(id)
	require.Equal(t, "a\nb\n", string(f.Content))
	require.NotZero(t, f.Flags&FileHadBOM)
	require.NotZero(t, f.Flags&FileNormalizedCRLF)
}

func TestHash_DependsOnContentOnly(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.dsp", []byte("process = _;")))
	b := fs.Get(fs.AddVirtual("b.dsp", []byte("process = _;")))
	c := fs.Get(fs.AddVirtual("c.dsp", []byte("process = !;")))

	require.Equal(t, a.Hash, b.Hash)
	require.NotEqual(t, a.Hash, c.Hash)
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	require.Equal(t, Span{File: 1, Start: 2, End: 8}, a.Cover(b))

	other := Span{File: 2, Start: 0, End: 100}
	require.Equal(t, a, a.Cover(other))
}
