package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wirec/internal/diag"
	"wirec/internal/source"
)

const genHeader = "from wirebuild import *\n\n"

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTranspileSource(t *testing.T) {
	res := TranspileSource("mem.dsp", []byte("process = os.osc(440) : *(0.5);"), 64)
	require.Equal(t, genHeader+"process = osc(440) * 0.5\n", res.Output)
	require.False(t, res.Bag.HasErrors())
	require.NotNil(t, res.Program)
}

func TestTranspileSource_ParseErrorStillProducesOutput(t *testing.T) {
	res := TranspileSource("bad.dsp", []byte("broken = ;\ngood = 1;"), 64)
	require.True(t, res.Bag.HasErrors())
	require.Contains(t, res.Output, "good = 1")
}

func TestTranspile_FromFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dsp", "process = _;\n")
	res, err := Transpile(path, 64)
	require.NoError(t, err)
	require.Equal(t, genHeader+"process = wire()\n", res.Output)
	require.False(t, res.FromCache)
}

func TestTranspile_MissingFile(t *testing.T) {
	_, err := Transpile(filepath.Join(t.TempDir(), "absent.dsp"), 64)
	require.Error(t, err)
}

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("wirec-test")
	require.NoError(t, err)
	return cache
}

func TestTranspileWithCache_HitSkipsPipeline(t *testing.T) {
	cache := openTestCache(t)
	path := writeSource(t, t.TempDir(), "a.dsp", "process = no.noise : *(0.25);\n")

	first, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.False(t, first.FromCache)

	second, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.True(t, second.FromCache)
	require.Equal(t, first.Output, second.Output)
	require.Nil(t, second.Program)
}

func TestTranspileWithCache_WarningsSurviveTheCache(t *testing.T) {
	cache := openTestCache(t)
	path := writeSource(t, t.TempDir(), "w.dsp", "process = xx.mystery(1);\n")

	first, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.False(t, first.FromCache)
	require.Len(t, first.Bag.Items(), 1)

	second, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.True(t, second.FromCache)
	require.Len(t, second.Bag.Items(), 1)

	got := second.Bag.Items()[0]
	want := first.Bag.Items()[0]
	require.Equal(t, want.Code, got.Code)
	require.Equal(t, want.Severity, got.Severity)
	require.Equal(t, want.Message, got.Message)
	require.Equal(t, want.Primary.Start, got.Primary.Start)
	require.Equal(t, want.Primary.End, got.Primary.End)
}

func TestTranspileWithCache_ErrorsAreNeverCached(t *testing.T) {
	cache := openTestCache(t)
	path := writeSource(t, t.TempDir(), "bad.dsp", "process = 1 +;\n")

	first, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.True(t, first.Bag.HasErrors())

	second, err := TranspileWithCache(path, 64, cache)
	require.NoError(t, err)
	require.False(t, second.FromCache)
}

func TestDiskCache_Roundtrip(t *testing.T) {
	cache := openTestCache(t)
	key := source.Digest{1, 2, 3}

	var miss DiskPayload
	hit, err := cache.Get(key, &miss)
	require.NoError(t, err)
	require.False(t, hit)

	in := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "a.dsp",
		Output: "process = wire()\n",
		Diags: []DiskDiag{
			{Severity: uint8(diag.SevWarning), Code: uint16(diag.GenUnmappedFunction), Start: 3, End: 9, Message: "m"},
		},
	}
	require.NoError(t, cache.Put(key, in))

	var out DiskPayload
	hit, err = cache.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, *in, out)
}

func TestDiskCache_SchemaMismatchIsAMiss(t *testing.T) {
	cache := openTestCache(t)
	key := source.Digest{9}
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}))

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestDiskCache_NilIsANoop(t *testing.T) {
	var cache *DiskCache
	require.NoError(t, cache.Put(source.Digest{}, &DiskPayload{}))
	hit, err := cache.Get(source.Digest{}, &DiskPayload{})
	require.NoError(t, err)
	require.False(t, hit)
}

func TestTranspileDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.dsp", "process = _;\n")
	writeSource(t, dir, "a.dsp", "process = os.osc(440);\n")
	writeSource(t, dir, filepath.Join("sub", "c.dsp"), "process = !;\n")
	writeSource(t, dir, "ignored.txt", "not a source file")

	results, err := TranspileDir(context.Background(), dir, 64, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, filepath.Join(dir, "a.dsp"), results[0].Path)
	require.Equal(t, filepath.Join(dir, "b.dsp"), results[1].Path)
	require.Equal(t, filepath.Join(dir, "sub", "c.dsp"), results[2].Path)

	require.Equal(t, genHeader+"process = osc(440)\n", results[0].Output)
	require.Equal(t, genHeader+"process = wire()\n", results[1].Output)
	require.Equal(t, genHeader+"process = cut()\n", results[2].Output)
}

func TestTranspileDir_Empty(t *testing.T) {
	results, err := TranspileDir(context.Background(), t.TempDir(), 64, 0, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
