package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus

// languageSeeds covers every syntactic form once, so mutation starts from
// inputs that reach deep into the grammar.
var languageSeeds = []string{
	"",
	"process = _;\n",
	"process = os.osc(440) : *(0.5);\n",
	"process = os.osc(440) , os.osc(880);\n",
	"process = _ <: (_ , _) :> _;\n",
	"process = (_ + _) ~ mem;\n",
	"process = _ @ 100;\n",
	"import(\"stdfaust.lib\");\ndeclare name \"demo\";\nprocess = no.noise;\n",
	"fact(0) = 1;\nfact(n) = n * fact(n - 1);\nprocess = fact(5);\n",
	"process = a with { a = b * 2; b = 3; };\n",
	"process = _ letrec { 'x = x + 1; };\n",
	"process = case { (0) => 1; (n) => n; };\n",
	"process = hslider(\"freq\", 440, 50, 1000, 1) : os.osc;\n",
	"process = hgroup(\"top\", button(\"gate\") , checkbox(\"mute\"));\n",
	"process = par(i, 4, os.osc(100 * i));\n",
	"process = rdtable(64, waveform{0, 1, 0, -1}, _);\n",
	"process = route(2, 2, 1, 2, 2, 1);\n",
	"process = \\(x, y).(x + y);\n",
	"process = 2 ^ 3 ^ 4;\n",
	"process = -(3) : +(1);\n",
	// malformed inputs that must recover, not loop or panic
	"broken = ;",
	"process = 1 +;",
	"process = \"unterminated",
	"process = /* never closed",
	"process = case { (0) => ; };",
	"process = hslider(\"x\", 1, 2, 3;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".dsp" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
