package fuzztests

import (
	"testing"
	"time"

	"wirec/internal/gen"
	"wirec/internal/parser"
	"wirec/internal/source"
)

// parseTimeout bounds one input; exceeding it indicates an infinite loop in
// error recovery rather than a slow parse.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.dsp", input))
		_, _ = parser.Parse(file, 128)
	})
}

// FuzzPipelineNoHang drives the full parse+generate pipeline and fails when a
// single input takes longer than parseTimeout.
func FuzzPipelineNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.dsp", input))
			prog, _ := parser.Parse(file, 128)
			if prog != nil {
				_, _ = gen.Generate(file, prog, 128)
			}
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("pipeline hang: input (%d bytes): %q",
				len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
