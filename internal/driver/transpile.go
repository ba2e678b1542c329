package driver

import (
	"fortio.org/safecast"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/gen"
	"wirec/internal/parser"
	"wirec/internal/source"
)

type TranspileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Output  string
	Bag     *diag.Bag
	// FromCache marks a result restored from the disk cache; Program is nil
	// in that case since only the output text is cached.
	FromCache bool
}

// Transpile runs the full ingestion pipeline over one file: tokenize, parse,
// generate host-DSL text. The output is best-effort whenever the parse
// produced any program at all; the bag carries everything that went wrong.
func Transpile(path string, maxDiagnostics int) (*TranspileResult, error) {
	return TranspileWithCache(path, maxDiagnostics, nil)
}

// TranspileWithCache is Transpile backed by a disk cache keyed on the source
// content hash. A cache hit skips the pipeline entirely.
func TranspileWithCache(path string, maxDiagnostics int, cache *DiskCache) (*TranspileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	if cache != nil {
		var payload DiskPayload
		if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
			return &TranspileResult{
				FileSet:   fs,
				File:      file,
				Output:    payload.Output,
				Bag:       payload.bag(file.ID),
				FromCache: true,
			}, nil
		}
	}

	res := transpileFile(file, maxDiagnostics)
	res.FileSet = fs

	if cache != nil && !res.Bag.HasErrors() {
		// cache errors would mask fixes made while the cache is warm, so
		// only clean and warning-level results are stored
		_ = cache.Put(file.Hash, payloadFor(file, res.Output, res.Bag))
	}
	return res, nil
}

// TranspileSource runs the pipeline over in-memory source text.
func TranspileSource(name string, content []byte, maxDiagnostics int) *TranspileResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	res := transpileFile(fs.Get(fileID), maxDiagnostics)
	res.FileSet = fs
	return res
}

func transpileFile(file *source.File, maxDiagnostics int) *TranspileResult {
	bag := diag.NewBag(maxDiagnostics)
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}

	parsed := parser.ParseFile(file, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	output, genBag := gen.Generate(file, parsed.Program, maxDiagnostics)
	bag.Merge(genBag)
	bag.Sort()

	return &TranspileResult{
		File:    file,
		Program: parsed.Program,
		Output:  output,
		Bag:     bag,
	}
}
