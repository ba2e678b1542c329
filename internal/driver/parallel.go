package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"wirec/internal/diag"
	"wirec/internal/source"
)

// TranspileDirResult is the transpile outcome for one file in a directory.
type TranspileDirResult struct {
	Path      string
	FileSet   *source.FileSet
	Output    string
	Bag       *diag.Bag
	FromCache bool
}

// listWireFiles returns the sorted list of all *.dsp files under dir.
func listWireFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dsp") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TranspileDir transpiles every *.dsp file under dir in parallel. Results
// come back in sorted path order regardless of completion order; a file that
// fails to load yields a result with an I/O diagnostic rather than aborting
// the batch.
func TranspileDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) ([]TranspileDirResult, error) {
	files, err := listWireFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine writes a distinct index, no mutex needed
	results := make([]TranspileDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := TranspileWithCache(path, maxDiagnostics, cache)
			if err != nil {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Span{},
					"failed to load file: "+err.Error()))
				results[i] = TranspileDirResult{Path: path, Bag: bag}
				return nil
			}

			results[i] = TranspileDirResult{
				Path:      path,
				FileSet:   res.FileSet,
				Output:    res.Output,
				Bag:       res.Bag,
				FromCache: res.FromCache,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
