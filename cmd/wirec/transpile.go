package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wirec/internal/diagfmt"
	"wirec/internal/driver"
	"wirec/internal/project"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [flags] file.dsp | dir",
	Short: "Transpile wire DSP sources to host builder code",
	Long: `Transpile runs the full ingestion pipeline: tokenize, parse, and
generate host builder code. Given a directory, every *.dsp file under it is
transpiled in parallel. Unsupported constructs degrade to escaped
pass-through and are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranspile,
}

func init() {
	transpileCmd.Flags().StringP("out", "o", "", "output file (default stdout; for directories, a .py next to each source)")
	transpileCmd.Flags().Int("jobs", 0, "parallel jobs for directory mode (0 = GOMAXPROCS)")
	transpileCmd.Flags().Bool("cache", false, "cache transpile results on disk")
}

func runTranspile(cmd *cobra.Command, args []string) error {
	target := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	outPath, _ := cmd.Flags().GetString("out")
	jobs, _ := cmd.Flags().GetInt("jobs")
	useCache, _ := cmd.Flags().GetBool("cache")

	// wire.toml can raise limits and enable caching project-wide; explicit
	// flags win
	manifest, _, err := project.ResolveManifest(filepath.Dir(target))
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("jobs") && manifest.Transpile.Jobs > 0 {
		jobs = manifest.Transpile.Jobs
	}
	if !cmd.Flags().Changed("cache") {
		useCache = manifest.Transpile.Cache
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.Transpile.MaxDiagnostics
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("wirec")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return transpileDir(cmd, target, maxDiagnostics, jobs, cache)
	}
	return transpileFile(cmd, target, outPath, maxDiagnostics, cache)
}

func transpileFile(cmd *cobra.Command, path, outPath string, maxDiagnostics int, cache *driver.DiskCache) error {
	result, err := driver.TranspileWithCache(path, maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Bag.HasErrors() {
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Print(result.Output)
		return nil
	}
	return os.WriteFile(outPath, []byte(result.Output), 0o644)
}

func transpileDir(cmd *cobra.Command, dir string, maxDiagnostics, jobs int, cache *driver.DiskCache) error {
	results, err := driver.TranspileDir(cmd.Context(), dir, maxDiagnostics, jobs, cache)
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Bag.Len() > 0 {
			if res.FileSet != nil {
				diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stderr),
					ShowNotes: true,
				})
			} else {
				for _, d := range res.Bag.Items() {
					fmt.Fprintf(os.Stderr, "%s: %s[%s]: %s\n", res.Path, d.Severity, d.Code, d.Message)
				}
			}
		}
		if res.Bag.HasErrors() {
			failed++
			continue
		}
		out := strings.TrimSuffix(res.Path, filepath.Ext(res.Path)) + ".py"
		if err := os.WriteFile(out, []byte(res.Output), 0o644); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", res.Path, out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
