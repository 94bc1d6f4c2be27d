package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/ComedicChimera/olive"
	"golang.org/x/sync/errgroup"

	"irkit/common"
	"irkit/generate"
	"irkit/llvm"
	"irkit/manifest"
	"irkit/report"
)

// execEmitCommand executes the `emit` subcommand.
func execEmitCommand(result *olive.ArgParseResult) {
	inputPath, _ := result.PrimaryArg()
	outputPath, hasOutput := stringArg(result, "output")

	jobs, err := planEmit(inputPath, outputPath, hasOutput)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	if len(jobs) == 0 {
		report.ReportWarning(inputPath, "no manifests found")
		return
	}

	if n := emitAll(jobs); !report.AnyErrors() {
		report.DisplaySuccess("emitted %s", pluralModules(n))
	}
}

// emitJob is a single manifest to emit and the file to emit it to.
type emitJob struct {
	ManifestPath string
	OutputPath   string
}

// planEmit determines the emit jobs for inputPath.  inputPath may either be a
// single manifest or a directory of manifests.  In the latter case, the output
// path names the directory to emit into.
func planEmit(inputPath, outputPath string, hasOutput bool) ([]emitJob, error) {
	finfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !finfo.IsDir() {
		if !manifest.IsManifest(inputPath) {
			return nil, fmt.Errorf("`%s` is not a manifest file", inputPath)
		}

		if !hasOutput {
			outputPath = irPath(inputPath, filepath.Dir(inputPath))
		}

		return []emitJob{{ManifestPath: inputPath, OutputPath: outputPath}}, nil
	}

	paths, err := manifest.FindManifests(inputPath)
	if err != nil {
		return nil, err
	}

	outDir := inputPath
	if hasOutput {
		outDir = outputPath
	}

	jobs := make([]emitJob, len(paths))
	for i, path := range paths {
		jobs[i] = emitJob{ManifestPath: path, OutputPath: irPath(path, outDir)}
	}

	return jobs, nil
}

// irPath returns the path of the IR file emitted for manifestPath in dir.
func irPath(manifestPath, dir string) string {
	base := filepath.Base(manifestPath)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+common.IRFileExt)
}

// emitAll runs the emit jobs concurrently.  Each job builds its module in its
// own context.  Errors are reported per manifest.  It returns the number of
// modules that were written.
func emitAll(jobs []emitJob) int {
	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	var emitted atomic.Int64

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			defer report.CatchErrors(job.ManifestPath)

			if err := emitManifest(job); err != nil {
				report.ReportStdError(job.ManifestPath, err)
				return nil
			}

			emitted.Add(1)
			report.ReportInfo("emitted", "%s -> %s", job.ManifestPath, job.OutputPath)
			return nil
		})
	}

	g.Wait()
	return int(emitted.Load())
}

func pluralModules(n int) string {
	if n == 1 {
		return "1 module"
	}

	return fmt.Sprintf("%d modules", n)
}

// emitManifest loads, generates and writes a single manifest.
func emitManifest(job emitJob) error {
	man, err := manifest.Load(job.ManifestPath)
	if err != nil {
		return err
	}

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod, err := generate.Generate(ctx, man)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(job.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return mod.WriteToFile(job.OutputPath)
}
