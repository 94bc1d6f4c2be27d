package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irkit/generate"
	"irkit/llvm"
	"irkit/manifest"
	"irkit/report"
)

var demoManifest = filepath.Join("..", "manifest", "testdata", "demo.toml")

func TestFormatAttrTable_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "attr_table", []byte(formatAttrTable(llvm.Attributes())))
}

func TestParseMask(t *testing.T) {
	a, err := parseMask("0x00200040")
	require.NoError(t, err)
	assert.Equal(t, llvm.NoAlias|llvm.NoCapture, a)
	assert.Equal(t, "noalias nocapture", a.String())

	a, err = parseMask("32")
	require.NoError(t, err)
	assert.Equal(t, llvm.NoUnwind, a)

	_, err = parseMask("0x100000000")
	assert.Error(t, err)

	_, err = parseMask("nounwind")
	assert.Error(t, err)
}

func TestPlanEmit_File(t *testing.T) {
	jobs, err := planEmit(demoManifest, "", false)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, filepath.Join("..", "manifest", "testdata", "demo.ll"), jobs[0].OutputPath)

	jobs, err = planEmit(demoManifest, "out.ll", true)
	require.NoError(t, err)
	assert.Equal(t, "out.ll", jobs[0].OutputPath)

	_, err = planEmit(filepath.Join("..", "manifest", "testdata", "notes.txt"), "", false)
	assert.Error(t, err)

	_, err = planEmit(filepath.Join("testdata", "missing.toml"), "", false)
	assert.Error(t, err)
}

func TestPlanEmit_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.toml", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	out := filepath.Join(dir, "out")
	jobs, err := planEmit(dir, out, true)
	require.NoError(t, err)

	assert.Equal(t, []emitJob{
		{ManifestPath: filepath.Join(dir, "a.toml"), OutputPath: filepath.Join(out, "a.ll")},
		{ManifestPath: filepath.Join(dir, "b.yaml"), OutputPath: filepath.Join(out, "b.ll")},
	}, jobs)
}

func TestEmitManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "demo.ll")

	require.NoError(t, emitManifest(emitJob{ManifestPath: demoManifest, OutputPath: out}))

	buff, err := os.ReadFile(out)
	require.NoError(t, err)

	text := string(buff)
	assert.Contains(t, text, "@memcpy")
	assert.Contains(t, text, "@printf")
	assert.Contains(t, text, "noalias")
	assert.Contains(t, text, "alignstack(16)")
}

func TestEmitAll_CountsWrittenModules(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)
	defer report.InitReporter(report.LogLevelVerbose)

	dir := t.TempDir()
	jobs := []emitJob{
		{ManifestPath: demoManifest, OutputPath: filepath.Join(dir, "demo.ll")},
		{ManifestPath: filepath.Join("..", "manifest", "testdata", "demo.yaml"), OutputPath: filepath.Join(dir, "demo_yaml.ll")},
		{ManifestPath: filepath.Join("..", "manifest", "testdata", "duplicate.toml"), OutputPath: filepath.Join(dir, "dup.ll")},
	}

	assert.Equal(t, 2, emitAll(jobs))
	assert.True(t, report.AnyErrors())
	assert.FileExists(t, filepath.Join(dir, "demo.ll"))
	assert.NoFileExists(t, filepath.Join(dir, "dup.ll"))

	assert.Equal(t, "1 module", pluralModules(1))
	assert.Equal(t, "3 modules", pluralModules(3))
}

func TestEmitManifest_InvalidManifest(t *testing.T) {
	err := emitManifest(emitJob{
		ManifestPath: filepath.Join("..", "manifest", "testdata", "duplicate.toml"),
		OutputPath:   filepath.Join(t.TempDir(), "dup.ll"),
	})

	var merr *manifest.Error
	assert.ErrorAs(t, err, &merr)
}

func TestDescribeModule(t *testing.T) {
	man, err := manifest.Load(demoManifest)
	require.NoError(t, err)

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod, err := generate.Generate(ctx, man)
	require.NoError(t, err)

	list := describeModule(mod)

	var texts []string
	for _, item := range list {
		texts = append(texts, item.Text)
	}

	require.NotEmpty(t, list)
	assert.Equal(t, pterm.LeveledListItem{Level: 0, Text: "module demo"}, list[0])
	assert.Contains(t, texts, "attrs: nounwind")
	assert.Contains(t, texts, "arg 0 dst : i8* [noalias nocapture align 8]")
	assert.Contains(t, texts, `arg 1 "" : i8* [readonly]`)
	assert.Contains(t, texts, "arg 2 <unnamed> : i64")
	assert.Contains(t, texts, "entry: entry (1 blocks)")
	assert.Contains(t, texts, "declaration")
	assert.Contains(t, texts, "entry: entry (2 blocks)")

	var fnLines []string
	for _, item := range list {
		if item.Level == 1 {
			fnLines = append(fnLines, strings.SplitN(item.Text, " ", 2)[0])
		}
	}
	assert.Equal(t, []string{"memcpy", "printf", "helper"}, fnLines)
}
