package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/runner"
)

// makeTree creates files (slash-separated, relative to dir) with a tiny
// Java body and returns dir.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		writeTreeFile(t, dir, f, "class A {}\n")
	}
	return dir
}

func writeTreeFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// relPaths strips dir from each discovered path.
func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func discover(t *testing.T, opts runner.Options) []string {
	t.Helper()

	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	return relPaths(t, opts.WorkingDir, files)
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "Main.java")

	got := discover(t, runner.Options{
		Paths:      []string{filepath.Join(dir, "Main.java")},
		WorkingDir: dir,
	})

	assert.Equal(t, []string{"Main.java"}, got)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := makeTree(t,
		"Main.java",
		"src/main/java/demo/App.java",
		"src/main/resources/app.properties",
		"README.md",
		"build.gradle",
	)

	got := discover(t, runner.Options{Paths: []string{"."}, WorkingDir: dir})

	assert.Equal(t, []string{"Main.java", "src/main/java/demo/App.java"}, got)
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "A.java")

	got := discover(t, runner.Options{WorkingDir: dir})

	assert.Len(t, got, 1)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "A.java", "B.jav", "C.JAVA")

	got := discover(t, runner.Options{
		WorkingDir: dir,
		Extensions: []string{".jav", ".java"},
	})

	assert.Equal(t, []string{"A.java", "B.jav", "C.JAVA"}, got)
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := makeTree(t,
		"src/A.java",
		"src/ATest.java",
		"generated/B.java",
		"lib/deep/generated/C.java",
	)

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "file name pattern",
			patterns: []string{"*Test.java"},
			want:     []string{"generated/B.java", "lib/deep/generated/C.java", "src/A.java"},
		},
		{
			name:     "directory prefix",
			patterns: []string{"generated/**"},
			want:     []string{"lib/deep/generated/C.java", "src/A.java", "src/ATest.java"},
		},
		{
			name:     "directory anywhere",
			patterns: []string{"**/generated/**"},
			want:     []string{"src/A.java", "src/ATest.java"},
		},
		{
			name:     "bare directory anywhere",
			patterns: []string{"**/generated"},
			want:     []string{"src/A.java", "src/ATest.java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := discover(t, runner.Options{WorkingDir: dir, ExcludeGlobs: tt.patterns, IncludeVendored: true})

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "src/main/A.java", "src/test/ATest.java", "tools/Gen.java")

	got := discover(t, runner.Options{
		WorkingDir:   dir,
		IncludeGlobs: []string{"src/main/**"},
	})

	assert.Equal(t, []string{"src/main/A.java"}, got)
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "A.java", ".Hidden.java", ".idea/B.java")

	got := discover(t, runner.Options{WorkingDir: dir})

	assert.Equal(t, []string{"A.java"}, got)
}

func TestDiscover_IgnoreFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ignoreFile  string
		noGitignore bool
		want        []string
	}{
		{
			name:       "gitignore",
			ignoreFile: runner.GitignoreFile,
			want:       []string{"src/A.java"},
		},
		{
			name:        "gitignore disabled",
			ignoreFile:  runner.GitignoreFile,
			noGitignore: true,
			want:        []string{"build/B.java", "src/A.java", "src/C.gen.java"},
		},
		{
			name:        "jwslintignore is always read",
			ignoreFile:  runner.IgnoreFile,
			noGitignore: true,
			want:        []string{"src/A.java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := makeTree(t, "src/A.java", "build/B.java", "src/C.gen.java")
			writeTreeFile(t, dir, tt.ignoreFile, "# outputs\nbuild/\n*.gen.java\n")

			got := discover(t, runner.Options{
				WorkingDir:      dir,
				NoGitignore:     tt.noGitignore,
				IncludeVendored: true,
			})

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_ExplicitFileBypassesIgnoreFile(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "build/B.java")
	writeTreeFile(t, dir, runner.GitignoreFile, "build/\n")

	got := discover(t, runner.Options{
		WorkingDir: dir,
		Paths:      []string{"build/B.java"},
	})

	assert.Equal(t, []string{"build/B.java"}, got)
}

func TestDiscover_Vendored(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "src/A.java", "node_modules/pkg/B.java")

	got := discover(t, runner.Options{WorkingDir: dir})
	assert.Equal(t, []string{"src/A.java"}, got)

	got = discover(t, runner.Options{WorkingDir: dir, IncludeVendored: true})
	assert.Equal(t, []string{"node_modules/pkg/B.java", "src/A.java"}, got)
}

func TestDiscover_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "z/Z.java", "a/A.java", "m/M.java", "B.java")

	first := discover(t, runner.Options{WorkingDir: dir})
	for range 5 {
		assert.Equal(t, first, discover(t, runner.Options{WorkingDir: dir}))
	}
	assert.Equal(t, []string{"B.java", "a/A.java", "m/M.java", "z/Z.java"}, first)
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "src/A.java")

	got := discover(t, runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "src", "src/A.java"},
	})

	assert.Equal(t, []string{"src/A.java"}, got)
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"missing"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "A.java", "B.java")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})

	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "Real.java")
	if err := os.Symlink(filepath.Join(dir, "Real.java"), filepath.Join(dir, "Link.java")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got := discover(t, runner.Options{WorkingDir: dir})

	assert.Equal(t, []string{"Link.java", "Real.java"}, got)
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "real/Doc.java")
	external := makeTree(t, "External.java")

	if err := os.Symlink(external, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0], "Doc.java"))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, files, 2)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"Doc.java", "External.java"}, names)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		opts := runner.OptionsFromConfig(nil, []string{"src"})

		assert.Equal(t, []string{"src"}, opts.Paths)
		assert.Nil(t, opts.Config)
	})

	t.Run("copies discovery settings", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Ignore = []string{"**/generated/**"}
		cfg.NoGitignore = true
		cfg.IncludeVendored = true
		cfg.Jobs = 3

		opts := runner.OptionsFromConfig(cfg, nil)

		assert.Equal(t, []string{".java"}, opts.Extensions)
		assert.Equal(t, []string{"**/generated/**"}, opts.ExcludeGlobs)
		assert.True(t, opts.NoGitignore)
		assert.True(t, opts.IncludeVendored)
		assert.Equal(t, 3, opts.Jobs)
		assert.Same(t, cfg, opts.Config)
	})
}
