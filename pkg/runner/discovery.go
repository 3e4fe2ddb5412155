package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/yaklabco/jwslint/pkg/langdetect"
)

// walker holds the per-call state of a discovery walk.
type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	opts       Options
	ignores    []*gitignore.GitIgnore
}

// Discover finds Java files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
//
// Explicitly named files are linted even when an ignore file or vendored
// heuristic would have skipped them during a directory walk; exclude globs
// and extensions still apply.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	ignores, err := loadIgnoreFiles(workDir, opts.NoGitignore)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		ignores:    ignores,
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if w.matchesFile(absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := w.walk(absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// loadIgnoreFiles compiles the ignore files present in workDir.
func loadIgnoreFiles(workDir string, noGitignore bool) ([]*gitignore.GitIgnore, error) {
	names := []string{IgnoreFile}
	if !noGitignore {
		names = append(names, GitignoreFile)
	}

	var ignores []*gitignore.GitIgnore
	for _, name := range names {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		ignore, err := gitignore.CompileIgnoreFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		ignores = append(ignores, ignore)
	}

	return ignores, nil
}

// walk recursively walks root and returns matching Java files.
func (w *walker) walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if w.ctx.Err() != nil {
			return w.ctx.Err()
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := w.rel(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if w.skipDir(entry.Name(), relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible targets are skipped.
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks || w.skipDir(entry.Name(), relPath) {
					return nil
				}
				// Walk the target; WalkDir would Lstat the link and stop.
				subFiles, err := w.walk(realPath)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") || w.ignored(relPath) {
			return nil
		}

		if w.matchesFile(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// skipDir reports whether a directory below the walk root is pruned.
func (w *walker) skipDir(name, relPath string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if matchesAny(relPath, w.opts.ExcludeGlobs) {
		return true
	}
	if !w.opts.IncludeVendored && langdetect.IsVendored(relPath+"/") {
		return true
	}
	return w.ignored(relPath + "/")
}

// ignored reports whether any loaded ignore file matches relPath.
func (w *walker) ignored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, ignore := range w.ignores {
		if ignore.MatchesPath(relPath) {
			return true
		}
	}
	return false
}

// matchesFile checks extension, exclude and include patterns.
func (w *walker) matchesFile(path string) bool {
	if !hasMatchingExtension(path, w.extensions) {
		return false
	}

	relPath := w.rel(path)

	if matchesAny(relPath, w.opts.ExcludeGlobs) {
		return false
	}

	if len(w.opts.IncludeGlobs) > 0 && !matchesAny(relPath, w.opts.IncludeGlobs) {
		return false
	}

	return true
}

func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// matchesAny checks if the path matches any of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// It supports patterns like "*.java", "src/**", "**/generated/**".
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Patterns without a slash also match the base name.
	if !strings.Contains(pattern, "/") {
		matched, err := filepath.Match(pattern, filepath.Base(path))
		return err == nil && matched
	}

	return false
}

// matchDoubleStar handles patterns containing "**" by matching the
// pattern's prefix and suffix around the first "**" segment.
func matchDoubleStar(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	}

	if suffix == "" {
		return true
	}

	// Try the suffix against every tail, and against each directory so
	// that "**/build" also covers files below build/.
	segments := strings.Split(path, "/")
	for i := range segments {
		if matchGlob(strings.Join(segments[i:], "/"), suffix) {
			return true
		}
		if i < len(segments)-1 && !strings.Contains(suffix, "**") {
			if matched, err := filepath.Match(suffix, segments[i]); err == nil && matched {
				return true
			}
		}
	}

	return false
}
