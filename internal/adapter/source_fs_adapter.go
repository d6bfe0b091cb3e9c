// Package adapter contains the infrastructure adapters used by the fixer:
// filesystem access, validation, caching, diffing and metrics.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gofixer/internal/model"
)

const goFileExt = ".go"

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"vendor":       {},
	"testdata":     {},
	"node_modules": {},
}

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on, so the pipeline can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get discovers source files under roots. Roots ending in "/..." are
	// scanned recursively. Paths matching any exclude regex are dropped.
	Get(roots []m.Path, exclude []string) ([]m.File, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of path. The replacement is atomic: the
	// file either holds the old or the new content, never a mix.
	WriteFile(path m.Path, content []byte) error

	// RemoveFile deletes path. A missing file is not an error.
	RemoveFile(path m.Path) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	// base is the directory unit identities are made relative to.
	base string
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter whose unit
// identities are relative to the working directory.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	return &LocalSourceFSAdapter{base: wd}
}

// NewLocalSourceFSAdapterAt constructs a LocalSourceFSAdapter whose unit
// identities are relative to base.
func NewLocalSourceFSAdapterAt(base string) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{base: base}
}

// Get collects Go source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.File, error) {
	if len(roots) == 0 {
		return []m.File{}, nil
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var files []m.File

	add := func(path string, info os.FileInfo) {
		file, ok := a.fileFor(path, info, patterns)
		if !ok {
			return
		}

		if _, exists := seen[string(file.FullPath)]; exists {
			return
		}

		seen[string(file.FullPath)] = struct{}{}
		files = append(files, file)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Lstat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath, info)

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skippedDirs[info.Name()]; skip && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			add(path, info)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (a *LocalSourceFSAdapter) fileFor(path string, info os.FileInfo, patterns []*regexp.Regexp) (m.File, bool) {
	if filepath.Ext(path) != goFileExt {
		return m.File{}, false
	}

	rel := a.relative(path)
	for _, re := range patterns {
		if re.MatchString(filepath.ToSlash(rel)) {
			return m.File{}, false
		}
	}

	return m.File{
		Path:      m.Path(rel),
		FullPath:  m.Path(path),
		IsSymlink: info.Mode()&os.ModeSymlink != 0,
	}, true
}

func (a *LocalSourceFSAdapter) relative(path string) string {
	if a.base == "" {
		return path
	}

	rel, err := filepath.Rel(a.base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a temporary file next to path and renames it
// over path, keeping the original permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	target := string(path)
	mode := os.FileMode(0o644)

	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".gofixer-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	committed = true

	return nil
}

// RemoveFile deletes path, ignoring a missing file.
func (a *LocalSourceFSAdapter) RemoveFile(path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
