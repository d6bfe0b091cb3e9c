package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.go"), "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.go")} {
			assert.NotContainsf(t, visited, forbidden, "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.Contains(t, visited, filepath.Join(root, "main.go"), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Contains(t, visited, child, "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("replaces content and keeps mode", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "main.go")
		writeTestFile(t, path, "package main;\n")
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("package main\n")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file left behind")
	})

	t.Run("creates missing file", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "new.go")

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("package p\n")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package p\n", string(got))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		err := adapter.WriteFile(m.Path(filepath.Join(t.TempDir(), "absent", "x.go")), []byte("x"))
		assert.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_RemoveFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cache.yaml")
	writeTestFile(t, path, "x")

	require.NoError(t, adapter.RemoveFile(m.Path(path)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, adapter.RemoveFile(m.Path(path)), "missing file must not be an error")
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "main.go", info.Name())
	assert.False(t, info.IsDir())

	_, err = adapter.FileInfo(m.Path(filepath.Join(root, "missing.go")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	t.Run("directory is not recursive", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")
		writeTestFile(t, filepath.Join(root, "main_test.go"), "package main\n")
		writeTestFile(t, filepath.Join(root, "README.md"), "# readme\n")
		mustMkdir(t, filepath.Join(root, "nested"))
		writeTestFile(t, filepath.Join(root, "nested", "child.go"), "package nested\n")

		adapter := NewLocalSourceFSAdapterAt(root)
		files, err := adapter.Get([]m.Path{m.Path(root)}, nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"main.go", "main_test.go"}, paths(files))
		assert.Equal(t, m.Path(filepath.Join(root, "main.go")), files[0].FullPath)
	})

	t.Run("go style recursive path includes nested and skips vendor", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")
		mustMkdir(t, filepath.Join(root, "nested", "sub"))
		writeTestFile(t, filepath.Join(root, "nested", "sub", "child.go"), "package sub\n")
		for _, dir := range []string{"vendor", "testdata", ".git"} {
			mustMkdir(t, filepath.Join(root, dir))
			writeTestFile(t, filepath.Join(root, dir, "skip.go"), "package skip\n")
		}

		adapter := NewLocalSourceFSAdapterAt(root)
		files, err := adapter.Get([]m.Path{m.Path(root + "/...")}, nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"main.go", m.Path(filepath.Join("nested", "sub", "child.go"))}, paths(files))
	})

	t.Run("dot after chdir", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(root))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		files, err := NewLocalSourceFSAdapter().Get([]m.Path{"./..."}, nil)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{"main.go"}, paths(files))
	})

	t.Run("exclude patterns drop matches", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")
		writeTestFile(t, filepath.Join(root, "zz_generated.go"), "package main\n")

		adapter := NewLocalSourceFSAdapterAt(root)
		files, err := adapter.Get([]m.Path{m.Path(root)}, []string{`^zz_.*\.go$`})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{"main.go"}, paths(files))
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		root := t.TempDir()

		_, err := NewLocalSourceFSAdapterAt(root).Get([]m.Path{m.Path(root)}, []string{"("})
		assert.Error(t, err)
	})

	t.Run("file path and duplicate roots", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "main.go")
		writeTestFile(t, path, "package main\n")

		adapter := NewLocalSourceFSAdapterAt(root)
		files, err := adapter.Get([]m.Path{m.Path(path), m.Path(root)}, nil)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{"main.go"}, paths(files))
	})

	t.Run("symlinks are reported as placeholders", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "main.go")
		writeTestFile(t, target, "package main\n")
		require.NoError(t, os.Symlink(target, filepath.Join(root, "link.go")))

		files, err := NewLocalSourceFSAdapterAt(root).Get([]m.Path{m.Path(root)}, nil)
		require.NoError(t, err)
		require.Len(t, files, 2)

		assert.Equal(t, m.Path("link.go"), files[0].Path)
		assert.True(t, files[0].Placeholder())
		assert.False(t, files[1].Placeholder())
	})

	t.Run("outside base keeps absolute path", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "main.go")
		writeTestFile(t, path, "package main\n")

		files, err := NewLocalSourceFSAdapterAt(t.TempDir()).Get([]m.Path{m.Path(path)}, nil)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(path)}, paths(files))
	})

	t.Run("returns error for missing root", func(t *testing.T) {
		_, err := NewLocalSourceFSAdapter().Get([]m.Path{"/path/does/not/exist"}, nil)
		assert.Error(t, err)
	})

	t.Run("no roots", func(t *testing.T) {
		files, err := NewLocalSourceFSAdapter().Get(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{in: "...", path: ".", recursive: true},
		{in: "./...", path: ".", recursive: true},
		{in: "pkg/...", path: "pkg", recursive: true},
		{in: "pkg", path: "pkg", recursive: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func paths(files []m.File) []m.Path {
	out := make([]m.Path, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}

	return out
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
