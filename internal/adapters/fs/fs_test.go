package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gowheel/internal/adapters/fs"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func collect(w *fs.Walker, root string) []string {
	var out []string
	for path := range w.WalkFiles(root) {
		rel, _ := filepath.Rel(root, path)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"go.mod":          "module example.com/tool\n",
		"main.go":         "package main\n",
		"internal/lib.go": "package internal\n",
	})

	got := collect(fs.NewWalker(), root)
	assert.Equal(t, []string{"go.mod", "internal/lib.go", "main.go"}, got)
}

func TestWalker_WalkFiles_SkipsMetadataDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":                     "package main\n",
		".git/config":                 "ref\n",
		".jj/repo":                    "x\n",
		".gowheel/abc.json":           "{}",
		"dist/tool-0.1.0.whl":         "zip",
		"nested/.git/config":          "ref\n",
		"nested/dist/inner":           "skipped at any depth\n",
		"nested/keep.go":              "package nested\n",
		"vendor_like_dir/vendored.go": "package vendored\n",
	})

	got := collect(fs.NewWalker(), root)
	assert.NotContains(t, got, ".git/config")
	assert.NotContains(t, got, ".jj/repo")
	assert.NotContains(t, got, ".gowheel/abc.json")
	assert.NotContains(t, got, "dist/tool-0.1.0.whl")
	assert.NotContains(t, got, "nested/.git/config")
	assert.NotContains(t, got, "nested/dist/inner")
	assert.Contains(t, got, "main.go")
	assert.Contains(t, got, "nested/keep.go")
	assert.Contains(t, got, "vendor_like_dir/vendored.go")
}

func TestWalker_WalkFiles_SkipsGivenDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":      "package main\n",
		"out/tool.whl": "zip",
	})

	w := fs.NewWalker()
	assert.Contains(t, collect(w, root), "out/tool.whl")

	var got []string
	for path := range w.WalkFiles(root, filepath.Join(root, "out")) {
		rel, _ := filepath.Rel(root, path)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"main.go"}, got)
}

func TestHasher_ComputeInputHash_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"go.mod":  "module example.com/tool\n",
		"main.go": "package main\n",
	})

	h := fs.NewHasher(fs.NewWalker())

	first, err := h.ComputeInputHash(root, []string{"fingerprint"})
	require.NoError(t, err)
	second, err := h.ComputeInputHash(root, []string{"fingerprint"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHasher_ComputeInputHash_ContentSensitive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	h := fs.NewHasher(fs.NewWalker())
	before, err := h.ComputeInputHash(root, nil)
	require.NoError(t, err)

	writeTree(t, root, map[string]string{"main.go": "package main // changed\n"})
	after, err := h.ComputeInputHash(root, nil)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_ComputeInputHash_ExtraSensitive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	h := fs.NewHasher(fs.NewWalker())
	a, err := h.ComputeInputHash(root, []string{"v1"})
	require.NoError(t, err)
	b, err := h.ComputeInputHash(root, []string{"v2"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_ComputeInputHash_PathSensitive(t *testing.T) {
	rootA := t.TempDir()
	writeTree(t, rootA, map[string]string{"a.go": "package main\n"})

	rootB := t.TempDir()
	writeTree(t, rootB, map[string]string{"b.go": "package main\n"})

	h := fs.NewHasher(fs.NewWalker())
	hashA, err := h.ComputeInputHash(rootA, nil)
	require.NoError(t, err)
	hashB, err := h.ComputeInputHash(rootB, nil)
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB, "same content under a different name is a different input")
}

func TestHasher_ComputeInputHash_IgnoresOutputDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	h := fs.NewHasher(fs.NewWalker())
	before, err := h.ComputeInputHash(root, nil)
	require.NoError(t, err)

	writeTree(t, root, map[string]string{
		".gowheel/cache.json": "{}",
		"dist/tool.whl":       "zip",
	})
	after, err := h.ComputeInputHash(root, nil)
	require.NoError(t, err)

	assert.Equal(t, before, after, "a finished build must not invalidate its own cache")
}

func TestHasher_ComputeInputHash_IgnoresCustomOutputDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	out := filepath.Join(root, "out")
	h := fs.NewHasher(fs.NewWalker())
	before, err := h.ComputeInputHash(root, nil, out)
	require.NoError(t, err)

	writeTree(t, root, map[string]string{"out/tool.whl": "zip"})
	after, err := h.ComputeInputHash(root, nil, out)
	require.NoError(t, err)

	assert.Equal(t, before, after, "wheels written to a custom output dir are not inputs")
}
