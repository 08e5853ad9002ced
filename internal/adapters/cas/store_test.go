package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gowheel/internal/adapters/cas"
	"go.trai.ch/gowheel/internal/core/domain"
)

func newStore(t *testing.T) *cas.Store {
	t.Helper()
	s, err := cas.NewStore()
	require.NoError(t, err)
	return s
}

func TestStore_PutGet(t *testing.T) {
	root := t.TempDir()
	s := newStore(t)

	info := domain.BuildInfo{
		PlatformKey: "linux-amd64",
		InputHash:   "deadbeefdeadbeef",
		WheelPath:   "dist/mytool-1.0.0-py3-none-manylinux_2_17_x86_64.whl",
		BuiltAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(root, info))

	got, err := s.Get(root, "linux-amd64")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_Get_MissingIsNil(t *testing.T) {
	s := newStore(t)

	got, err := s.Get(t.TempDir(), "linux-amd64")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Put_SeparateFilesPerPlatform(t *testing.T) {
	root := t.TempDir()
	s := newStore(t)

	require.NoError(t, s.Put(root, domain.BuildInfo{PlatformKey: "linux-amd64", InputHash: "aaaa"}))
	require.NoError(t, s.Put(root, domain.BuildInfo{PlatformKey: "darwin-arm64", InputHash: "bbbb"}))

	linux, err := s.Get(root, "linux-amd64")
	require.NoError(t, err)
	darwin, err := s.Get(root, "darwin-arm64")
	require.NoError(t, err)

	assert.Equal(t, "aaaa", linux.InputHash)
	assert.Equal(t, "bbbb", darwin.InputHash)

	entries, err := os.ReadDir(filepath.Join(root, domain.GowheelDirName))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStore_Put_Overwrites(t *testing.T) {
	root := t.TempDir()
	s := newStore(t)

	require.NoError(t, s.Put(root, domain.BuildInfo{PlatformKey: "linux-amd64", InputHash: "old"}))
	require.NoError(t, s.Put(root, domain.BuildInfo{PlatformKey: "linux-amd64", InputHash: "new"}))

	got, err := s.Get(root, "linux-amd64")
	require.NoError(t, err)
	assert.Equal(t, "new", got.InputHash)
}

func TestStore_Get_CorruptFile(t *testing.T) {
	root := t.TempDir()
	s := newStore(t)

	require.NoError(t, s.Put(root, domain.BuildInfo{PlatformKey: "linux-amd64", InputHash: "x"}))

	dir := filepath.Join(root, domain.GowheelDirName)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("not json"), 0o644))

	_, err = s.Get(root, "linux-amd64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreUnmarshalFailed.Error())
}
