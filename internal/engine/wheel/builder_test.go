package wheel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports/mocks"
	"go.trai.ch/gowheel/internal/engine/wheel"
	"go.uber.org/mock/gomock"
)

func testSpec() *domain.PackageSpec {
	return &domain.PackageSpec{
		Name:           "mytool",
		Version:        "1.0.0",
		EntryPoint:     "mytool",
		Description:    "Go binary packaged as Python wheel",
		RequiresPython: ">=3.10",
	}
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plat, ok := domain.LookupPlatform("linux-amd64")
	require.True(t, ok)

	binary := []byte{0x7f, 'E', 'L', 'F', 0, 1, 2}

	var captured *domain.FileSet
	mockArchiver := mocks.NewMockArchiveWriter(ctrl)
	mockArchiver.EXPECT().
		Write(gomock.Any(), "dist", "mytool-1.0.0-py3-none-manylinux_2_17_x86_64.whl").
		DoAndReturn(func(files *domain.FileSet, _, filename string) (string, error) {
			captured = files
			return "dist/" + filename, nil
		})

	b := wheel.NewBuilder(mockArchiver, "0.1.0")
	path, err := b.Build(binary, "dist", testSpec(), plat)
	require.NoError(t, err)
	assert.Equal(t, "dist/mytool-1.0.0-py3-none-manylinux_2_17_x86_64.whl", path)

	require.NotNil(t, captured)
	assert.Equal(t, []string{
		"mytool/__init__.py",
		"mytool/__main__.py",
		"mytool/bin/mytool",
		"mytool-1.0.0.dist-info/METADATA",
		"mytool-1.0.0.dist-info/WHEEL",
		"mytool-1.0.0.dist-info/entry_points.txt",
		"mytool-1.0.0.dist-info/RECORD",
	}, captured.Paths())

	bin, ok := captured.Get("mytool/bin/mytool")
	require.True(t, ok)
	assert.Equal(t, binary, bin)
}

func TestBuilder_Build_RecordCoversAllEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plat, ok := domain.LookupPlatform("linux-arm64")
	require.True(t, ok)

	var captured *domain.FileSet
	mockArchiver := mocks.NewMockArchiveWriter(ctrl)
	mockArchiver.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(files *domain.FileSet, _, filename string) (string, error) {
			captured = files
			return filename, nil
		})

	b := wheel.NewBuilder(mockArchiver, "0.1.0")
	_, err := b.Build([]byte("binary"), "dist", testSpec(), plat)
	require.NoError(t, err)

	record, ok := captured.Get("mytool-1.0.0.dist-info/RECORD")
	require.True(t, ok)
	require.NotEmpty(t, record)

	lines := strings.Split(strings.TrimRight(string(record), "\r\n"), "\r\n")
	require.Len(t, lines, captured.Len(), "one row per archive entry, self included")

	for _, line := range lines[:len(lines)-1] {
		parts := strings.Split(line, ",")
		require.Len(t, parts, 3)
		assert.True(t, strings.HasPrefix(parts[1], "sha256="), "row %q", line)
		assert.NotEmpty(t, parts[2])
	}
	// The manifest's own row carries no digest or length
	assert.Equal(t, "mytool-1.0.0.dist-info/RECORD,,", lines[len(lines)-1])
}

func TestBuilder_Build_WindowsBinarySuffix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plat, ok := domain.LookupPlatform("windows-amd64")
	require.True(t, ok)

	var captured *domain.FileSet
	mockArchiver := mocks.NewMockArchiveWriter(ctrl)
	mockArchiver.EXPECT().
		Write(gomock.Any(), gomock.Any(), "mytool-1.0.0-py3-none-win_amd64.whl").
		DoAndReturn(func(files *domain.FileSet, _, filename string) (string, error) {
			captured = files
			return filename, nil
		})

	b := wheel.NewBuilder(mockArchiver, "0.1.0")
	_, err := b.Build([]byte("MZ"), "dist", testSpec(), plat)
	require.NoError(t, err)

	_, ok = captured.Get("mytool/bin/mytool.exe")
	assert.True(t, ok)

	init, ok := captured.Get("mytool/__init__.py")
	require.True(t, ok)
	assert.Contains(t, string(init), `"bin", "mytool.exe"`)
}

func TestBuilder_Build_NormalizedDashedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plat, ok := domain.LookupPlatform("darwin-arm64")
	require.True(t, ok)

	spec := testSpec()
	spec.Name = "My-Cool.Tool"
	spec.EntryPoint = "my-cool-tool"

	var captured *domain.FileSet
	mockArchiver := mocks.NewMockArchiveWriter(ctrl)
	mockArchiver.EXPECT().
		Write(gomock.Any(), gomock.Any(), "my_cool_tool-1.0.0-py3-none-macosx_11_0_arm64.whl").
		DoAndReturn(func(files *domain.FileSet, _, filename string) (string, error) {
			captured = files
			return filename, nil
		})

	b := wheel.NewBuilder(mockArchiver, "0.1.0")
	_, err := b.Build([]byte("bin"), "dist", spec, plat)
	require.NoError(t, err)

	assert.Contains(t, captured.Paths(), "my_cool_tool/__init__.py")
	assert.Contains(t, captured.Paths(), "my_cool_tool-1.0.0.dist-info/METADATA")

	ep, ok := captured.Get("my_cool_tool-1.0.0.dist-info/entry_points.txt")
	require.True(t, ok)
	assert.Equal(t, "[console_scripts]\nmy-cool-tool = my_cool_tool:main\n", string(ep))

	meta, ok := captured.Get("my_cool_tool-1.0.0.dist-info/METADATA")
	require.True(t, ok)
	assert.Contains(t, string(meta), "Name: My-Cool.Tool")
}
