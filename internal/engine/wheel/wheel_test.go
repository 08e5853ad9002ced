package wheel_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/engine/wheel"
)

func TestRecordDigest(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "text content",
			data: []byte("hello world\n"),
			want: "sha256=qUiQTy8PR5uPgZdpSzAYSw0u0cHNKh7A-4XSmaGSpEc",
		},
		{
			name: "empty content",
			data: nil,
			want: "sha256=47DEQpj8HBSa-_TImW-5JCeuQeRkm5NMpJWZG3hSuFU",
		},
		{
			name: "binary content",
			data: []byte{0, 1, 2, 255},
			want: "sha256=PR9XyYSXjvmKGDeMgWbBy47eAsA-62rufi8SHf7uPlY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wheel.RecordDigest(tt.data)
			assert.Equal(t, tt.want, got)
			// URL-safe alphabet, never padded
			value := strings.TrimPrefix(got, "sha256=")
			assert.NotContains(t, value, "=", "digest value must use unpadded encoding")
			assert.NotContains(t, value, "+")
			assert.NotContains(t, value, "/")
		})
	}
}

func TestGenerateMetadata(t *testing.T) {
	tests := []struct {
		name       string
		spec       *domain.PackageSpec
		goldenName string
	}{
		{
			name: "minimal spec",
			spec: &domain.PackageSpec{
				Name:           "mytool",
				Version:        "0.1.0",
				Description:    "Go binary packaged as Python wheel",
				RequiresPython: ">=3.10",
			},
			goldenName: "metadata_minimal",
		},
		{
			name: "all optional attributes",
			spec: &domain.PackageSpec{
				Name:           "my-cool-tool",
				Version:        "1.2.3",
				Description:    "A cool tool",
				RequiresPython: ">=3.11",
				Author:         "Jane Dev",
				AuthorEmail:    "jane@example.com",
				License:        "MIT",
				URL:            "https://example.com/my-cool-tool",
			},
			goldenName: "metadata_full",
		},
		{
			name: "readme long description",
			spec: &domain.PackageSpec{
				Name:           "mytool",
				Version:        "0.1.0",
				Description:    "Go binary packaged as Python wheel",
				RequiresPython: ">=3.10",
				Readme:         "# My Tool\n\nDoes things.\n",
			},
			goldenName: "metadata_readme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wheel.GenerateMetadata(tt.spec)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(got))
		})
	}
}

func TestGenerateWheelMetadata(t *testing.T) {
	got := wheel.GenerateWheelMetadata("0.1.0", "manylinux_2_17_x86_64")

	g := goldie.New(t)
	g.Assert(t, "wheel_manylinux", []byte(got))
}

func TestGenerateEntryPoints(t *testing.T) {
	got := wheel.GenerateEntryPoints("mytool", "mytool")

	g := goldie.New(t)
	g.Assert(t, "entry_points", []byte(got))
}

func TestGenerateEntryPoints_NormalizedImport(t *testing.T) {
	got := wheel.GenerateEntryPoints("my-tool", "my_tool")
	assert.Equal(t, "[console_scripts]\nmy-tool = my_tool:main\n", got)
}

func TestGenerateInitModule(t *testing.T) {
	got, err := wheel.GenerateInitModule("1.2.3", "mytool")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "init_module", []byte(got))
}

func TestGenerateInitModule_WindowsBinaryName(t *testing.T) {
	got, err := wheel.GenerateInitModule("1.0.0", "mytool.exe")
	require.NoError(t, err)
	assert.Contains(t, got, `"bin", "mytool.exe"`)
	assert.Contains(t, got, `__version__ = "1.0.0"`)
}

func TestGenerateMainModule(t *testing.T) {
	assert.Equal(t, "from . import main\nmain()\n", wheel.GenerateMainModule())
}

func TestGenerateRecord(t *testing.T) {
	files := domain.NewFileSet()
	files.Set("pkg/__init__.py", []byte("hello world\n"))
	files.Set("pkg/bin/tool", []byte{0, 1, 2, 255})
	files.Set("pkg-1.0.0.dist-info/RECORD", nil)

	got, err := wheel.GenerateRecord(files, "pkg-1.0.0.dist-info/RECORD")
	require.NoError(t, err)

	want := "pkg/__init__.py,sha256=qUiQTy8PR5uPgZdpSzAYSw0u0cHNKh7A-4XSmaGSpEc,12\r\n" +
		"pkg/bin/tool,sha256=PR9XyYSXjvmKGDeMgWbBy47eAsA-62rufi8SHf7uPlY,4\r\n" +
		"pkg-1.0.0.dist-info/RECORD,,\r\n"
	assert.Equal(t, want, got)
}

func TestGenerateRecord_PreservesInsertionOrder(t *testing.T) {
	files := domain.NewFileSet()
	files.Set("z_last_alphabetically.py", []byte("z"))
	files.Set("a_first_alphabetically.py", []byte("a"))
	files.Set("RECORD", nil)

	got, err := wheel.GenerateRecord(files, "RECORD")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(got, "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "z_last_alphabetically.py,"))
	assert.True(t, strings.HasPrefix(lines[1], "a_first_alphabetically.py,"))
	assert.Equal(t, "RECORD,,", lines[2])
}
