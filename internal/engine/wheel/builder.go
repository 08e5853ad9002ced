// Package wheel implements the wheel assembly engine: manifest generation,
// launcher shim generation and single-target packaging.
package wheel

import (
	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
)

// Builder packages one compiled binary into a wheel for one platform.
type Builder struct {
	archiver    ports.ArchiveWriter
	toolVersion string
}

// NewBuilder creates a Builder. toolVersion is embedded in the WHEEL
// Generator line.
func NewBuilder(archiver ports.ArchiveWriter, toolVersion string) *Builder {
	return &Builder{archiver: archiver, toolVersion: toolVersion}
}

// Build assembles and writes the wheel for the given platform from the
// compiled binary bytes. It returns the path of the written archive.
func (b *Builder) Build(binary []byte, outputDir string, spec *domain.PackageSpec, plat domain.Platform) (string, error) {
	files, err := b.assemble(binary, spec, plat)
	if err != nil {
		return "", err
	}

	return b.archiver.Write(files, outputDir, spec.WheelFilename(plat.Tag))
}

// assemble builds the ordered archive file set, including the two-pass
// self-referential RECORD manifest.
func (b *Builder) assemble(binary []byte, spec *domain.PackageSpec, plat domain.Platform) (*domain.FileSet, error) {
	importName := spec.ImportName()
	binaryName := spec.BinaryName(plat.IsWindows())
	distInfo := spec.DistInfoDir()

	initSrc, err := GenerateInitModule(spec.Version, binaryName)
	if err != nil {
		return nil, err
	}

	files := domain.NewFileSet()
	files.Set(importName+"/__init__.py", []byte(initSrc))
	files.Set(importName+"/__main__.py", []byte(GenerateMainModule()))
	files.Set(importName+"/bin/"+binaryName, binary)
	files.Set(distInfo+"/METADATA", []byte(GenerateMetadata(spec)))
	files.Set(distInfo+"/WHEEL", []byte(GenerateWheelMetadata(b.toolVersion, plat.Tag)))
	files.Set(distInfo+"/entry_points.txt", []byte(GenerateEntryPoints(spec.EntryPoint, importName)))

	// The RECORD must enumerate every entry including its own reserved slot,
	// so it is generated over the set with an empty placeholder and then
	// spliced in. The placeholder keeps its insertion position.
	recordPath := distInfo + "/RECORD"
	files.Set(recordPath, nil)

	record, err := GenerateRecord(files, recordPath)
	if err != nil {
		return nil, err
	}
	files.Set(recordPath, []byte(record))

	return files, nil
}
