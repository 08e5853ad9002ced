package wheel

import (
	"strings"

	"go.trai.ch/gowheel/internal/core/domain"
)

// GenerateMetadata renders the METADATA file content for the given spec.
// Key order is fixed; optional attributes are emitted only when set. A README
// body, when present, is the terminal long-description block and is emitted
// verbatim after a content-type marker and a blank line.
func GenerateMetadata(spec *domain.PackageSpec) string {
	lines := []string{
		"Metadata-Version: 2.1",
		"Name: " + spec.Name,
		"Version: " + spec.Version,
		"Summary: " + spec.Description,
	}

	if spec.Author != "" {
		lines = append(lines, "Author: "+spec.Author)
	}
	if spec.AuthorEmail != "" {
		lines = append(lines, "Author-email: "+spec.AuthorEmail)
	}
	if spec.License != "" {
		lines = append(lines, "License: "+spec.License)
	}
	if spec.URL != "" {
		lines = append(lines, "Home-page: "+spec.URL)
	}

	lines = append(lines, "Requires-Python: "+spec.RequiresPython)

	if spec.Readme != "" {
		lines = append(lines, "Description-Content-Type: text/markdown", "", spec.Readme)
	}

	return strings.Join(lines, "\n") + "\n"
}

// GenerateWheelMetadata renders the WHEEL format descriptor. The payload is
// platform-specific, so Root-Is-Purelib is always false.
func GenerateWheelMetadata(toolVersion, platformTag string) string {
	return "Wheel-Version: 1.0\n" +
		"Generator: gowheel " + toolVersion + "\n" +
		"Root-Is-Purelib: false\n" +
		"Tag: py3-none-" + platformTag + "\n"
}

// GenerateEntryPoints renders the entry_points.txt console-script mapping.
func GenerateEntryPoints(entryPoint, importName string) string {
	return "[console_scripts]\n" + entryPoint + " = " + importName + ":main\n"
}
