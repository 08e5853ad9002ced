package wheel

import (
	"strings"
	"text/template"

	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/zerr"
)

// initModule is the source of the generated launcher entry module. At
// install time it resolves the bundled binary next to itself, repairs the
// executable bit when archive extraction dropped it, and hands the process
// over to the binary.
var initModule = template.Must(template.New("init").Parse(`"""Go binary packaged as Python wheel."""

import os
import stat
import subprocess
import sys

__version__ = "{{.Version}}"


def get_binary_path():
    """Return the path to the bundled binary."""
    return os.path.join(os.path.dirname(__file__), "bin", "{{.BinaryName}}")


def main():
    """Execute the bundled binary."""
    binary = get_binary_path()

    # Ensure binary is executable on Unix
    if sys.platform != "win32":
        current_mode = os.stat(binary).st_mode
        if not (current_mode & stat.S_IXUSR):
            os.chmod(binary, current_mode | stat.S_IXUSR | stat.S_IXGRP | stat.S_IXOTH)

    if sys.platform == "win32":
        # On Windows, use subprocess to properly handle exit codes
        sys.exit(subprocess.call([binary] + sys.argv[1:]))
    else:
        # On Unix, exec replaces the process so signals reach the binary
        os.execvp(binary, [binary] + sys.argv[1:])
`))

// GenerateInitModule renders the launcher __init__.py for the given package
// version and bundled binary name.
func GenerateInitModule(version, binaryName string) (string, error) {
	var sb strings.Builder
	err := initModule.Execute(&sb, struct {
		Version    string
		BinaryName string
	}{Version: version, BinaryName: binaryName})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrShimGenerationFailed.Error())
	}
	return sb.String(), nil
}

// GenerateMainModule renders the __main__.py namespace-invocation shim, which
// delegates to the entry function with no arguments.
func GenerateMainModule() string {
	return "from . import main\nmain()\n"
}
