// pkg/msvc/reporter.go
package msvc

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// noRuntimeDirs is printed when the host has no runtime DLL directories
const noRuntimeDirs = "None"

// Report holds the resolved toolchain locations in the form the calling
// build system consumes.
type Report struct {
	VisualStudioPath string
	SDKDir           string
	Version          string
	WDKDir           string
	RuntimeDLLDirs   []string
}

// BuildReport resolves every location the report needs
func BuildReport(cfg *Config) (*Report, error) {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}
	loc := NewLocator(cfg)

	ver, err := loc.Version()
	if err != nil {
		return nil, err
	}
	vsPath, err := loc.VisualStudioPath()
	if err != nil {
		return nil, err
	}
	sdkDir, err := loc.SDKDir()
	if err != nil {
		return nil, err
	}

	return &Report{
		VisualStudioPath: NormalizePath(vsPath),
		SDKDir:           sdkDir,
		Version:          ver.Tag,
		WDKDir:           NormalizePath(cfg.WDKDir),
		RuntimeDLLDirs:   loc.RuntimeDLLDirs(),
	}, nil
}

// Write emits the report as five key = "value" lines in the fixed order the
// caller parses.
func (r *Report) Write(w io.Writer) error {
	runtimeDirs := noRuntimeDirs
	if len(r.RuntimeDLLDirs) > 0 {
		runtimeDirs = strings.Join(r.RuntimeDLLDirs, string(filepath.ListSeparator))
	}

	_, err := fmt.Fprintf(w, "vs_path = \"%s\"\nsdk_path = \"%s\"\nvs_version = \"%s\"\nwdk_dir = \"%s\"\nruntime_dirs = \"%s\"\n",
		r.VisualStudioPath, r.SDKDir, r.Version, r.WDKDir, runtimeDirs)
	return err
}
