// pkg/msvc/locator.go
package msvc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// vcToolsVersionPattern matches the versioned directory under VC\Tools\MSVC.
// The minor and patch parts change with toolchain updates, so only the major
// number is fixed.
var vcToolsVersionPattern = regexp.MustCompile(`^14\.\d+\.\d+$`)

// Locator resolves the install locations of the toolchain and the SDK
type Locator struct {
	cfg *Config
}

// NewLocator creates a Locator for the given configuration
func NewLocator(cfg *Config) *Locator {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}
	return &Locator{cfg: cfg}
}

// Version resolves the configured version tag against the manifest
func (l *Locator) Version() (*Version, error) {
	tag := l.cfg.Version
	if tag == "" {
		tag = DefaultVersion
	}
	return LookupVersion(tag)
}

// DesiredHashes returns the packaged-toolchain hashes expected for the
// configured version.
func (l *Locator) DesiredHashes() ([]string, error) {
	ver, err := l.Version()
	if err != nil {
		return nil, err
	}
	return ver.Hashes, nil
}

// VisualStudioPath returns the toolchain installation root. An explicit
// InstallDir override wins without consulting anything else. Otherwise 2017
// installs are probed on the filesystem edition by edition, and legacy
// installs are looked up in the host configuration store.
func (l *Locator) VisualStudioPath() (string, error) {
	if l.cfg.InstallDir != "" {
		return NormalizePath(l.cfg.InstallDir), nil
	}

	ver, err := l.Version()
	if err != nil {
		return "", err
	}

	if ver.Tag == "2017" {
		candidates := make([]string, 0, len(vs2017Editions)+1)
		if l.cfg.VS2017Install != "" {
			candidates = append(candidates, l.cfg.VS2017Install)
		}
		for _, edition := range vs2017Editions {
			candidates = append(candidates,
				filepath.Join(l.cfg.ProgramFilesX86, "Microsoft Visual Studio", "2017", edition))
		}
		for _, path := range candidates {
			if isDir(path) {
				return NormalizePath(path), nil
			}
		}
		return "", &Error{
			Op:  "locate toolchain",
			Err: fmt.Errorf("%w: Visual Studio %s", ErrToolchainNotFound, ver.Tag),
		}
	}

	// Legacy toolchains record their install directory in the host
	// configuration store rather than a fixed filesystem location.
	if l.cfg.Store != nil {
		keys := []string{
			`HKLM\Software\Microsoft\VisualStudio\` + ver.Number,
			`HKLM\Software\Wow6432Node\Microsoft\VisualStudio\` + ver.Number,
		}
		for _, key := range keys {
			dir, err := l.cfg.Store.Value(key, "InstallDir")
			if err != nil || dir == "" {
				continue
			}
			// InstallDir points at Common7\IDE; the root is two levels up.
			return filepath.Clean(filepath.Join(dir, "..", "..")), nil
		}
	}

	return "", &Error{
		Op:  "locate toolchain",
		Err: fmt.Errorf("%w: Visual Studio %s", ErrToolchainNotFound, ver.Tag),
	}
}

// SDKDir returns the Windows SDK root directory
func (l *Locator) SDKDir() (string, error) {
	if l.cfg.SDKDir != "" {
		return NormalizePath(l.cfg.SDKDir), nil
	}

	def := filepath.Join(l.cfg.ProgramFilesX86, "Windows Kits", "10")
	if isDir(def) {
		return def, nil
	}

	return "", &Error{Op: "locate sdk", Path: def, Err: ErrSDKNotFound}
}

// RuntimeDLLDirs returns the directories holding the CRT runtime DLLs as
// [x64 dir, x86 dir], or nil on hosts without an installed toolchain runtime.
func (l *Locator) RuntimeDLLDirs() []string {
	if l.cfg.HostOS != "windows" {
		return nil
	}

	// A 32-bit process sees the 64-bit system directory only through the
	// Sysnative alias.
	x64Dir := "Sysnative"
	if l.cfg.Host64Bit {
		x64Dir = "System32"
	}
	return []string{
		filepath.Join(l.cfg.WindowsDir, x64Dir),
		filepath.Join(l.cfg.WindowsDir, "SysWOW64"),
	}
}

// VCToolsRoot returns <vs>\VC\Tools\MSVC\<x.y.z>\bin for a 2017 install.
// The exact version directory is discovered by scanning, since minor
// toolchain updates change it.
func (l *Locator) VCToolsRoot() (string, error) {
	vs, err := l.VisualStudioPath()
	if err != nil {
		return "", err
	}

	root := filepath.Join(vs, "VC", "Tools", "MSVC")
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", &Error{Op: "locate vc tools", Path: root, Err: ErrToolchainNotFound}
	}
	for _, entry := range entries {
		if entry.IsDir() && vcToolsVersionPattern.MatchString(entry.Name()) {
			return filepath.Join(root, entry.Name(), "bin"), nil
		}
	}

	return "", &Error{Op: "locate vc tools", Path: root, Err: ErrToolchainNotFound}
}
