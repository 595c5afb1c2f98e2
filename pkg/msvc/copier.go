// pkg/msvc/copier.go
package msvc

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// mtimeTolerance guards against false-positive staleness. Copies of the same
// file can differ in modification time by a sub-10ms amount after a round
// trip through some filesystems.
const mtimeTolerance = 10 * time.Millisecond

// copiedFileMode keeps copied files writable, so a later run can replace
// them, and readable.
const copiedFileMode = os.FileMode(0o644)

// Copier places the runtime files binaries need into a build output
// directory.
type Copier struct {
	cfg    *Config
	loc    *Locator
	logger *log.Logger
}

// NewCopier creates a Copier for the given configuration
func NewCopier(cfg *Config) *Copier {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}
	return &Copier{
		cfg:    cfg,
		loc:    NewLocator(cfg),
		logger: cfg.logger(),
	}
}

// CopyDLLs copies the runtime DLLs for the given configuration and target
// architecture into targetDir. The debug configuration gets both the debug
// and release DLLs; the release configuration gets the release DLLs plus the
// PGO runtime. The copy order is fixed and every step is idempotent, so a
// failed run can simply be repeated after the environment is fixed.
func (c *Copier) CopyDLLs(targetDir string, configuration Configuration, cpu TargetCPU) error {
	if !configuration.IsValid() {
		return fmt.Errorf("unsupported configuration %q (expected Debug or Release)", configuration)
	}
	if !cpu.IsValid() {
		return fmt.Errorf("unsupported target_cpu %q (expected x86 or x64)", cpu)
	}

	runtimeDirs := c.loc.RuntimeDLLDirs()
	if len(runtimeDirs) == 0 {
		return nil
	}
	runtimeDir := runtimeDirs[0]
	if cpu == CPUx86 {
		runtimeDir = runtimeDirs[1]
	}

	if err := c.copyRuntime(targetDir, runtimeDir, cpu, false); err != nil {
		return err
	}
	if configuration == ConfigurationDebug {
		if err := c.copyRuntime(targetDir, runtimeDir, cpu, true); err != nil {
			return err
		}
	} else {
		if err := c.copyPGORuntime(targetDir, cpu); err != nil {
			return err
		}
	}

	return c.copyDebugHelpers(targetDir, cpu)
}

// copyRuntime copies the CRT runtime DLLs and the universal CRT files for
// one configuration flavor.
func (c *Copier) copyRuntime(targetDir, sourceDir string, cpu TargetCPU, debug bool) error {
	suffix := ".dll"
	if debug {
		suffix = "d.dll"
	}

	for _, prefix := range crtPrefixes {
		name := prefix + "140" + suffix
		if err := c.copyFile(filepath.Join(targetDir, name), filepath.Join(sourceDir, name), true); err != nil {
			return err
		}
	}

	if err := c.copyUCRTRedist(targetDir, cpu); err != nil {
		return err
	}

	name := ucrtBaseStem + suffix
	return c.copyFile(filepath.Join(targetDir, name), filepath.Join(sourceDir, name), true)
}

// copyUCRTRedist copies the api-ms-win forwarder DLLs from the SDK redist
// tree. Zero matches means a misconfigured SDK install and is fatal.
func (c *Copier) copyUCRTRedist(targetDir string, cpu TargetCPU) error {
	sdkDir, err := c.loc.SDKDir()
	if err != nil {
		return err
	}

	redistDir := filepath.Join(sdkDir, "Redist", "ucrt", "DLLs", cpu.String())
	matches, err := filepath.Glob(filepath.Join(redistDir, ucrtRedistPattern))
	if err != nil {
		return &Error{Op: "copy ucrt redist", Path: redistDir, Err: err}
	}
	if len(matches) == 0 {
		return &Error{Op: "copy ucrt redist", Path: redistDir, Err: ErrNoMatchingFiles}
	}

	for _, source := range matches {
		target := filepath.Join(targetDir, filepath.Base(source))
		if err := c.copyFile(target, source, false); err != nil {
			return err
		}
	}
	return nil
}

// copyPGORuntime copies the files required during a profile-guided
// optimization build. Their location depends on the toolchain version.
func (c *Copier) copyPGORuntime(targetDir string, cpu TargetCPU) error {
	ver, err := c.loc.Version()
	if err != nil {
		return err
	}

	var x86Dir, x64Dir string
	switch ver.Tag {
	case "2015":
		vs, err := c.loc.VisualStudioPath()
		if err != nil {
			return err
		}
		x86Dir = filepath.Join(vs, "VC", "bin")
		x64Dir = filepath.Join(x86Dir, "amd64")
	case "2017":
		toolsRoot, err := c.loc.VCToolsRoot()
		if err != nil {
			return err
		}
		// No pgosweep.exe ships under HostX64\x86, so the x86 files come
		// from the HostX86 tree.
		x86Dir = filepath.Join(toolsRoot, "HostX86", "x86")
		x64Dir = filepath.Join(toolsRoot, "HostX64", "x64")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, ver.Tag)
	}

	sourceDir := x64Dir
	if cpu == CPUx86 {
		sourceDir = x86Dir
	}

	for _, name := range pgoRuntimeFiles {
		source := filepath.Join(sourceDir, name)
		if _, err := os.Stat(source); err != nil {
			return &Error{
				Op:   "copy pgo runtime",
				Path: source,
				Err:  fmt.Errorf("%w: %s", ErrMissingProfilingRuntime, name),
			}
		}
		if err := c.copyFile(filepath.Join(targetDir, name), source, true); err != nil {
			return err
		}
	}
	return nil
}

// copyDebugHelpers copies dbghelp.dll and dbgcore.dll from the SDK.
// dbghelp.dll keeps stack symbolization compatible with current debug info
// formats; dbgcore.dll backs some of its entry points but does not ship with
// every SDK.
func (c *Copier) copyDebugHelpers(targetDir string, cpu TargetCPU) error {
	sdkDir, err := c.loc.SDKDir()
	if err != nil {
		return err
	}

	for _, helper := range debugHelpers {
		source := filepath.Join(sdkDir, "Debuggers", cpu.String(), helper.Name)
		if _, err := os.Stat(source); err != nil {
			if helper.Optional {
				continue
			}
			return &Error{
				Op:   "copy debugger",
				Path: source,
				Err: fmt.Errorf("%w: %s; install the \"Debugging Tools for Windows\" feature of the Windows 10 SDK",
					ErrMissingDebugHelper, helper.Name),
			}
		}
		if err := c.copyFile(filepath.Join(targetDir, helper.Name), source, true); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies source to target when the target is missing or its
// modification time has drifted from the source's by more than the
// tolerance. Copies only happen when the target's directory already exists.
func (c *Copier) copyFile(target, source string, verbose bool) error {
	if !isDir(filepath.Dir(target)) {
		return nil
	}

	sourceInfo, err := os.Stat(source)
	if err != nil {
		return &Error{Op: "copy", Path: source, Err: err}
	}

	if targetInfo, err := os.Stat(target); err == nil {
		drift := sourceInfo.ModTime().Sub(targetInfo.ModTime())
		if drift < 0 {
			drift = -drift
		}
		if drift < mtimeTolerance {
			return nil
		}
		// Make the stale target writable so it can be removed.
		if err := os.Chmod(target, copiedFileMode); err != nil {
			return &Error{Op: "copy", Path: target, Err: err}
		}
		if err := os.Remove(target); err != nil {
			return &Error{Op: "copy", Path: target, Err: err}
		}
	}

	if verbose {
		c.logger.Printf("Copying %s to %s...", source, target)
	}

	if err := copyContents(target, source); err != nil {
		return &Error{Op: "copy", Path: target, Err: err}
	}
	// Carry the source timestamp over so the staleness check holds on the
	// next run.
	if err := os.Chtimes(target, time.Now(), sourceInfo.ModTime()); err != nil {
		return &Error{Op: "copy", Path: target, Err: err}
	}
	if err := os.Chmod(target, copiedFileMode); err != nil {
		return &Error{Op: "copy", Path: target, Err: err}
	}
	return nil
}

// copyContents writes a byte-identical copy of source at target
func copyContents(target, source string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
