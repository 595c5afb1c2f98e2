// pkg/msvc/constants.go
package msvc

const (
	// DefaultVersion is the toolchain used when no version is selected
	DefaultVersion = "2017"

	// DefaultWindowsDir is the Windows directory on a standard install
	DefaultWindowsDir = `C:\Windows`

	// DefaultProgramFilesX86 is used when ProgramFiles(x86) is unset
	DefaultProgramFilesX86 = `C:\Program Files (x86)`
)

// Environment variables consumed by ConfigFromEnv
const (
	EnvVersion         = "VISUAL_STUDIO_VERSION"
	EnvInstallDir      = "VISUAL_STUDIO_PATH"
	EnvVS2017Install   = "vs2017_install"
	EnvSDKDir          = "WINDOWSSDKDIR"
	EnvWDKDir          = "WDK_DIR"
	EnvProgramFilesX86 = "ProgramFiles(x86)"
)

// vs2017Editions are probed in priority order under
// <ProgramFiles(x86)>\Microsoft Visual Studio\2017
var vs2017Editions = []string{"Enterprise", "Professional", "Community"}

// crtPrefixes are the CRT runtime DLL name stems. The full file name is
// <stem>140.dll, or <stem>140d.dll for the debug variant.
var crtPrefixes = []string{"msvcp", "vccorlib", "vcruntime"}

const (
	// ucrtBaseStem plus the configuration suffix names the universal CRT DLL
	ucrtBaseStem = "ucrtbase"

	// ucrtRedistPattern matches the api-ms-win forwarder DLLs shipped under
	// <sdk>\Redist\ucrt\DLLs\<cpu>. These are needed for component builds.
	ucrtRedistPattern = "api-ms-win-*.dll"
)

// pgoRuntimeFiles are required during a profiling build: the runtime library
// the instrumented image loads, and the tool that collects profile data.
var pgoRuntimeFiles = []string{"pgort140.dll", "pgosweep.exe"}

// RuntimeFile names a file to copy and whether its absence is tolerated
type RuntimeFile struct {
	Name     string
	Optional bool
}

// debugHelpers ship with the Windows SDK under Debuggers\<cpu>. dbghelp.dll
// is present on every supported SDK; dbgcore.dll only on some, so its
// absence is skipped silently.
var debugHelpers = []RuntimeFile{
	{Name: "dbghelp.dll", Optional: false},
	{Name: "dbgcore.dll", Optional: true},
}
