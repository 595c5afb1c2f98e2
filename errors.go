// errors.go
package vstool

import (
	"github.com/winport/vstool/pkg/msvc"
	"github.com/winport/vstool/pkg/winreg"
)

// Re-export the domain error taxonomy. All of these are fatal; none are
// retried.
var (
	// ErrToolchainNotFound indicates no Visual Studio installation was found
	ErrToolchainNotFound = msvc.ErrToolchainNotFound

	// ErrUnsupportedVersion indicates the requested toolchain version is not supported
	ErrUnsupportedVersion = msvc.ErrUnsupportedVersion

	// ErrSDKNotFound indicates the Windows SDK directory was not found
	ErrSDKNotFound = msvc.ErrSDKNotFound

	// ErrNoMatchingFiles indicates a required wildcard matched nothing
	ErrNoMatchingFiles = msvc.ErrNoMatchingFiles

	// ErrMissingProfilingRuntime indicates a PGO runtime file is absent
	ErrMissingProfilingRuntime = msvc.ErrMissingProfilingRuntime

	// ErrMissingDebugHelper indicates a required debugging library is absent
	ErrMissingDebugHelper = msvc.ErrMissingDebugHelper

	// ErrRegistryValueNotFound indicates a host configuration store miss
	ErrRegistryValueNotFound = winreg.ErrValueNotFound
)

// Error wraps an error with the failing operation and path
type Error = msvc.Error
