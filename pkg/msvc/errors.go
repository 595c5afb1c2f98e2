// pkg/msvc/errors.go
package msvc

import (
	"errors"
	"fmt"
)

var (
	// ErrToolchainNotFound indicates no Visual Studio installation was found
	ErrToolchainNotFound = errors.New("toolchain not found")

	// ErrUnsupportedVersion indicates the requested toolchain version is not supported
	ErrUnsupportedVersion = errors.New("toolchain version not supported")

	// ErrSDKNotFound indicates the Windows SDK directory was not found
	ErrSDKNotFound = errors.New("windows sdk not found")

	// ErrNoMatchingFiles indicates a required wildcard matched nothing
	ErrNoMatchingFiles = errors.New("no matching files")

	// ErrMissingProfilingRuntime indicates a PGO runtime file is absent
	ErrMissingProfilingRuntime = errors.New("profiling runtime missing")

	// ErrMissingDebugHelper indicates a required debugging library is absent
	ErrMissingDebugHelper = errors.New("debug helper missing")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or directory involved if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
