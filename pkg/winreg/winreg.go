// pkg/winreg/winreg.go
package winreg

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrValueNotFound indicates the requested registry value does not exist
var ErrValueNotFound = errors.New("registry value not found")

// Store provides read access to the host configuration store. On Windows
// this is the registry; tests substitute an in-memory implementation.
type Store interface {
	// Value returns the string data stored under key\name.
	Value(key, name string) (string, error)
}

// ExecStore reads the registry by running the reg.exe query tool. Using the
// command-line tool instead of a syscall binding keeps the package buildable
// on every platform.
type ExecStore struct {
	run func(args ...string) ([]byte, error)
}

// NewExecStore creates a Store backed by reg.exe
func NewExecStore() *ExecStore {
	return &ExecStore{
		run: func(args ...string) ([]byte, error) {
			return exec.Command("reg", args...).Output()
		},
	}
}

// Value queries key\name via "reg query"
func (s *ExecStore) Value(key, name string) (string, error) {
	out, err := s.run("query", key, "/v", name)
	if err != nil {
		return "", fmt.Errorf("reg query %s: %w", key, ErrValueNotFound)
	}

	value, ok := parseQueryOutput(out, name)
	if !ok {
		return "", fmt.Errorf("%s in %s: %w", name, key, ErrValueNotFound)
	}
	return value, nil
}

// parseQueryOutput extracts the data column for a named value from reg.exe
// output. Lines look like:
//
//	    KitsRoot10    REG_SZ    C:\Program Files (x86)\Windows Kits\10\
func parseQueryOutput(out []byte, name string) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		if fields[0] != name || !strings.HasPrefix(fields[1], "REG_") {
			continue
		}
		return strings.Join(fields[2:], " "), true
	}
	return "", false
}
