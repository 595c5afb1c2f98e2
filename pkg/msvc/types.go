// pkg/msvc/types.go
package msvc

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/winport/vstool/pkg/winreg"
)

// Config holds everything the locator and copier need to know about the
// host. Domain code never reads the process environment directly; callers
// build a Config (usually via ConfigFromEnv) and pass it in.
type Config struct {
	// Version is the toolchain year tag, e.g. "2017"
	Version string `yaml:"version"`

	// InstallDir overrides toolchain discovery entirely when set
	InstallDir string `yaml:"install_dir"`

	// VS2017Install is the per-version install override
	VS2017Install string `yaml:"vs2017_install"`

	// SDKDir overrides Windows SDK discovery when set
	SDKDir string `yaml:"sdk_dir"`

	// WDKDir is the optional Windows Driver Kit directory
	WDKDir string `yaml:"wdk_dir"`

	// ProgramFilesX86 is the 32-bit Program Files directory
	ProgramFilesX86 string `yaml:"program_files_x86"`

	// WindowsDir is the Windows directory holding System32/SysWOW64
	WindowsDir string `yaml:"windows_dir"`

	// HostOS is the operating system of the host, from runtime.GOOS
	HostOS string `yaml:"-"`

	// Host64Bit reports whether this process runs as 64-bit
	Host64Bit bool `yaml:"-"`

	// Store reads the host configuration store for legacy toolchains
	Store winreg.Store `yaml:"-"`

	// Verbose enables copy progress logging
	Verbose bool `yaml:"-"`

	// Logger for custom logging
	Logger *log.Logger `yaml:"-"`
}

// ConfigFromEnv builds a Config from the process environment, applying
// host-standard defaults for anything unset.
func ConfigFromEnv() *Config {
	cfg := &Config{
		Version:         os.Getenv(EnvVersion),
		InstallDir:      os.Getenv(EnvInstallDir),
		VS2017Install:   os.Getenv(EnvVS2017Install),
		SDKDir:          os.Getenv(EnvSDKDir),
		WDKDir:          os.Getenv(EnvWDKDir),
		ProgramFilesX86: os.Getenv(EnvProgramFilesX86),
		WindowsDir:      DefaultWindowsDir,
		HostOS:          runtime.GOOS,
		Host64Bit:       runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64",
		Store:           winreg.NewExecStore(),
	}

	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.ProgramFilesX86 == "" {
		cfg.ProgramFilesX86 = DefaultProgramFilesX86
	}

	return cfg
}

// LoadConfig builds a Config from the environment and overlays the YAML
// file at path when one is given.
func LoadConfig(path string) (*Config, error) {
	cfg := ConfigFromEnv()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// logger returns the configured logger, a stdout logger in verbose mode, or
// a discarding logger otherwise.
func (c *Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Verbose {
		return log.New(os.Stdout, "", 0)
	}
	return log.New(io.Discard, "", 0)
}

// NormalizePath strips trailing path separators
func NormalizePath(path string) string {
	for len(path) > 1 && (strings.HasSuffix(path, `\`) || strings.HasSuffix(path, "/")) {
		path = path[:len(path)-1]
	}
	return path
}

// isDir reports whether path exists and is a directory
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
