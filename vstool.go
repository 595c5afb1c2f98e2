// vstool.go
package vstool

import (
	"io"

	"github.com/winport/vstool/pkg/msvc"
	"github.com/winport/vstool/pkg/winreg"
)

// Re-export domain types for convenience, so build orchestrators embedding
// the library only need this package.
type (
	Config        = msvc.Config
	Version       = msvc.Version
	Report        = msvc.Report
	Locator       = msvc.Locator
	Copier        = msvc.Copier
	Configuration = msvc.Configuration
	TargetCPU     = msvc.TargetCPU
	RegistryStore = winreg.Store
)

// Re-export domain constants
const (
	ConfigurationDebug   = msvc.ConfigurationDebug
	ConfigurationRelease = msvc.ConfigurationRelease
	CPUx86               = msvc.CPUx86
	CPUx64               = msvc.CPUx64
	DefaultVersion       = msvc.DefaultVersion
)

// ConfigFromEnv builds a configuration from the process environment
func ConfigFromEnv() *Config {
	return msvc.ConfigFromEnv()
}

// LoadConfig builds a configuration from the environment plus an optional
// YAML overlay file.
func LoadConfig(path string) (*Config, error) {
	return msvc.LoadConfig(path)
}

// NewLocator creates a toolchain locator
func NewLocator(cfg *Config) *Locator {
	return msvc.NewLocator(cfg)
}

// NewCopier creates a runtime file copier
func NewCopier(cfg *Config) *Copier {
	return msvc.NewCopier(cfg)
}

// GetToolchainDir resolves every toolchain location and writes the
// machine-parseable report to w.
func GetToolchainDir(cfg *Config, w io.Writer) error {
	report, err := msvc.BuildReport(cfg)
	if err != nil {
		return err
	}
	return report.Write(w)
}

// CopyDLLs copies the runtime files for the configuration and architecture
// into targetDir.
func CopyDLLs(cfg *Config, targetDir string, configuration Configuration, cpu TargetCPU) error {
	return msvc.NewCopier(cfg).CopyDLLs(targetDir, configuration, cpu)
}

// SupportedVersions returns the toolchain version tags this tool knows
func SupportedVersions() []string {
	return msvc.SupportedVersions()
}
