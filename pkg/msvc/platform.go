// pkg/msvc/platform.go
package msvc

import "fmt"

// Configuration is a build configuration
type Configuration string

const (
	// ConfigurationDebug builds with debug runtime libraries
	ConfigurationDebug Configuration = "Debug"
	// ConfigurationRelease builds with release runtime libraries
	ConfigurationRelease Configuration = "Release"
)

// AllConfigurations contains every supported build configuration
var AllConfigurations = []Configuration{
	ConfigurationDebug,
	ConfigurationRelease,
}

// ParseConfiguration validates a configuration name
func ParseConfiguration(s string) (Configuration, error) {
	c := Configuration(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported configuration %q (expected Debug or Release)", s)
	}
	return c, nil
}

// String returns the string representation of the configuration
func (c Configuration) String() string {
	return string(c)
}

// IsValid checks if the configuration is valid
func (c Configuration) IsValid() bool {
	for _, valid := range AllConfigurations {
		if c == valid {
			return true
		}
	}
	return false
}

// TargetCPU is the architecture binaries are built for
type TargetCPU string

const (
	// CPUx86 targets 32-bit x86
	CPUx86 TargetCPU = "x86"
	// CPUx64 targets 64-bit x86
	CPUx64 TargetCPU = "x64"
)

// AllTargetCPUs contains every supported target architecture
var AllTargetCPUs = []TargetCPU{
	CPUx86,
	CPUx64,
}

// ParseTargetCPU validates a target architecture name
func ParseTargetCPU(s string) (TargetCPU, error) {
	c := TargetCPU(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported target_cpu %q (expected x86 or x64)", s)
	}
	return c, nil
}

// String returns the string representation of the target CPU
func (c TargetCPU) String() string {
	return string(c)
}

// IsValid checks if the target CPU is valid
func (c TargetCPU) IsValid() bool {
	for _, valid := range AllTargetCPUs {
		if c == valid {
			return true
		}
	}
	return false
}
