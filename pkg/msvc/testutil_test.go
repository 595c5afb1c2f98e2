// pkg/msvc/testutil_test.go
package msvc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/winport/vstool/pkg/winreg"
)

// fakeStore is an in-memory winreg.Store keyed by "key|name"
type fakeStore struct {
	values map[string]string
}

func (s *fakeStore) Value(key, name string) (string, error) {
	v, ok := s.values[key+"|"+name]
	if !ok {
		return "", winreg.ErrValueNotFound
	}
	return v, nil
}

// fakeHost is a populated on-disk layout mimicking a Windows machine with a
// VS 2017 Community install and a Windows 10 SDK.
type fakeHost struct {
	cfg        *Config
	windowsDir string
	vsRoot     string
	sdkDir     string
}

const fakeVCToolsVersion = "14.11.25503"

// ucrtRedistFiles are the wildcard-matching SDK files the fake host carries
var ucrtRedistFiles = []string{
	"api-ms-win-crt-heap-l1-1-0.dll",
	"api-ms-win-crt-runtime-l1-1-0.dll",
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newFakeHost builds the source tree. Every file's content is its source
// directory plus name, so tests can verify which directory a copy came from.
func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	root := t.TempDir()

	windowsDir := filepath.Join(root, "Windows")
	programFiles := filepath.Join(root, "Program Files (x86)")
	vsRoot := filepath.Join(programFiles, "Microsoft Visual Studio", "2017", "Community")
	sdkDir := filepath.Join(programFiles, "Windows Kits", "10")

	// CRT runtime DLLs, release and debug, in both system directories.
	for _, sysDir := range []string{"System32", "SysWOW64"} {
		for _, stem := range []string{"msvcp140", "vccorlib140", "vcruntime140", "ucrtbase"} {
			for _, suffix := range []string{".dll", "d.dll"} {
				name := stem + suffix
				writeFile(t, filepath.Join(windowsDir, sysDir, name), sysDir+"/"+name)
			}
		}
	}

	// PGO runtime under the versioned VC tools tree.
	for _, hostTarget := range [][2]string{{"HostX86", "x86"}, {"HostX64", "x64"}} {
		for _, name := range pgoRuntimeFiles {
			path := filepath.Join(vsRoot, "VC", "Tools", "MSVC", fakeVCToolsVersion,
				"bin", hostTarget[0], hostTarget[1], name)
			writeFile(t, path, hostTarget[1]+"/"+name)
		}
	}

	// UCRT redist DLLs and debug helpers per architecture.
	for _, cpu := range []string{"x86", "x64"} {
		for _, name := range ucrtRedistFiles {
			writeFile(t, filepath.Join(sdkDir, "Redist", "ucrt", "DLLs", cpu, name), cpu+"/"+name)
		}
		for _, helper := range debugHelpers {
			writeFile(t, filepath.Join(sdkDir, "Debuggers", cpu, helper.Name), cpu+"/"+helper.Name)
		}
	}

	return &fakeHost{
		cfg: &Config{
			Version:         "2017",
			ProgramFilesX86: programFiles,
			WindowsDir:      windowsDir,
			HostOS:          "windows",
			Host64Bit:       true,
		},
		windowsDir: windowsDir,
		vsRoot:     vsRoot,
		sdkDir:     sdkDir,
	}
}

// expectedCopies maps target file name to expected content for one
// configuration/architecture pair.
func (h *fakeHost) expectedCopies(configuration Configuration, cpu TargetCPU) map[string]string {
	sysDir := "System32"
	if cpu == CPUx86 {
		sysDir = "SysWOW64"
	}

	want := map[string]string{}
	for _, stem := range []string{"msvcp140", "vccorlib140", "vcruntime140", "ucrtbase"} {
		want[stem+".dll"] = sysDir + "/" + stem + ".dll"
		if configuration == ConfigurationDebug {
			want[stem+"d.dll"] = sysDir + "/" + stem + "d.dll"
		}
	}
	for _, name := range ucrtRedistFiles {
		want[name] = cpu.String() + "/" + name
	}
	if configuration == ConfigurationRelease {
		for _, name := range pgoRuntimeFiles {
			want[name] = cpu.String() + "/" + name
		}
	}
	for _, helper := range debugHelpers {
		want[helper.Name] = cpu.String() + "/" + helper.Name
	}
	return want
}

func listDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	got := map[string]string{}
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name(), err)
		}
		got[entry.Name()] = string(data)
	}
	return got
}
