// pkg/msvc/versions.go
package msvc

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed versions.yaml
var versionManifest []byte

// Version describes a supported toolchain release
type Version struct {
	Tag    string   `yaml:"-"`      // year tag, e.g. "2017"
	Number string   `yaml:"number"` // internal version, e.g. "15.0"
	Hashes []string `yaml:"hashes"` // expected packaged-toolchain hashes
}

var versions map[string]*Version

func init() {
	var m struct {
		Versions map[string]*Version `yaml:"versions"`
	}
	if err := yaml.Unmarshal(versionManifest, &m); err != nil {
		panic(fmt.Sprintf("msvc: invalid embedded version manifest: %v", err))
	}
	for tag, v := range m.Versions {
		v.Tag = tag
	}
	versions = m.Versions
}

// SupportedVersions returns the supported version tags in sorted order
func SupportedVersions() []string {
	tags := make([]string, 0, len(versions))
	for tag := range versions {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// LookupVersion resolves a version tag against the manifest
func LookupVersion(tag string) (*Version, error) {
	v, ok := versions[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported versions are: %s)",
			ErrUnsupportedVersion, tag, strings.Join(SupportedVersions(), ", "))
	}
	return v, nil
}
