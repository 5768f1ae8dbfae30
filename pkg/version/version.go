// Package version exposes the build version of pageflip.
package version

import "github.com/Masterminds/semver/v3"

// version is injected at build time via
// -ldflags "-X github.com/rshade/pageflip/pkg/version.version=v1.2.3".
var version = "0.1.0-dev" //nolint:gochecknoglobals // Set by the linker.

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Semver returns the parsed build version. It returns nil when the
// injected string is not valid semver, e.g. an ad hoc local build.
func Semver() *semver.Version {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	return v
}

// IsPrerelease reports whether the build carries a prerelease tag.
// Unparseable versions count as prerelease.
func IsPrerelease() bool {
	v := Semver()
	return v == nil || v.Prerelease() != ""
}
