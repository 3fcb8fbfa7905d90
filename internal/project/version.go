package project

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedConstraint is the range of Lighthouse versions the embedded stubs
// are written for.
const SupportedConstraint = ">= 5.0.0-0"

// ParseVersion strips a leading "v" and parses a composer version string.
// Branch aliases such as "dev-master" are not versions and return an error.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing lighthouse version %q: %w", version, err)
	}
	return v, nil
}

// IsSupported reports whether v satisfies SupportedConstraint.
func IsSupported(v *semver.Version) bool {
	c, err := semver.NewConstraint(SupportedConstraint)
	if err != nil {
		return false
	}
	return c.Check(v)
}
