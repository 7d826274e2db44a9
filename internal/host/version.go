package host

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// MinimumVersion is the oldest host version that provides the abilities API.
const MinimumVersion = ">= 6.9.0-0"

// UnsupportedHostError is the precondition failure reported when the host is
// too old to provide abilities.
type UnsupportedHostError struct {
	Version    string
	Constraint string
}

func (e *UnsupportedHostError) Error() string {
	return fmt.Sprintf("Requires host version 6.9 or newer; found %s.", e.Version)
}

// CheckVersion verifies that version satisfies MinimumVersion.
func CheckVersion(version string) error {
	constraint, err := semver.NewConstraint(MinimumVersion)
	if err != nil {
		return err
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return &UnsupportedHostError{Version: version, Constraint: MinimumVersion}
	}
	if !constraint.Check(v) {
		return &UnsupportedHostError{Version: version, Constraint: MinimumVersion}
	}
	return nil
}
