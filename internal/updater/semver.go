package updater

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a parsed release version. Release tags may carry a prerelease
// suffix ("1.4.0-rc.2"); the suffix is kept for display but a prerelease
// sorts before its final release.
type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// ParseSemver parses a version string like "1.2.3", "v1.2.3" or
// "1.2.3-rc.1".
func ParseSemver(s string) (Semver, error) {
	s = strings.TrimPrefix(s, "v")

	var pre string
	if i := strings.IndexByte(s, '-'); i >= 0 {
		pre = s[i+1:]
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Semver{}, fmt.Errorf("invalid version: %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("invalid version component %q in %q", p, s)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2], Prerelease: pre}, nil
}

// String returns the canonical form, including any prerelease suffix.
func (v Semver) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// Compare returns -1, 0 or 1 comparing v with other.
func (v Semver) Compare(other Semver) int {
	for _, d := range []int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}

	// Same core version: a prerelease is older than the final release.
	switch {
	case v.Prerelease == other.Prerelease:
		return 0
	case v.Prerelease == "":
		return 1
	case other.Prerelease == "":
		return -1
	case v.Prerelease < other.Prerelease:
		return -1
	default:
		return 1
	}
}

// LessThan returns true if v < other.
func (v Semver) LessThan(other Semver) bool {
	return v.Compare(other) < 0
}
