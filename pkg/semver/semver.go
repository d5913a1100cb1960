// Package semver provides the minimal semantic-version handling the
// application needs: parsing "major.minor.patch" strings and ordering them.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a "major.minor.patch" string into a Version.
// Pre-release and build metadata are not supported; the application only ever
// stamps plain release versions into descriptor files.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid semantic version %q", s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 {
			return Version{}, fmt.Errorf("invalid semantic version %q", s)
		}
		nums[i] = num
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// IsValid reports whether s parses as a semantic version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare returns -1, 0 or 1 depending on whether a is older than, equal to
// or newer than b.
func Compare(a, b Version) int {
	pairs := [][2]int{
		{a.Major, b.Major},
		{a.Minor, b.Minor},
		{a.Patch, b.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// String renders the version back to "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// GetNumericVersion folds a semver string into a single comparable integer.
// Invalid components count as zero.
func GetNumericVersion(semVer string) int {
	parts := strings.Split(semVer, ".")
	result := 0
	for _, part := range parts {
		num, _ := strconv.Atoi(part)
		result = result*1000 + num
	}
	return result
}
