package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var versionPrefix = regexp.MustCompile(`^(\d+)\.(\d+)`)

// EngineVersion is the major.minor prefix of a version-query answer such as "4.4.1.stable.official".
type EngineVersion struct {
	Major int
	Minor int
	Raw   string
}

// ParseEngineVersion extracts the major.minor prefix from raw.
// The second result is false when raw does not start with a numeric major.minor pair.
func ParseEngineVersion(raw string) (EngineVersion, bool) {
	raw = strings.TrimSpace(raw)
	m := versionPrefix.FindStringSubmatch(raw)
	if m == nil {
		return EngineVersion{Raw: raw}, false
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return EngineVersion{Raw: raw}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return EngineVersion{Raw: raw}, false
	}

	return EngineVersion{Major: major, Minor: minor, Raw: raw}, true
}

// AtLeast reports whether v is major.minor or newer.
func (v EngineVersion) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// SupportsUIDs reports whether a raw version string names an engine with resource UIDs (4.4+).
// Unparseable versions are treated as unsupported.
func SupportsUIDs(raw string) bool {
	v, ok := ParseEngineVersion(raw)
	return ok && v.AtLeast(4, 4)
}
