package season

import "fmt"

// Version is one of the snapshot points at which a season's stats are captured.
// The zero value is VersionStart.
type Version int

const (
	VersionStart Version = iota
	VersionSummerEnd
	VersionWinterEnd
	VersionEnd
)

var versionTags = [...]string{
	VersionStart:     "start",
	VersionSummerEnd: "summer_end",
	VersionWinterEnd: "winter_end",
	VersionEnd:       "end",
}

// Versions returns every version in cycle order.
func Versions() []Version {
	return []Version{VersionStart, VersionSummerEnd, VersionWinterEnd, VersionEnd}
}

// ParseVersion maps a tag such as "summer_end" to its Version.
func ParseVersion(tag string) (Version, error) {
	for i, t := range versionTags {
		if t == tag {
			return Version(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, tag)
}

// Valid reports whether v is one of the four known versions.
func (v Version) Valid() bool {
	return v >= VersionStart && v <= VersionEnd
}

func (v Version) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Version(%d)", int(v))
	}
	return versionTags[v]
}

// Next returns the version after v. wrapped is true when v is VersionEnd and
// the cycle restarts at VersionStart.
func (v Version) Next() (next Version, wrapped bool) {
	if v >= VersionEnd {
		return VersionStart, true
	}
	return v + 1, false
}

// MarshalText encodes the version as its tag.
func (v Version) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return []byte(versionTags[v]), nil
}

// UnmarshalText decodes a version tag.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
