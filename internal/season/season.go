package season

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const separator = "_"

// AdvanceSeason moves a "Y1_Y2" identifier on by one year, producing "Y2_Y2+1".
// Only the trailing year is parsed; the leading year is discarded.
func AdvanceSeason(season string) (string, error) {
	parts := strings.Split(season, separator)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q: expected exactly one %q", ErrMalformedSeason, season, separator)
	}
	endYear, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedSeason, season, err)
	}
	if endYear == math.MaxInt {
		return "", fmt.Errorf("%w: %q: end year out of range", ErrMalformedSeason, season)
	}
	return parts[1] + separator + strconv.Itoa(endYear+1), nil
}

// Advance returns the (season, version) pair following the given one. Moving
// past VersionEnd wraps to VersionStart of the next season.
func Advance(season string, v Version) (string, Version, error) {
	if !v.Valid() {
		return "", 0, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	next, wrapped := v.Next()
	if !wrapped {
		return season, next, nil
	}
	nextSeason, err := AdvanceSeason(season)
	if err != nil {
		return "", 0, err
	}
	return nextSeason, next, nil
}

// AdvanceVersion is Advance over raw version tags.
func AdvanceVersion(season, version string) (string, string, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return "", "", err
	}
	nextSeason, next, err := Advance(season, v)
	if err != nil {
		return "", "", err
	}
	return nextSeason, next.String(), nil
}

// LatestVersion returns the most advanced version named in tags, which are
// typically player file names with the ".json" suffix removed. An empty list
// yields VersionStart. Any unrecognised tag is an error.
func LatestVersion(tags []string) (Version, error) {
	best := VersionStart
	for _, tag := range tags {
		v, err := ParseVersion(tag)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
	}
	return best, nil
}
