package book

import (
	"regexp"
	"strconv"
)

var (
	yearPattern     = regexp.MustCompile(`[1-9][0-9]{3}`)
	locationPattern = regexp.MustCompile(`[^/]+$`)
)

// ExtractYear returns the first four-digit year found in a free-form date
// such as "1994-03-01", "October 1, 1970" or "circa 1800s".
func ExtractYear(date string) (int, bool) {
	m := yearPattern.FindString(date)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

// ExtractLocation returns the trailing path segment of a location such as
// "/works/OL12345W", which is the work id to retry with.
func ExtractLocation(location string) (string, bool) {
	m := locationPattern.FindString(location)
	if m == "" {
		return "", false
	}
	return m, true
}
