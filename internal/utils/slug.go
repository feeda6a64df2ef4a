package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRE  = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapseRE = regexp.MustCompile(`-{2,}`)
)

// Slugify reduces input to a lowercase URL-safe slug: non-alphanumeric runs
// become single hyphens and leading/trailing hyphens are stripped. It
// returns "" when nothing slug-worthy remains.
//
// Example:
//
//	Slugify("  The Spice Route! ") // "the-spice-route"
//	Slugify("***")                 // ""
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugInvalidRE.ReplaceAllString(s, "-")
	s = slugCollapseRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
