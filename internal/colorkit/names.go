package colorkit

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// lookupName resolves a CSS/SVG color keyword, ignoring case.
func lookupName(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}, true
}

// Names returns every color keyword ParseColor accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(colornames.Names))
	names = append(names, colornames.Names...)
	sort.Strings(names)
	return names
}
