package models

import "strings"

// MatchesFilter reports whether filter occurs in the title or in any genre of
// c. An empty filter matches everything.
func MatchesFilter(c *Content, filter string) bool {
	if filter == "" {
		return true
	}
	if strings.Contains(c.Title, filter) {
		return true
	}
	for _, g := range c.Genres {
		if strings.Contains(g, filter) {
			return true
		}
	}
	return false
}
