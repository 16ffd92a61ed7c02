package routing

import "strings"

// Route is a canonical absolute path: non-empty, always starting with "/",
// with any leading fragment marker stripped.
type Route string

// Normalize maps an arbitrary input string to a canonical Route. It is a
// total function: every input, including the empty string, yields a valid
// Route, and Normalize(Normalize(s)) == Normalize(s).
func Normalize(path string) Route {
	if path == "" {
		return "/"
	}

	cleaned := strings.TrimSpace(path)

	// Legacy fragment-based links arrive as "#/about".
	cleaned = strings.TrimPrefix(cleaned, "#")

	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}

	if cleaned == "" {
		return "/"
	}
	return Route(cleaned)
}
