package nav

import (
	"github.com/antzucaro/matchr"
)

// Scope is a single entry of the main navigation bar.
type Scope struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// MainNav is the navigation state rendered at the top of every page.
type MainNav struct {
	Name   string  `json:"name"`
	Scopes []Scope `json:"scopes"`
}

// SetActiveNav selects the first scope called name and records name as the
// active page. Later scopes with the same name are left alone, and the page
// name is set even when no scope matched.
func SetActiveNav(nav *MainNav, name string) {
	if nav == nil {
		return
	}
	for i := range nav.Scopes {
		if nav.Scopes[i].Name == name {
			nav.Scopes[i].Selected = true
			break
		}
	}
	nav.Name = name
}

// HasScope reports whether any scope is called name.
func HasScope(nav MainNav, name string) bool {
	for _, s := range nav.Scopes {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ClosestScope returns the scope name most similar to name along with its
// Jaro-Winkler similarity. It returns "", 0 when there are no scopes.
func ClosestScope(nav MainNav, name string) (string, float64) {
	var best string
	var bestScore float64
	for _, s := range nav.Scopes {
		score := matchr.JaroWinkler(s.Name, name, false)
		if best == "" || score > bestScore {
			best = s.Name
			bestScore = score
		}
	}
	return best, bestScore
}
