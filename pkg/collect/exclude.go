package collect

import "sort"

// DefaultExcludeNames are the directory basenames pruned from every traversal.
// User-supplied names are added to this list, never substituted for it.
var DefaultExcludeNames = []string{".idea", ".venv", "venv", "__pycache__", ".env"}

// ExcludeSet holds directory basenames pruned from traversal at any depth.
// Membership is tested against the basename alone, so a nested .venv is
// pruned just like a top-level one.
type ExcludeSet struct {
	names map[string]struct{}
}

// NewExcludeSet builds a set containing the default names plus any extras.
func NewExcludeSet(extra ...string) *ExcludeSet {
	s := &ExcludeSet{names: make(map[string]struct{}, len(DefaultExcludeNames)+len(extra))}
	for _, name := range DefaultExcludeNames {
		s.names[name] = struct{}{}
	}
	for _, name := range extra {
		if name != "" {
			s.names[name] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the given directory basename is excluded.
func (s *ExcludeSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns the member names in sorted order, for logging.
func (s *ExcludeSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
