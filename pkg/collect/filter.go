package collect

import "strings"

// pythonSuffix is the literal, case-sensitive suffix accepted in default mode.
const pythonSuffix = ".py"

// Filter decides which discovered files qualify for inclusion. The walker
// only hands it non-directory entries, so the decision reduces to the
// inclusion mode and the file name.
type Filter struct {
	AllFiles bool
}

// Accept reports whether a file with the given name qualifies.
func (f Filter) Accept(name string) bool {
	if f.AllFiles {
		return true
	}
	return strings.HasSuffix(name, pythonSuffix)
}
