package collect

import "testing"

// TestDefaultExcludeSet verifies the built-in directory names are present.
func TestDefaultExcludeSet(t *testing.T) {
	s := NewExcludeSet()

	for _, name := range []string{".idea", ".venv", "venv", "__pycache__", ".env"} {
		if !s.Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
	}
	if s.Contains("src") {
		t.Errorf("Contains(%q) = true, want false", "src")
	}
}

// TestExcludeSetUnion verifies user names are added without removing defaults.
func TestExcludeSetUnion(t *testing.T) {
	s := NewExcludeSet("node_modules", "build")

	if !s.Contains("node_modules") {
		t.Error("Contains(node_modules) = false, want true")
	}
	if !s.Contains("build") {
		t.Error("Contains(build) = false, want true")
	}
	if !s.Contains(".venv") {
		t.Error("Contains(.venv) = false after union, defaults must be kept")
	}
}

// TestExcludeSetIgnoresEmptyNames verifies empty strings are not members.
func TestExcludeSetIgnoresEmptyNames(t *testing.T) {
	s := NewExcludeSet("")
	if s.Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
}

// TestExcludeSetNamesSorted verifies Names returns a sorted list.
func TestExcludeSetNamesSorted(t *testing.T) {
	s := NewExcludeSet("zzz", "aaa")
	names := s.Names()

	if len(names) != len(DefaultExcludeNames)+2 {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(DefaultExcludeNames)+2)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
