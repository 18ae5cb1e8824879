package collect

import "testing"

// TestFilterDefaultMode verifies the case-sensitive .py suffix match.
func TestFilterDefaultMode(t *testing.T) {
	f := Filter{}

	tests := []struct {
		name string
		want bool
	}{
		{"main.py", true},
		{"sub.py", true},
		{".py", true},
		{"main.pyc", false},
		{"MAIN.PY", false},
		{"main.go", false},
		{"readme.txt", false},
		{"py", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := f.Accept(tt.name); got != tt.want {
			t.Errorf("Accept(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestFilterAllFilesMode verifies every name is accepted.
func TestFilterAllFilesMode(t *testing.T) {
	f := Filter{AllFiles: true}

	for _, name := range []string{"main.py", "readme.txt", "Makefile", "data.bin"} {
		if !f.Accept(name) {
			t.Errorf("Accept(%q) = false in all-files mode, want true", name)
		}
	}
}
