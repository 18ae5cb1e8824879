package collect

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderTreeLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, root, "a.py", "")
	writeTestFile(t, root, "sub/b.py", "")
	writeTestFile(t, root, ".venv/skip.py", "")

	out := RenderTree([]string{root}, NewExcludeSet(), zap.NewNop())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "proj/", lines[0])
	// Directories sort before files.
	assert.Equal(t, "├── sub/", lines[1])
	assert.Equal(t, "│   └── b.py", lines[2])
	assert.Equal(t, "└── a.py", lines[3])
	assert.NotContains(t, out, ".venv")
}

func TestRenderTreeSkipsMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out := RenderTree([]string{missing}, NewExcludeSet(), zap.NewNop())
	assert.Empty(t, out)
}
