package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

func TestReadFile(t *testing.T) {
	grids, err := ReadFile(filepath.Join("testdata", "sudokus.txt"))
	require.NoError(t, err)
	require.Len(t, grids, 2)

	assert.Equal(t, "classic", grids[0].Name)
	assert.Equal(t, "hardest", grids[1].Name)

	// spot checks against the file
	assert.EqualValues(t, 5, grids[0].Cell(domain.Pos{Row: 0, Col: 0}).Value)
	assert.EqualValues(t, 7, grids[0].Cell(domain.Pos{Row: 0, Col: 4}).Value)
	assert.EqualValues(t, 0, grids[0].Cell(domain.Pos{Row: 0, Col: 8}).Value)
	assert.EqualValues(t, 8, grids[1].Cell(domain.Pos{Row: 0, Col: 0}).Value)
	assert.EqualValues(t, 4, grids[1].Cell(domain.Pos{Row: 8, Col: 6}).Value)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzles.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"short row", "p1\n12345\n"},
		{"bad digit", "p1\n12345678x\n"},
		{"truncated puzzle", "p1\n123456789\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadFile(writeTemp(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestReadFileTolerantOfBlankLines(t *testing.T) {
	content := "\np1\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n\n"
	grids, err := ReadFile(writeTemp(t, content))
	require.NoError(t, err)
	require.Len(t, grids, 1)
	assert.Equal(t, "p1", grids[0].Name)
	assert.False(t, grids[0].IsComplete())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
