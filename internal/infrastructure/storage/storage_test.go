package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjoern/sudoku-solver/internal/domain"
	"github.com/tbjoern/sudoku-solver/internal/ports"
)

func samplePuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       7,
		Difficulty: d,
		CreatedAt:  1234,
		Name:       "sample " + id,
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	return p
}

func testStorage(t *testing.T, st ports.Storage) {
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, samplePuzzle("a", domain.Easy)))
	require.NoError(t, st.Save(ctx, samplePuzzle("b", domain.Expert)))

	p, err := st.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, domain.Easy, p.Difficulty)
	assert.EqualValues(t, 5, p.Board.Values[0][0])
	assert.True(t, p.Board.Fixed[0][0])

	_, err = st.Load(ctx, "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)

	err = st.Save(ctx, &domain.Puzzle{})
	assert.Error(t, err, "puzzles need an ID")
}

func TestFSStorage(t *testing.T) {
	testStorage(t, NewFS(t.TempDir()))
}

func TestBoltStorage(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer st.Close()
	testStorage(t, st)
}

func TestFSStorageOverwrite(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("x", domain.Medium)
	require.NoError(t, st.Save(ctx, p))
	p.Notes = "updated"
	require.NoError(t, st.Save(ctx, p))

	got, err := st.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Notes)
}
