package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

func TestBacktrackingSolve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, &domain.Board{Values: classic})
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	assert.Equal(t, classicSolved, out.Values)
}

func TestBacktrackingUnsolvable(t *testing.T) {
	ctx := context.Background()
	_, _, err := NewBacktrackingSolver().Solve(ctx, &domain.Board{Values: unsolvable})
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestUnique(t *testing.T) {
	ctx := context.Background()
	s := NewBacktrackingSolver()

	unique, _, err := s.Unique(ctx, &domain.Board{Values: classic})
	require.NoError(t, err)
	assert.True(t, unique, "the classic fixture has exactly one solution")

	unique, _, err = s.Unique(ctx, &domain.Board{})
	require.NoError(t, err)
	assert.False(t, unique, "an empty board has many solutions")
}

func TestMarksSolverPort(t *testing.T) {
	ctx := context.Background()
	s := NewMarksSolver()

	out, st, err := s.Solve(ctx, &domain.Board{Values: hardest})
	require.NoError(t, err)
	assert.Equal(t, hardestSolved, out.Values)
	assert.Greater(t, st.Nodes, 0)

	_, _, err = s.Solve(ctx, &domain.Board{Values: unsolvable})
	assert.ErrorIs(t, err, ErrUnsolvable)
}
