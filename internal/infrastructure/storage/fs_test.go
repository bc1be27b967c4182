package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzles/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "abc",
		Difficulty: domain.Hard,
		CreatedAt:  42,
		Name:       "evening puzzle",
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true

	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListNewestFirstAcrossBuckets(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "a", Difficulty: domain.Easy, CreatedAt: 1}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "b", Difficulty: domain.Expert, CreatedAt: 3}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "c", Difficulty: domain.Medium, CreatedAt: 2}))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)
	assert.Equal(t, "b", metas[0].ID)
	assert.Equal(t, "c", metas[1].ID)
	assert.Equal(t, "a", metas[2].ID)
	assert.Equal(t, domain.Expert, metas[0].Difficulty)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
