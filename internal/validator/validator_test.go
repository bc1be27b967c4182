package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzles/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 1
	b.Values[0][1] = 2
	b.Values[8][8] = 1
	ok, conf, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateReportsConflicts(t *testing.T) {
	var b domain.Board
	b.Values[3][2] = 7
	b.Values[3][6] = 7 // row duplicate
	b.Values[6][2] = 7 // column duplicate
	ok, conf, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 3, Col: 6})
	assert.Contains(t, conf, domain.CellCoord{Row: 6, Col: 2})
}

func TestValidateBoxConflict(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 4
	b.Values[2][2] = 4
	ok, conf, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}
