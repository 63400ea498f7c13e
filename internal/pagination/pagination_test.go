package pagination_test

import (
	"testing"

	"github.com/scribehq/scribe/internal/pagination"
	"github.com/stretchr/testify/assert"
)

func TestTwelvePostsSplitTenAndTwo(t *testing.T) {
	p1 := pagination.New(12, 1, 10)
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 0, p1.Offset)
	assert.Equal(t, 10, p1.Limit)
	assert.Equal(t, 2, p1.NumPages)
	assert.False(t, p1.HasPrev())
	assert.True(t, p1.HasNext())

	p2 := pagination.New(12, 2, 10)
	assert.Equal(t, 2, p2.Number)
	assert.Equal(t, 10, p2.Offset)
	assert.Equal(t, 2, p2.Limit)
	assert.True(t, p2.HasPrev())
	assert.False(t, p2.HasNext())
}

func TestOutOfRangePageClampsToLast(t *testing.T) {
	p := pagination.New(12, 99, 10)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Offset)
	assert.Equal(t, 2, p.Limit)
}

func TestPageBelowOneClampsToFirst(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		p := pagination.New(12, n, 10)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 0, p.Offset)
	}
}

func TestEmptyCollectionHasOneEmptyPage(t *testing.T) {
	p := pagination.New(0, 1, 10)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.NumPages)
	assert.Equal(t, 0, p.Limit)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestExactMultipleHasNoExtraPage(t *testing.T) {
	p := pagination.New(20, 3, 10)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 2, p.NumPages)
	assert.Equal(t, 10, p.Limit)
}

func TestInvalidSizeFallsBackToDefault(t *testing.T) {
	p := pagination.New(25, 1, 0)
	assert.Equal(t, pagination.DefaultPageSize, p.Size)
	assert.Equal(t, 3, p.NumPages)
}
