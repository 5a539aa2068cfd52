package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPager_FirstPage(t *testing.T) {
	pager := NewPager(1, 3, nil, intPtr(2))

	assert.False(t, pager.CanPrev())
	assert.True(t, pager.CanNext())
	assert.Equal(t, 1, pager.Prev(), "prev stays put when disabled")
	assert.Equal(t, 2, pager.Next())
}

func TestPager_LastPage(t *testing.T) {
	pager := NewPager(3, 3, intPtr(2), nil)

	assert.True(t, pager.CanPrev())
	assert.False(t, pager.CanNext())
	assert.Equal(t, 2, pager.Prev())
	assert.Equal(t, 3, pager.Next(), "next stays put when disabled")
}

func TestPager_MiddlePage(t *testing.T) {
	pager := NewPager(2, 3, intPtr(1), intPtr(3))

	assert.True(t, pager.CanPrev())
	assert.True(t, pager.CanNext())
}

func TestPager_SinglePage(t *testing.T) {
	pager := NewPager(1, 1, nil, nil)

	assert.False(t, pager.CanPrev())
	assert.False(t, pager.CanNext())
}

func TestPager_NULLPointersWinOverNumbers(t *testing.T) {
	// The meta block is authoritative: even with currentPage < totalPages,
	// a null nextPage disables the control.
	pager := NewPager(1, 3, nil, nil)
	assert.False(t, pager.CanNext())
}
