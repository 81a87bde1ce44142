package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateEdge(t *testing.T) {
	items := seq(45)

	p, err := Paginate(items, 20, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, items[40:45], p.Items)
	assert.Len(t, p.Items, 5)
	assert.Equal(t, 40, p.StartIndex)
	assert.Equal(t, 45, p.EndIndex)
	assert.False(t, p.CanGoNext)
	assert.True(t, p.CanGoPrev)
	assert.Equal(t, "41–45 of 45", p.Summary())
}

func TestPaginateFirstPage(t *testing.T) {
	p, err := Paginate(seq(45), 20, 1)
	require.NoError(t, err)

	assert.Equal(t, seq(20), p.Items)
	assert.True(t, p.CanGoNext)
	assert.False(t, p.CanGoPrev)
	assert.Equal(t, "1–20 of 45", p.Summary())
}

func TestPaginateOutOfRange(t *testing.T) {
	p, err := Paginate(seq(45), 20, 4)
	require.NoError(t, err)

	assert.Empty(t, p.Items)
	assert.Equal(t, 60, p.StartIndex)
	assert.Equal(t, 45, p.EndIndex)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.CanGoNext)
	assert.True(t, p.CanGoPrev)
	assert.Equal(t, "0 of 45", p.Summary())
}

func TestPaginateHugePage(t *testing.T) {
	tests := []struct {
		name      string
		pageSize  int
		page      int
		wantStart int
	}{
		{"offset fits", 20, math.MaxInt / 100, (math.MaxInt/100 - 1) * 20},
		{"offset overflows", 20, math.MaxInt / 10, math.MaxInt},
		{"max page", 1, math.MaxInt, math.MaxInt - 1},
		{"max size and page", math.MaxInt, math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Page[int]
			var err error
			require.NotPanics(t, func() {
				p, err = Paginate(seq(45), tt.pageSize, tt.page)
			})
			require.NoError(t, err)

			assert.Empty(t, p.Items)
			assert.Equal(t, tt.wantStart, p.StartIndex)
			assert.Equal(t, 45, p.EndIndex)
			assert.False(t, p.CanGoNext)
			assert.True(t, p.CanGoPrev)
			assert.Equal(t, "0 of 45", p.Summary())
		})
	}
}

func TestPaginateHugePageSize(t *testing.T) {
	p, err := Paginate(seq(45), math.MaxInt, 1)
	require.NoError(t, err)

	assert.Equal(t, seq(45), p.Items)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, "1–45 of 45", p.Summary())
}

func TestPaginateEmpty(t *testing.T) {
	p, err := Paginate([]string{}, 10, 1)
	require.NoError(t, err)

	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.CanGoNext)
	assert.False(t, p.CanGoPrev)
	assert.Equal(t, "0 of 0", p.Summary())
}

func TestPaginateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		page     int
		err      error
	}{
		{"zero page size", 0, 1, ErrInvalidPageSize},
		{"negative page size", -5, 1, ErrInvalidPageSize},
		{"zero page", 10, 0, ErrInvalidPage},
		{"negative page", 10, -1, ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate(seq(5), tt.pageSize, tt.page)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPaginationTotality(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for size := 1; size <= 12; size++ {
			items := seq(total)
			first, err := Paginate(items, size, 1)
			require.NoError(t, err)

			var joined []int
			for page := 1; page <= first.TotalPages; page++ {
				p, err := Paginate(items, size, page)
				require.NoError(t, err)
				joined = append(joined, p.Items...)
			}
			if total == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "total=%d size=%d", total, size)
		}
	}
}

func TestPageItemsDoNotAliasAppend(t *testing.T) {
	items := seq(10)
	p, err := Paginate(items, 3, 1)
	require.NoError(t, err)

	_ = append(p.Items, 99)
	assert.Equal(t, 3, items[3])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 1, TotalPages(45, 0))
	assert.Equal(t, 1, TotalPages(45, math.MaxInt))
}
