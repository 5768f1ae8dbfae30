package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageEntry captures a rendered page for inspection.
type pageEntry struct {
	Page    int
	Current bool
	Gap     bool
}

func pageOf(page int, current bool) pageEntry {
	return pageEntry{Page: page, Current: current}
}

var gapEntry = pageEntry{Gap: true}

func TestPager(t *testing.T) {
	s := New(intsLen, 2, intRange(20)).GoTo(5)

	got := Pager(s, pageOf)

	require.Len(t, got, 10, "one entry per page")
	for i, entry := range got {
		assert.Equal(t, i+1, entry.Page)
		assert.Equal(t, i+1 == 5, entry.Current)
	}
}

func TestPager_SinglePage(t *testing.T) {
	got := Pager(New(intsLen, 5, nil), pageOf)
	assert.Equal(t, []pageEntry{{Page: 1, Current: true}}, got)
}

func TestElidedPager(t *testing.T) {
	tests := []struct {
		name         string
		length       int
		perPage      int
		page         int
		inner, outer int
		want         []pageEntry
	}{
		{
			name:   "inner and outer windows with gaps",
			length: 20, perPage: 2, page: 5, inner: 1, outer: 1,
			want: []pageEntry{
				{Page: 1}, gapEntry,
				{Page: 4}, {Page: 5, Current: true}, {Page: 6},
				gapEntry, {Page: 10},
			},
		},
		{
			name:   "zero windows collapse to the current page",
			length: 20, perPage: 2, page: 5, inner: 0, outer: 0,
			want:   []pageEntry{{Page: 5, Current: true}},
		},
		{
			name:   "outer window covering everything leaves no gaps",
			length: 20, perPage: 2, page: 5, inner: 1, outer: 5,
			want: []pageEntry{
				{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4},
				{Page: 5, Current: true},
				{Page: 6}, {Page: 7}, {Page: 8}, {Page: 9}, {Page: 10},
			},
		},
		{
			name:   "windows overlapping near the left edge",
			length: 20, perPage: 2, page: 2, inner: 1, outer: 1,
			want: []pageEntry{
				{Page: 1}, {Page: 2, Current: true}, {Page: 3},
				gapEntry, {Page: 10},
			},
		},
		{
			name:   "windows overlapping near the right edge",
			length: 20, perPage: 2, page: 9, inner: 1, outer: 1,
			want: []pageEntry{
				{Page: 1}, gapEntry,
				{Page: 8}, {Page: 9, Current: true}, {Page: 10},
			},
		},
		{
			name:   "adjacent runs merge without a gap",
			length: 20, perPage: 2, page: 4, inner: 1, outer: 2,
			want: []pageEntry{
				{Page: 1}, {Page: 2}, {Page: 3},
				{Page: 4, Current: true}, {Page: 5},
				gapEntry, {Page: 9}, {Page: 10},
			},
		},
		{
			name:   "single page regardless of window sizes",
			length: 0, perPage: 5, page: 1, inner: 3, outer: 3,
			want:   []pageEntry{{Page: 1, Current: true}},
		},
		{
			name:   "negative windows coerced to zero",
			length: 20, perPage: 2, page: 5, inner: -2, outer: -9,
			want:   []pageEntry{{Page: 5, Current: true}},
		},
		{
			name:   "inner window wider than the whole range",
			length: 6, perPage: 2, page: 2, inner: 10, outer: 0,
			want: []pageEntry{
				{Page: 1}, {Page: 2, Current: true}, {Page: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(intsLen, tt.perPage, intRange(tt.length)).GoTo(tt.page)
			got := ElidedPager(s, tt.inner, tt.outer, pageOf, gapEntry)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElidedPager_NoDuplicatesAscending(t *testing.T) {
	for _, page := range []int{1, 3, 7, 13, 25} {
		s := New(intsLen, 1, intRange(25)).GoTo(page)
		got := ElidedPager(s, 2, 2, pageOf, gapEntry)

		last := 0
		for _, entry := range got {
			if entry.Gap {
				continue
			}
			assert.Greater(t, entry.Page, last, "page numbers strictly ascending")
			last = entry.Page
		}
	}
}

func TestElidedPager_StringViews(t *testing.T) {
	s := New(intsLen, 2, intRange(20)).GoTo(5)

	got := ElidedPager(s, 1, 1, func(page int, current bool) string {
		if current {
			return "[5]"
		}
		return "p"
	}, "…")

	assert.Equal(t, []string{"p", "…", "p", "[5]", "p", "…", "p"}, got)
}
