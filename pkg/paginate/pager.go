package paginate

import "sort"

// ViewFunc renders one page number. current is true exactly for the
// state's current page.
type ViewFunc[V any] func(page int, current bool) V

// Pager maps every page number of s through view, in order. The result
// has exactly TotalPages elements with no gaps.
func Pager[T, V any](s State[T], view ViewFunc[V]) []V {
	out := make([]V, 0, s.TotalPages())
	for page := 1; page <= s.TotalPages(); page++ {
		out = append(out, view(page, page == s.CurrentPage()))
	}
	return out
}

// ElidedPager produces a compact page list: an outer window of pages
// anchored at both collection bounds, an inner window anchored at the
// current page, and a single gap element wherever the merged windows
// are discontinuous. With inner=1, outer=1 on 10 pages at page 5 the
// page-number shape is 1 gap 4 5 6 gap 10.
//
// Negative window sizes are coerced to 0. The inner window always
// contains at least the current page, so the output is never empty.
func ElidedPager[T, V any](s State[T], inner, outer int, view ViewFunc[V], gap V) []V {
	if inner < 0 {
		inner = 0
	}
	if outer < 0 {
		outer = 0
	}

	current := s.CurrentPage()
	total := s.TotalPages()

	seen := make(map[int]bool)
	var pages []int
	add := func(from, to int) {
		for p := from; p <= to; p++ {
			if !seen[p] {
				seen[p] = true
				pages = append(pages, p)
			}
		}
	}

	if outer > 0 {
		add(1, min(total, outer))
	}
	add(max(1, current-inner), min(total, current+inner))
	if outer > 0 {
		add(max(1, total-outer+1), total)
	}
	sort.Ints(pages)

	// Split into maximal runs of consecutive page numbers, joining
	// adjacent runs with a single gap element.
	out := make([]V, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p != pages[i-1]+1 {
			out = append(out, gap)
		}
		out = append(out, view(p, p == current))
	}
	return out
}
