package tui

import (
	"strconv"
	"strings"

	"github.com/rshade/pageflip/pkg/paginate"
)

// Elision markers per output mode.
const (
	plainGap  = "..."
	styledGap = "…"
)

// PageBar renders an elided page bar for s, e.g. "1 … 4 5 6 … 10" with
// the current page highlighted. In plain mode the current page is
// bracketed instead: "1 ... 4 [5] 6 ... 10".
func PageBar[T any](s paginate.State[T], inner, outer int, mode OutputMode) string {
	if mode == OutputModePlain {
		entries := paginate.ElidedPager(s, inner, outer, func(page int, current bool) string {
			if current {
				return "[" + strconv.Itoa(page) + "]"
			}
			return strconv.Itoa(page)
		}, plainGap)
		return strings.Join(entries, " ")
	}

	entries := paginate.ElidedPager(s, inner, outer, func(page int, current bool) string {
		if current {
			return CurrentPageStyle.Render(strconv.Itoa(page))
		}
		return PageStyle.Render(strconv.Itoa(page))
	}, GapStyle.Render(styledGap))
	return strings.Join(entries, " ")
}

// FullPageBar renders every page number without elision, bracketing or
// highlighting the current page. Useful for small page counts.
func FullPageBar[T any](s paginate.State[T], mode OutputMode) string {
	if mode == OutputModePlain {
		return strings.Join(paginate.Pager(s, func(page int, current bool) string {
			if current {
				return "[" + strconv.Itoa(page) + "]"
			}
			return strconv.Itoa(page)
		}), " ")
	}

	return strings.Join(paginate.Pager(s, func(page int, current bool) string {
		if current {
			return CurrentPageStyle.Render(strconv.Itoa(page))
		}
		return PageStyle.Render(strconv.Itoa(page))
	}), " ")
}
