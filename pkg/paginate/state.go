package paginate

// LengthFunc reports the number of elements in the opaque collection.
// It must be pure and consistent across calls on an unmodified value.
type LengthFunc[T any] func(items T) int

// SliceFunc extracts the half-open range [from, to) from the opaque
// collection. It must clamp to silently when it exceeds the actual
// length, matching the semantics of typical slice operations.
type SliceFunc[T any] func(from, to int, items T) T

// State wraps an opaque collection together with a page size and the
// current page. It never inspects the collection itself: length and
// slice functions are supplied by the caller at each call that needs
// them.
//
// State is a value type. Navigation returns a new State with only the
// current page changed; structural changes (Transform,
// ChangeItemsPerPage) rebuild the State from scratch and re-clamp the
// previous page number into the new range.
type State[T any] struct {
	items   T
	perPage int
	current Counter
}

// New creates a State over items, starting on page 1.
// perPage values below 1 are coerced to 1. An empty collection still
// has exactly one (empty) page, so TotalPages is always at least 1.
func New[T any](length LengthFunc[T], perPage int, items T) State[T] {
	if perPage < 1 {
		perPage = 1
	}
	n := length(items)
	total := 1
	if n > 0 {
		total = (n + perPage - 1) / perPage
	}
	return State[T]{
		items:   items,
		perPage: perPage,
		current: Between(1, total),
	}
}

// GoTo moves to page n, clamped into [1, TotalPages].
func (s State[T]) GoTo(n int) State[T] {
	s.current = s.current.Set(n)
	return s
}

// Next advances one page; a no-op on the last page.
func (s State[T]) Next() State[T] {
	s.current = s.current.Increment(1)
	return s
}

// Prev moves back one page; a no-op on the first page.
func (s State[T]) Prev() State[T] {
	s.current = s.current.Decrement(1)
	return s
}

// First moves to page 1.
func (s State[T]) First() State[T] { return s.GoTo(1) }

// Last moves to the last page.
func (s State[T]) Last() State[T] { return s.GoTo(s.current.Upper()) }

// Transform applies f to the wrapped collection and rebuilds the State
// with the same page size. The previous page number is re-applied, so
// the viewer stays on the same page where still valid and lands on the
// new last page when the collection shrank beneath it.
func (s State[T]) Transform(length LengthFunc[T], f func(T) T) State[T] {
	return Convert(length, f, s)
}

// Convert is Transform across collection types: it maps the wrapped
// collection of a State[A] through f into a State[B], keeping the page
// size and re-clamping the page number.
func Convert[A, B any](length LengthFunc[B], f func(A) B, s State[A]) State[B] {
	next := New(length, s.perPage, f(s.items))
	return next.GoTo(s.current.Value())
}

// ChangeItemsPerPage rebuilds the State with a new page size (coerced
// to >= 1), re-clamping the current page number into the new range.
func (s State[T]) ChangeItemsPerPage(length LengthFunc[T], perPage int) State[T] {
	next := New(length, perPage, s.items)
	return next.GoTo(s.current.Value())
}

// CurrentPage returns the 1-based current page number.
func (s State[T]) CurrentPage() int { return s.current.Value() }

// ItemsPerPage returns the page size.
func (s State[T]) ItemsPerPage() int { return s.perPage }

// TotalPages returns the page count; at least 1 even when empty.
func (s State[T]) TotalPages() int { return s.current.Upper() }

// IsFirst reports whether the current page is page 1.
func (s State[T]) IsFirst() bool { return s.current.Value() == 1 }

// IsLast reports whether the current page is the last page.
func (s State[T]) IsLast() bool { return s.current.Value() == s.current.Upper() }

// Slice returns the current page's window of the collection via the
// caller-supplied slice function. The window is [from, to) with
// from = (page-1)*perPage; clamping to against the actual collection
// length is the slice function's contract, not performed here.
func (s State[T]) Slice(slice SliceFunc[T]) T {
	from := (s.current.Value() - 1) * s.perPage
	return slice(from, from+s.perPage, s.items)
}

// Reduce escapes the wrapper: it applies f to the wrapped collection,
// discarding all pagination context.
func Reduce[T, R any](s State[T], f func(T) R) R {
	return f(s.items)
}
