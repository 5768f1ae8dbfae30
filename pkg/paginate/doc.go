// Package paginate provides pagination bookkeeping for an arbitrary
// ordered collection without owning or restructuring that collection.
//
// The collection type is opaque to the package: callers supply a length
// function and a slice function, so the same State works over a slice,
// a lazily produced sequence, or a custom container. On top of the
// state sit two query functions:
//   - Pager: every page number in order, mapped through a view function
//   - ElidedPager: a compact, gapped page list (e.g. 1 … 4 5 6 … 10)
//     built from an outer window anchored at the collection bounds and
//     an inner window anchored at the current page
//
// Every operation is total: out-of-range page numbers, page sizes below
// one, and negative window sizes are silently normalized rather than
// rejected. Pagination controls must stay usable under arbitrary input
// (a typed-in page number, for instance) without an error path at every
// call site.
//
// All values are immutable; mutating operations return a new value.
// Independent copies of a State may be used concurrently without
// coordination.
package paginate
