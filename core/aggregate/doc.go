// Package aggregate fans a conversation out to the selected providers
// concurrently and joins the raw results under a single bounded wait.
// Providers that are not selected are short-circuited to a constant
// placeholder payload so the join logic stays uniform; only selected
// providers yield assistant messages.
//
// The join deadline is the one genuinely exceptional path in the system:
// when it expires the whole request fails with [ErrAggregationTimeout] and
// no partial results are handed back, so callers never commit a half
// response to history.
package aggregate
