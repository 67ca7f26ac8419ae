// Package conversation owns per-session chat state: a set of threads in
// insertion order, each an append-only message sequence, plus the pointer
// to the active thread. The Store maps opaque session ids to their State;
// it is the in-process substrate behind the cookie-based session identity
// managed by the HTTP layer.
//
// Threads are never reordered or truncated, only appended to. Accessors
// hand out copies so callers cannot mutate stored history.
package conversation
