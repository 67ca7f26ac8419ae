// Package chat is the facade the HTTP layer talks to. It composes the
// conversation store, the provider aggregator, and the markdown renderer
// into the session-scoped operations the UI needs: asking a query, listing
// and switching threads, and preparing messages for display.
package chat
