// Package render converts assistant markdown replies into HTML for display.
// It is a deliberately small line-oriented scanner, not a full markdown
// implementation: headings, bold emphasis, flat lists, and pipe tables are
// the constructs models actually emit in chat replies. The scanner tracks
// one of three states (none, list, table) and closes any open construct
// when the line shape changes.
//
// Render is total. Malformed markdown still produces HTML; content is
// escaped before any tags are added.
package render
