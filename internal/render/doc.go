// Package render turns lists of API resources into paged text tables.
//
// The pager accumulates rows until a terminal page is full, prompts the
// user to continue, and rebuilds the table for the next page. Whenever a
// flush would exceed the terminal width despite per-column word wrapping,
// it falls back once to an unwrapped rendering of the same rows.
package render
