// Package tui provides the Bubble Tea front end for pageflip: an
// interactive browser over a paginated collection, the elided page-bar
// renderer shared with the CLI, and terminal output-mode detection.
package tui
