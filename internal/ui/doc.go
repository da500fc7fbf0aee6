// Package ui provides theme and color support for the fetch simulator's
// console and TUI output. Colors are disabled automatically when stdout is
// not a terminal or NO_COLOR is set.
package ui
