// Package browser is the session object the UI talks to. It owns the current
// catalog and selection, and wires the scanner, preview controller, playback
// controller and optional directory watcher together.
package browser
