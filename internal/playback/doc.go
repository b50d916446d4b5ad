// Package playback owns the single open audio handle of the app.
//
// Every transition, whether it comes from the UI or from the audio engine's
// completion goroutine, runs under one mutex. Completions carry the ID of the
// session that produced them, so a completion that arrives after the user
// already stopped (or started something else) is dropped and the handle is
// closed exactly once.
package playback
