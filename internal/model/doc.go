package model

// Package model defines the domain data shared across the app: content types
// and signature formats, catalog entries produced by a directory scan, the
// preview state shown for a selection, and playback status. Structures are
// plain values so the UI can bind to them and every state change is explicit.
