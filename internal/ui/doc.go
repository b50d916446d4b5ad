package ui

// Package ui contains the Fyne desktop interface of the cache browser.
// It shows the catalog of a cache directory with decoded names, previews the
// selected entry and drives playback, copy-out and reveal through browser.Browser.
// All UI strings are localized via Localization.
