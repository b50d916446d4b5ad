// Package classify decides the content type of a cache file from its first
// bytes. Cheap signature rules run first in a fixed order, then a textual XML
// probe, and only when both fail an optional Prober attempts a real audio
// decode. Classification never returns an error: anything it cannot prove
// becomes FormatUnknown.
package classify
