// Package audio plays cache files through beep and provides the fallback
// probers used by classification.
package audio
