package model

import "image"

// PreviewKind tags the active variant of a PreviewState
type PreviewKind string

const (
	PreviewNone        PreviewKind = "None"
	PreviewImage       PreviewKind = "ShowingImage"
	PreviewText        PreviewKind = "ShowingText"
	PreviewAudioReady  PreviewKind = "AudioReady"
	PreviewUnsupported PreviewKind = "Unsupported"
)

// String returns the string representation of PreviewKind
func (pk PreviewKind) String() string {
	return string(pk)
}

// AudioTags holds optional metadata read from an audio header
type AudioTags struct {
	Title  string
	Artist string
	Album  string
}

// IsEmpty returns true if no tag was found
func (t AudioTags) IsEmpty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == ""
}

// AudioTarget is what the player may open for the current selection
type AudioTarget struct {
	Path   string
	Volume float64
	Tags   AudioTags
}

// PreviewState is the tagged variant shown for the current selection.
// Only the fields belonging to Kind are set.
type PreviewState struct {
	Kind PreviewKind

	// ShowingImage
	Image       image.Image
	ImageFormat string

	// ShowingText
	Text string

	// AudioReady
	Audio AudioTarget

	// Unsupported
	Message string
}

// NonePreview returns the empty state
func NonePreview() PreviewState {
	return PreviewState{Kind: PreviewNone}
}

// ImagePreview returns a ShowingImage state
func ImagePreview(img image.Image, format string) PreviewState {
	return PreviewState{Kind: PreviewImage, Image: img, ImageFormat: format}
}

// TextPreview returns a ShowingText state
func TextPreview(text string) PreviewState {
	return PreviewState{Kind: PreviewText, Text: text}
}

// AudioPreview returns an AudioReady state
func AudioPreview(target AudioTarget) PreviewState {
	return PreviewState{Kind: PreviewAudioReady, Audio: target}
}

// UnsupportedPreview returns an Unsupported state with a display message
func UnsupportedPreview(message string) PreviewState {
	return PreviewState{Kind: PreviewUnsupported, Message: message}
}

// AudioControlsEnabled returns true iff the play and volume controls apply
func (s PreviewState) AudioControlsEnabled() bool {
	return s.Kind == PreviewAudioReady
}

// Bounds returns the image bounds for ShowingImage and an empty rectangle otherwise
func (s PreviewState) Bounds() image.Rectangle {
	if s.Kind != PreviewImage || s.Image == nil {
		return image.Rectangle{}
	}
	return s.Image.Bounds()
}
