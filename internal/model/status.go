package model

// ContentType is the coarse kind of a cache file, decided once from its header
type ContentType string

const (
	ContentTypeImage            ContentType = "Image"
	ContentTypeXML              ContentType = "Xml"
	ContentTypeModel3DS         ContentType = "Model3ds"
	ContentTypeContainerArchive ContentType = "ContainerArchive"
	ContentTypeAudio            ContentType = "Audio"
	ContentTypeUnknown          ContentType = "Unknown"
)

// String returns the string representation of ContentType
func (ct ContentType) String() string {
	return string(ct)
}

// IsKnown returns true if the file should be listed in a catalog
func (ct ContentType) IsKnown() bool {
	return ct != ContentTypeUnknown && ct != ""
}

// PlaybackStatus represents the state of the audio player
type PlaybackStatus string

const (
	// PlaybackStatusStopped means no audio handle is open
	PlaybackStatusStopped PlaybackStatus = "Stopped"

	// PlaybackStatusPlaying means an audio handle is open and producing sound
	PlaybackStatusPlaying PlaybackStatus = "Playing"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsPlaying returns true while an audio session is active
func (ps PlaybackStatus) IsPlaying() bool {
	return ps == PlaybackStatusPlaying
}
