package playback

// Session is one opened audio handle
type Session interface {
	// Play starts output. onDone is invoked once when the media ends
	// naturally, never after Close.
	Play(onDone func()) error
	SetVolume(v float64)
	Close() error
}

// Engine opens audio sessions
type Engine interface {
	Open(path string) (Session, error)
}
