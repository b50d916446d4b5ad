package model

import "math"

// DefaultVolume is the process-wide initial volume
const DefaultVolume = 0.5

// PlaybackSession describes the current or last audio session
type PlaybackSession struct {
	ID     string
	Path   string
	Volume float64
	Status PlaybackStatus
}

// ClampVolume limits v to [0, 1]
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultVolume
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
