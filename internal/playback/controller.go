package playback

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/cache-browser/internal/model"
)

var (
	// ErrNoAudioSelected is returned by TogglePlay when the preview is not AudioReady
	ErrNoAudioSelected = errors.New("no audio selected")

	// ErrShutdown is returned by TogglePlay after Shutdown
	ErrShutdown = errors.New("player is shut down")
)

// Controller is the Stopped/Playing state machine
type Controller struct {
	engine Engine

	mu       sync.Mutex
	status   model.PlaybackStatus
	session  Session
	current  model.PlaybackSession
	target   string
	volume   float64
	shutdown bool

	onUpdate func(model.PlaybackSession) // callback for UI updates
}

// NewController creates a stopped controller with the given initial volume
func NewController(engine Engine, volume float64) *Controller {
	return &Controller{
		engine: engine,
		status: model.PlaybackStatusStopped,
		volume: model.ClampVolume(volume),
	}
}

// SetUpdateCallback sets the callback invoked after every transition
func (c *Controller) SetUpdateCallback(callback func(model.PlaybackSession)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetTarget records the file the next TogglePlay opens
func (c *Controller) SetTarget(path string) {
	c.mu.Lock()
	c.target = path
	c.mu.Unlock()
}

// ClearTarget forgets the target; TogglePlay then fails with ErrNoAudioSelected
func (c *Controller) ClearTarget() {
	c.mu.Lock()
	c.target = ""
	c.mu.Unlock()
}

// TogglePlay starts the target when stopped and stops it when playing
func (c *Controller) TogglePlay() error {
	c.mu.Lock()

	if c.status.IsPlaying() {
		c.stopLocked()
		c.unlockAndNotify()
		return nil
	}

	if c.shutdown {
		c.mu.Unlock()
		return ErrShutdown
	}
	if c.target == "" {
		c.mu.Unlock()
		return ErrNoAudioSelected
	}

	path := c.target
	session, err := c.engine.Open(path)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("open audio %s: %w", path, err)
	}
	session.SetVolume(c.volume)

	id := generateSessionID()
	if err := session.Play(func() { go c.handleCompletion(id) }); err != nil {
		if closeErr := session.Close(); closeErr != nil {
			log.Printf("playback: close after failed start: %v", closeErr)
		}
		c.mu.Unlock()
		return fmt.Errorf("start audio %s: %w", path, err)
	}

	c.session = session
	c.status = model.PlaybackStatusPlaying
	c.current = model.PlaybackSession{
		ID:     id,
		Path:   path,
		Volume: c.volume,
		Status: model.PlaybackStatusPlaying,
	}
	c.unlockAndNotify()
	return nil
}

// Stop forces Stopped. It is a no-op when nothing is playing.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.stopLocked() {
		c.mu.Unlock()
		return
	}
	c.unlockAndNotify()
}

// Shutdown stops playback and rejects later plays
func (c *Controller) Shutdown() {
	c.mu.Lock()
	c.shutdown = true
	c.target = ""
	if !c.stopLocked() {
		c.mu.Unlock()
		return
	}
	c.unlockAndNotify()
}

// SetVolume clamps v to [0, 1], keeps it for later sessions and applies it
// to the live session if any
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = model.ClampVolume(v)
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	c.session.SetVolume(c.volume)
	c.current.Volume = c.volume
	c.unlockAndNotify()
}

// Volume returns the persisted volume
func (c *Controller) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Status returns the current state
func (c *Controller) Status() model.PlaybackStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Session returns a copy of the current or last session
func (c *Controller) Session() model.PlaybackSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) handleCompletion(id string) {
	c.mu.Lock()
	if c.session == nil || c.current.ID != id {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.unlockAndNotify()
}

// stopLocked releases the session. It reports whether anything changed.
func (c *Controller) stopLocked() bool {
	if c.session == nil {
		c.status = model.PlaybackStatusStopped
		return false
	}

	if err := c.session.Close(); err != nil {
		log.Printf("playback: close session %s: %v", c.current.ID, err)
	}
	c.session = nil
	c.status = model.PlaybackStatusStopped
	c.current.Status = model.PlaybackStatusStopped
	return true
}

// unlockAndNotify releases c.mu and then reports the current session
func (c *Controller) unlockAndNotify() {
	snapshot := c.current
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// generateSessionID returns a time-ordered unique session ID
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("session-%d", time.Now().UnixNano())
	}
	return id.String()
}
