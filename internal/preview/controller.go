package preview

import (
	"fmt"
	"sync"

	"github.com/ytget/cache-browser/internal/model"
)

// Display messages
const (
	NoPreviewMessage    = "No preview available for this file type."
	ImageFailureMessage = "Unable to display image: %v"
	TextFailureMessage  = "Unable to read XML file: %v"
)

// Player is the part of the playback controller a selection touches
type Player interface {
	Stop()
	SetTarget(path string)
	ClearTarget()
	Volume() float64
}

// Controller is the preview state machine
type Controller struct {
	player Player

	mu       sync.Mutex
	state    model.PreviewState
	selected *model.CatalogEntry

	onUpdate func(model.PreviewState) // callback for UI updates
}

// NewController creates a controller in the None state
func NewController(player Player) *Controller {
	return &Controller{
		player: player,
		state:  model.NonePreview(),
	}
}

// SetUpdateCallback sets the callback that receives every new state
func (c *Controller) SetUpdateCallback(callback func(model.PreviewState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Select stops audio, releases the current surface, loads the surface for
// entry and emits it
func (c *Controller) Select(entry model.CatalogEntry) model.PreviewState {
	c.mu.Lock()

	c.releaseLocked()
	state := c.load(entry)
	if state.Kind == model.PreviewAudioReady {
		c.player.SetTarget(entry.Path)
	}

	selected := entry
	c.selected = &selected
	c.state = state
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(state)
	}
	return state
}

// State returns the current state
func (c *Controller) State() model.PreviewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the entry of the last Select
func (c *Controller) Selected() (model.CatalogEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return model.CatalogEntry{}, false
	}
	return *c.selected, true
}

// Close stops audio and returns to None
func (c *Controller) Close() {
	c.mu.Lock()
	c.releaseLocked()
	c.selected = nil
	state := c.state
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}

// releaseLocked stops any audio and drops the surface resource
func (c *Controller) releaseLocked() {
	c.player.Stop()
	c.player.ClearTarget()
	c.state = model.NonePreview()
}

func (c *Controller) load(entry model.CatalogEntry) model.PreviewState {
	switch entry.ContentType {
	case model.ContentTypeImage:
		img, format, err := loadImage(entry.Path)
		if err != nil {
			return model.UnsupportedPreview(fmt.Sprintf(ImageFailureMessage, err))
		}
		return model.ImagePreview(img, format)

	case model.ContentTypeXML:
		text, err := loadText(entry.Path)
		if err != nil {
			return model.TextPreview(fmt.Sprintf(TextFailureMessage, err))
		}
		return model.TextPreview(text)

	case model.ContentTypeAudio:
		return model.AudioPreview(model.AudioTarget{
			Path:   entry.Path,
			Volume: c.player.Volume(),
			Tags:   loadTags(entry.Path),
		})

	default:
		return model.UnsupportedPreview(NoPreviewMessage)
	}
}
