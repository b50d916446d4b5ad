package audio

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/ytget/cache-browser/internal/classify"
)

// Prober names accepted by NewProber
const (
	ProberDecoder = "decoder"
	ProberFFprobe = "ffprobe"
	ProberNone    = "none"
)

// probeSamples is how many frames the decoder prober pulls
const probeSamples = 512

// DecoderProber accepts a file when a beep decoder opens it and yields samples
type DecoderProber struct{}

// Probe implements classify.Prober
func (DecoderProber) Probe(path string) bool {
	stream, _, err := Decode(path)
	if err != nil {
		return false
	}
	defer stream.Close()

	buf := make([][2]float64, probeSamples)
	n, ok := stream.Stream(buf)
	if stream.Err() != nil {
		return false
	}
	return ok || n > 0
}

// FFprobe settings
const (
	FFprobeCommand = "ffprobe"
	FFprobeTimeout = 10 * time.Second
)

// FFprobeProber accepts a file when ffprobe reports an audio stream
type FFprobeProber struct {
	Command string
	Timeout time.Duration
}

// Probe implements classify.Prober
func (p FFprobeProber) Probe(path string) bool {
	command := p.Command
	if command == "" {
		command = FFprobeCommand
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = FFprobeTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_type",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return false
	}
	return strings.TrimSpace(out.String()) == "audio"
}

// NewProber returns the prober for name, or nil for "none"
func NewProber(name string) (classify.Prober, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProberDecoder:
		return DecoderProber{}, nil
	case ProberFFprobe:
		if _, err := exec.LookPath(FFprobeCommand); err != nil {
			log.Printf("ffprobe not found, falling back to decoder prober: %v", err)
			return DecoderProber{}, nil
		}
		return FFprobeProber{}, nil
	case ProberNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown prober %q", name)
	}
}
