package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ytget/cache-browser/internal/classify"
	"github.com/ytget/cache-browser/internal/model"
)

// ErrUnsupportedFormat is returned for audio formats beep cannot decode
var ErrUnsupportedFormat = errors.New("unsupported audio format")

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[model.Format]decodeFunc{
	model.FormatMP3:  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	model.FormatWAV:  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
	model.FormatOGG:  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	model.FormatFLAC: func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) },
}

// trialOrder is used when the header does not name a decodable format
var trialOrder = []model.Format{model.FormatMP3, model.FormatWAV, model.FormatOGG, model.FormatFLAC}

// Decode opens path with the decoder matching its header, or tries every
// decoder in turn when the header is not recognized. The returned streamer
// owns the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	header, err := classify.ReadHeader(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	format := classify.Classify(header)
	if decode, ok := decoders[format]; ok {
		return decodeWith(path, format, decode)
	}
	if format.ContentType() == model.ContentTypeAudio && format != model.FormatAudio {
		return nil, beep.Format{}, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}

	var errs []error
	for _, f := range trialOrder {
		stream, sf, err := decodeWith(path, f, decoders[f])
		if err == nil {
			return stream, sf, nil
		}
		errs = append(errs, err)
	}
	return nil, beep.Format{}, fmt.Errorf("no decoder accepted %s: %w", path, errors.Join(errs...))
}

func decodeWith(path string, format model.Format, decode decodeFunc) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open: %w", err)
	}

	stream, sf, err := decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return stream, sf, nil
}
