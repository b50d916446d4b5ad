package preview

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/dhowden/tag"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/ytget/cache-browser/internal/model"
)

func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

func loadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(content), nil
}

// loadTags reads title, artist and album; missing or unreadable tags are empty
func loadTags(path string) model.AudioTags {
	f, err := os.Open(path)
	if err != nil {
		return model.AudioTags{}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return model.AudioTags{}
	}
	return model.AudioTags{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
}
