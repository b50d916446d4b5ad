package model

// Format is the concrete signature that matched a file header.
// Several formats share a ContentType.
type Format string

const (
	FormatJPEG  Format = "jpeg"
	FormatPNG   Format = "png"
	FormatGIF   Format = "gif"
	FormatBMP   Format = "bmp"
	FormatTIFF  Format = "tiff"
	Format3DS   Format = "3ds"
	FormatTara  Format = "tara"
	FormatMP3   Format = "mp3"
	FormatWAV   Format = "wav"
	FormatOGG   Format = "ogg"
	FormatFLAC  Format = "flac"
	FormatAAC   Format = "aac"
	FormatWMA   Format = "wma"
	FormatXML   Format = "xml"
	FormatAudio Format = "audio" // accepted by the fallback probe only

	FormatUnknown Format = "unknown"
)

// AllFormats lists every format in classification order
var AllFormats = []Format{
	FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF,
	Format3DS, FormatTara,
	FormatMP3, FormatWAV, FormatOGG, FormatFLAC, FormatAAC, FormatWMA,
	FormatXML, FormatAudio, FormatUnknown,
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// ContentType maps the format to its content type
func (f Format) ContentType() ContentType {
	switch f {
	case FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF:
		return ContentTypeImage
	case Format3DS:
		return ContentTypeModel3DS
	case FormatTara:
		return ContentTypeContainerArchive
	case FormatMP3, FormatWAV, FormatOGG, FormatFLAC, FormatAAC, FormatWMA, FormatAudio:
		return ContentTypeAudio
	case FormatXML:
		return ContentTypeXML
	default:
		return ContentTypeUnknown
	}
}

// Extension returns the file extension used when copying the file out
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG, FormatGIF, FormatBMP, FormatTIFF,
		FormatMP3, FormatWAV, FormatOGG, FormatFLAC, FormatAAC, FormatWMA,
		FormatXML, Format3DS, FormatTara:
		return "." + string(f)
	default:
		return ".dat"
	}
}
