package model

import "testing"

func TestFormat_ContentType(t *testing.T) {
	tests := []struct {
		format   Format
		expected ContentType
	}{
		{FormatJPEG, ContentTypeImage},
		{FormatPNG, ContentTypeImage},
		{FormatGIF, ContentTypeImage},
		{FormatBMP, ContentTypeImage},
		{FormatTIFF, ContentTypeImage},
		{Format3DS, ContentTypeModel3DS},
		{FormatTara, ContentTypeContainerArchive},
		{FormatMP3, ContentTypeAudio},
		{FormatWAV, ContentTypeAudio},
		{FormatOGG, ContentTypeAudio},
		{FormatFLAC, ContentTypeAudio},
		{FormatAAC, ContentTypeAudio},
		{FormatWMA, ContentTypeAudio},
		{FormatAudio, ContentTypeAudio},
		{FormatXML, ContentTypeXML},
		{FormatUnknown, ContentTypeUnknown},
		{Format("bogus"), ContentTypeUnknown},
	}

	for _, test := range tests {
		result := test.format.ContentType()
		if result != test.expected {
			t.Errorf("Format(%s).ContentType() = %s, expected %s", test.format, result, test.expected)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatJPEG, ".jpg"},
		{FormatPNG, ".png"},
		{FormatGIF, ".gif"},
		{FormatBMP, ".bmp"},
		{FormatTIFF, ".tiff"},
		{FormatMP3, ".mp3"},
		{FormatWAV, ".wav"},
		{FormatOGG, ".ogg"},
		{FormatFLAC, ".flac"},
		{FormatAAC, ".aac"},
		{FormatWMA, ".wma"},
		{FormatXML, ".xml"},
		{Format3DS, ".3ds"},
		{FormatTara, ".tara"},
		{FormatAudio, ".dat"},
		{FormatUnknown, ".dat"},
	}

	for _, test := range tests {
		result := test.format.Extension()
		if result != test.expected {
			t.Errorf("Format(%s).Extension() = %s, expected %s", test.format, result, test.expected)
		}
	}
}

func TestAllFormats_Mapped(t *testing.T) {
	for _, f := range AllFormats {
		if f.ContentType() == "" {
			t.Errorf("Format(%s) has no content type", f)
		}
		if f.Extension() == "" {
			t.Errorf("Format(%s) has no extension", f)
		}
	}
}
