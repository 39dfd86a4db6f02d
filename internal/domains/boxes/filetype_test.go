package boxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileType(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "empty", filename: "", expected: "Unknown"},
		{name: "no extension", filename: "README", expected: "Unknown"},
		{name: "png", filename: "garden.png", expected: "Image (PNG)"},
		{name: "jpeg upper case", filename: "PHOTO.JPG", expected: "Image (JPEG)"},
		{name: "svg", filename: "logo.svg", expected: "Image (SVG+XML)"},
		{name: "html with charset", filename: "index.html", expected: "Text (HTML)"},
		{name: "pdf", filename: "notes.pdf", expected: "PDF"},
		{name: "plain text", filename: "poem.txt", expected: "Text (PLAIN)"},
		{name: "mp3", filename: "bird-song.mp3", expected: "Audio (MPEG)"},
		{name: "zip", filename: "site.zip", expected: "Archive"},
		{name: "mp4", filename: "clip.MP4", expected: "Video (MP4)"},
		{name: "unknown extension", filename: "data.pvfllx", expected: ".PVFLLX"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, FileType(testCase.filename))
		})
	}
}

func Test_describeMimeType(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		mimeType string
		expected string
	}{
		{mimeType: "audio/mpeg", expected: "Audio (MPEG)"},
		{mimeType: "video/mp4", expected: "Video (MP4)"},
		{mimeType: "text/plain", expected: "Text (PLAIN)"},
		{mimeType: "application/pdf", expected: "PDF"},
		{mimeType: "application/zip", expected: "Archive"},
		{mimeType: "application/x-7z-compressed", expected: "Archive"},
		{mimeType: "application/gzip", expected: "Archive"},
		{mimeType: "application/json", expected: "application/json"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.mimeType, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, describeMimeType(testCase.mimeType))
		})
	}
}
