package display_test

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/display"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "0 B"},
		{size: -5, want: "0 B"},
		{size: 512, want: "512 B"},
		{size: 1023, want: "1023 B"},
		{size: 1024, want: "1.0 KB"},
		{size: 1536, want: "1.5 KB"},
		{size: 5 * 1024 * 1024, want: "5.0 MB"},
		{size: 3 * 1024 * 1024 * 1024, want: "3.0 GB"},
		{size: 2048 * 1024 * 1024 * 1024, want: "2048.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, display.FormatSize(tt.size))
		})
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "index.html", display.TruncateName("index.html"))
	assert.Equal(t, "exactly-18-chars.x", display.TruncateName("exactly-18-chars.x"))
	assert.Equal(t, "a-very-long-fil...", display.TruncateName("a-very-long-file-name.html"))
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name string
		box  entities.Box
		want [][2]string
	}{
		{
			name: "error is cut",
			box:  entities.NewErrorBox(1, errors.New("Get \"http://api/boxes/1/files\": timeout")),
			want: [][2]string{{"ERROR", ""}, {"", "Get \"http://api/boxe"}},
		},
		{
			name: "empty",
			box:  entities.NewEmptyBox(2),
			want: [][2]string{{"Empty", ""}},
		},
		{
			name: "file",
			box: entities.Box{
				Number: 3,
				Name:   "pollinator-garden-notes.txt",
				Type:   "Text (PLAIN)",
				Size:   2048,
			},
			want: [][2]string{
				{"File: ", "pollinator-gard..."},
				{"Type: ", "Text (PLAIN)"},
				{"Size: ", "2.0 KB"},
			},
		},
		{
			name: "file without name",
			box:  entities.Box{Number: 4},
			want: [][2]string{
				{"File: ", "?"},
				{"Type: ", ""},
				{"Size: ", "0 B"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.StatusLines(tt.box))
		})
	}
}

func countInk(img *image.Paletted, r image.Rectangle) (n int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.ColorIndexAt(x, y) == 1 {
				n++
			}
		}
	}

	return n
}

func TestRenderBoxes(t *testing.T) {
	boxes := entities.Boxes{
		1: {Number: 1, Name: "a.html", Type: "Text (HTML)", Size: 10, Source: &entities.BoxSource{Name: "Central Library", City: "Portland"}},
		2: entities.NewEmptyBox(2),
		3: entities.NewErrorBox(3, errors.New("boom")),
	}

	img, err := display.RenderBoxes(boxes, "https://htmlpg.andrew-boylan.com/v/pvfll-002/abc")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, display.Width, display.Height), img.Bounds())

	// dark mode: outer margin is ink, box borders are paper
	assert.Equal(t, uint8(1), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(display.Width-1, display.Height-1))
	assert.Equal(t, uint8(0), img.ColorIndexAt(8, 8))

	// QR area has both colors
	qrArea := image.Rect(8, 222, 78, 292)
	inked := countInk(img, qrArea)
	assert.Positive(t, inked)
	assert.Less(t, inked, qrArea.Dx()*qrArea.Dy())
}

func TestRenderBoxesWithoutQR(t *testing.T) {
	img, err := display.RenderBoxes(entities.Boxes{}, "")
	require.NoError(t, err)

	qrArea := image.Rect(8, 222, 78, 292)
	assert.Equal(t, qrArea.Dx()*qrArea.Dy(), countInk(img, qrArea))
}

func TestRenderMessage(t *testing.T) {
	img := display.RenderMessage("Booting...", 20)

	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
	assert.Positive(t, countInk(img, image.Rect(100, 130, 300, 170)))
	assert.Zero(t, countInk(img, image.Rect(0, 0, display.Width, 100)))
}

func TestRenderPortal(t *testing.T) {
	img := display.RenderPortal("pvfll_002", "htmlpg2025", "192.168.4.1")

	assert.Equal(t, uint8(1), img.ColorIndexAt(0, 0))
	full := display.Width * display.Height
	assert.Less(t, countInk(img, img.Bounds()), full)
}

func TestRenderBlank(t *testing.T) {
	img := display.RenderBlank()
	assert.Zero(t, countInk(img, img.Bounds()))
}
