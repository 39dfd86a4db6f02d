package display_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/display"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

func decodePreview(t *testing.T, path string) (width, height int) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)

	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "preview.png")
	p := display.NewPreview(path)

	require.NoError(t, p.Init())
	require.NoError(t, p.ShowMessage("Booting...", 20))
	w, h := decodePreview(t, path)
	assert.Equal(t, display.Width, w)
	assert.Equal(t, display.Height, h)

	message, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, p.ShowPortal("pvfll_002", "htmlpg2025", "192.168.4.1"))
	require.NoError(t, p.ShowBoxes(entities.Boxes{1: entities.NewEmptyBox(1)}, "https://example.com/v/x/y", true))
	boxes, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, message, boxes)

	require.NoError(t, p.Clear())
	require.NoError(t, p.Sleep())
	decodePreview(t, path)
}
