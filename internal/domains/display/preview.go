package display

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/pkg/fsutil"
)

// Preview renders frames to a PNG file instead of a panel.
type Preview struct {
	path string
}

func NewPreview(path string) *Preview {
	return &Preview{
		path: path,
	}
}

func (p *Preview) Init() error {
	log.Info().
		Str("path", p.path).
		Msg("Init: panel driver not available, running in image-only mode")
	return nil
}

func (p *Preview) ShowMessage(message string, size int) (err error) {
	if err = p.save(RenderMessage(message, size)); err != nil {
		return fmt.Errorf("ShowMessage: %w", err)
	}

	log.Info().
		Str("message", message).
		Msg("ShowMessage: preview saved")
	return nil
}

func (p *Preview) ShowPortal(ssid, psk, address string) (err error) {
	if err = p.save(RenderPortal(ssid, psk, address)); err != nil {
		return fmt.Errorf("ShowPortal: %w", err)
	}

	log.Info().Msg("ShowPortal: preview saved")
	return nil
}

func (p *Preview) ShowBoxes(boxes entities.Boxes, qrURL string, forceFull bool) (err error) {
	img, err := RenderBoxes(boxes, qrURL)
	if err != nil {
		return fmt.Errorf("ShowBoxes: %w", err)
	}

	if err = p.save(img); err != nil {
		return fmt.Errorf("ShowBoxes: %w", err)
	}

	log.Info().
		Bool("full", forceFull).
		Str("qrUrl", qrURL).
		Msg("ShowBoxes: preview saved")
	return nil
}

func (p *Preview) Clear() (err error) {
	if err = p.save(RenderBlank()); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}

	return nil
}

func (p *Preview) Sleep() error {
	log.Debug().Msg("Sleep: nothing to power down")
	return nil
}

func (p *Preview) save(img image.Image) (err error) {
	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if _, err = fsutil.WriteIfChanged(p.path, buf.Bytes(), constants.ConfPerm); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}
