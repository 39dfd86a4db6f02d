package display

import (
	"fmt"
	"image"
	"strconv"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

const (
	margin         = 8
	qrSize         = 70
	qrTextGap      = 9
	titleTopOffset = 1
	titleSubGap    = 4

	borderWidth  = 2
	boxPadX      = 7
	boxPadY      = 4
	boxTextPadX  = 8
	boxLineH     = 14
	numberScale  = 3
	sourceGap    = 6
	sourceOffset = 5

	maxNameLen   = 18
	cutNameLen   = 15
	maxErrorLen  = 20
	blankLineH   = 8
	textLineGapH = 4
)

const (
	title    = "HTML Pollinator Garden"
	subtitle = "Take a file. Leave a file. "
)

type statusLine struct {
	label string
	value string
}

type portalLine struct {
	text string
	size int
	bold bool
}

// RenderBoxes draws the 2x2 box grid with the QR header below, inverted.
func RenderBoxes(boxes entities.Boxes, qrURL string) (*image.Paletted, error) {
	c := newCanvas()

	var (
		bottomStart = Height - margin - qrSize
		boxW        = (Width - 3*margin) / 2
		boxH        = (bottomStart - 3*margin) / 2
	)

	for number := 1; number <= constants.BoxCount; number++ {
		col, row := (number-1)%2, (number-1)/2
		x := margin + col*(boxW+margin)
		y := margin + row*(boxH+margin)
		c.box(x, y, boxW, boxH, number, boxes.Get(number))
	}

	if qrURL != "" {
		if err := c.qr(margin, bottomStart, qrSize, qrURL); err != nil {
			return nil, fmt.Errorf("RenderBoxes: %w", err)
		}
	}

	// title is stretched to half of the QR height
	var (
		textX      = margin + qrSize + qrTextGap
		stretchH   = qrSize / 2
		titleWidth = min(textWidth(title, 2), Width-margin-textX)
	)
	c.stretchedText(textX, bottomStart+titleTopOffset, title, titleWidth, stretchH)
	c.text(textX, bottomStart+stretchH+titleSubGap, subtitle, scaleFor(16))

	c.invert()
	return c.img, nil
}

// RenderMessage draws a single centered line.
func RenderMessage(message string, size int) *image.Paletted {
	c := newCanvas()

	scale := scaleFor(size)
	x := (Width - textWidth(message, scale)) / 2
	y := (Height - textHeight(scale)) / 2
	c.boldText(x, y, message, scale)

	return c.img
}

// RenderPortal draws the captive portal instructions, inverted.
func RenderPortal(ssid, psk, address string) *image.Paletted {
	c := newCanvas()

	lines := portalLines(ssid, psk, address)
	heights := make([]int, len(lines))
	total := 0
	for i, line := range lines {
		heights[i] = blankLineH
		if line.text != "" {
			heights[i] = textHeight(scaleFor(line.size)) + textLineGapH
		}
		total += heights[i]
	}

	y := (Height - total) / 2
	for i, line := range lines {
		if line.text != "" {
			scale := scaleFor(line.size)
			x := (Width - textWidth(line.text, scale)) / 2
			if line.bold {
				c.boldText(x, y, line.text, scale)
			} else {
				c.text(x, y, line.text, scale)
			}
		}
		y += heights[i]
	}

	c.invert()
	return c.img
}

// RenderBlank returns an all paper frame.
func RenderBlank() *image.Paletted {
	return newCanvas().img
}

func portalLines(ssid, psk, address string) []portalLine {
	return []portalLine{
		{text: "No WiFi", size: 22, bold: true},
		{size: 14},
		{text: "To configure, connect to", size: 14},
		{text: "this device's WiFi:", size: 14},
		{size: 14},
		{text: fmt.Sprintf("Network: %q", ssid), size: 16, bold: true},
		{text: "Password: " + psk, size: 16, bold: true},
		{size: 14},
		{text: "A setup page will appear,", size: 13},
		{text: "or go to " + address, size: 13},
	}
}

func (c *canvas) box(x, y, w, h, number int, box entities.Box) {
	c.rect(x, y, x+w, y+h, borderWidth)

	label := strconv.Itoa(number)
	c.boldText(x+boxPadX, y+boxPadY, label, numberScale)

	if box.HasFile() && box.Source != nil && box.Source.Name != "" {
		var (
			sourceX   = x + boxPadX + textWidth(label, numberScale) + sourceGap
			sourceY   = y + boxPadY + sourceOffset
			fromWidth = textWidth("from ", 1)
			maxChars  = (x + w - borderWidth - sourceX - fromWidth) / textWidth(" ", 1)
		)

		c.text(sourceX, sourceY, "from", 1)
		c.text(sourceX+fromWidth, sourceY, cut(box.Source.Name, maxChars), 1)
		if box.Source.City != "" {
			c.text(sourceX+fromWidth, sourceY+textHeight(1), cut(box.Source.City, maxChars), 1)
		}
	}

	textY := y + boxPadY + textHeight(numberScale) + 8
	for i, line := range statusLines(box) {
		lineX, lineY := x+boxTextPadX, textY+boxLineH*i
		c.boldText(lineX, lineY, line.label, 1)
		c.text(lineX+textWidth(line.label, 1), lineY, line.value, 1)
	}
}

func statusLines(box entities.Box) []statusLine {
	switch {
	case box.Error != "":
		return []statusLine{
			{label: "ERROR"},
			{value: cut(box.Error, maxErrorLen)},
		}
	case box.Empty:
		return []statusLine{
			{label: "Empty"},
		}
	default:
		name := box.Name
		if name == "" {
			name = "?"
		}

		return []statusLine{
			{label: "File: ", value: truncateName(name)},
			{label: "Type: ", value: box.Type},
			{label: "Size: ", value: formatSize(box.Size)},
		}
	}
}

// truncateName shortens long file names to fit a box.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameLen {
		return string(runes[:cutNameLen]) + "..."
	}

	return name
}

func cut(s string, n int) string {
	runes := []rune(s)
	if n < 0 {
		n = 0
	}
	if len(runes) > n {
		return string(runes[:n])
	}

	return s
}

func formatSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", int64(value), units[i])
	}

	return fmt.Sprintf("%.1f %s", value, units[i])
}
