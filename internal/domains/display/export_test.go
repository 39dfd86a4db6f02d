package display

import (
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

func FormatSize(size int64) string {
	return formatSize(size)
}

func TruncateName(name string) string {
	return truncateName(name)
}

func StatusLines(box entities.Box) [][2]string {
	lines := statusLines(box)
	result := make([][2]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, [2]string{line.label, line.value})
	}

	return result
}
