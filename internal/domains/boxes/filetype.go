package boxes

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	unknownFileType = "Unknown"
)

// common upload types missing from the builtin table on hosts without /etc/mime.types
var extraMimeTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".mp3":  "audio/mpeg",
	".wav":  "audio/x-wav",
	".ogg":  "audio/ogg",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".bmp":  "image/bmp",
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".7z":   "application/x-7z-compressed",
}

func init() {
	for ext, mimeType := range extraMimeTypes {
		if err := mime.AddExtensionType(ext, mimeType); err != nil {
			log.Fatal().Err(err).Str("ext", ext).Msg("init: register mime type")
		}
	}
}

// FileType returns human readable file type by file name extension.
func FileType(name string) string {
	if lo.IsEmpty(name) {
		return unknownFileType
	}

	if mimeType := mime.TypeByExtension(filepath.Ext(name)); lo.IsNotEmpty(mimeType) {
		if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
			mimeType = mediaType
		}

		return describeMimeType(mimeType)
	}

	if !strings.Contains(name, ".") {
		return unknownFileType
	}

	ext := name[strings.LastIndex(name, ".")+1:]
	return "." + strings.ToUpper(ext)
}

func describeMimeType(mimeType string) string {
	group, subtype, _ := strings.Cut(mimeType, "/")
	subtype = strings.ToUpper(subtype)

	switch {
	case group == "image":
		return "Image (" + subtype + ")"
	case group == "text":
		return "Text (" + subtype + ")"
	case group == "audio":
		return "Audio (" + subtype + ")"
	case group == "video":
		return "Video (" + subtype + ")"
	case strings.Contains(mimeType, "pdf"):
		return "PDF"
	case strings.Contains(mimeType, "zip"), strings.Contains(mimeType, "compressed"):
		return "Archive"
	default:
		return mimeType
	}
}
