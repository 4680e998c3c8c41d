package upload

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bwmarrin/discordgo"
)

// previewNeededFormats are decodable formats Discord does not render inline;
// posts with these get a synthesized PNG preview prepended.
var previewNeededFormats = map[string]bool{
	"bmp":  true,
	"tiff": true,
}

const originalCoverPrefix = "original cover - "

const (
	noPreviewWarning     = "The attached file could not be decoded as an image, a preview may not render."
	previewFailedWarning = "Could not generate a preview for the attached image, only the original file was posted."
)

// BuildAttachmentFiles turns downloaded attachment bytes into the files to
// publish. The original bytes always survive; decoding and preview
// generation are best-effort and degrade to a warning.
func BuildAttachmentFiles(data []byte, filename, contentType string) ([]*discordgo.File, string) {
	original := &discordgo.File{
		Name:        filename,
		ContentType: contentType,
		Reader:      bytes.NewReader(data),
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return []*discordgo.File{original}, noPreviewWarning
	}
	if !previewNeededFormats[format] {
		return []*discordgo.File{original}, ""
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("Error encoding %s preview for %s: %v", format, filename, err)
		return []*discordgo.File{original}, previewFailedWarning
	}

	preview := &discordgo.File{
		Name:        previewFilename(filename),
		ContentType: "image/png",
		Reader:      &buf,
	}
	original.Name = originalCoverPrefix + filename
	return []*discordgo.File{preview, original}, ""
}

func previewFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "preview"
	}
	return base + ".png"
}
