package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	return img
}

func encode(t *testing.T, enc func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, testImage()))
	return buf.Bytes()
}

func TestBuildAttachmentFilesBMPGetsPreview(t *testing.T) {
	data := encode(t, bmp.Encode)

	files, warn := BuildAttachmentFiles(data, "cover.bmp", "image/bmp")
	require.Len(t, files, 2)
	assert.Empty(t, warn)

	assert.Equal(t, "cover.png", files[0].Name)
	assert.Equal(t, "image/png", files[0].ContentType)
	_, err := png.Decode(files[0].Reader)
	require.NoError(t, err, "synthesized preview must be a valid PNG")

	assert.Equal(t, "original cover - cover.bmp", files[1].Name)
	assert.Equal(t, "image/bmp", files[1].ContentType)
	original, err := io.ReadAll(files[1].Reader)
	require.NoError(t, err)
	assert.Equal(t, data, original, "original bytes must survive unchanged")
}

func TestBuildAttachmentFilesJPEGPassesThrough(t *testing.T) {
	data := encode(t, func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, nil)
	})

	files, warn := BuildAttachmentFiles(data, "cover.jpg", "image/jpeg")
	require.Len(t, files, 1)
	assert.Empty(t, warn)
	assert.Equal(t, "cover.jpg", files[0].Name)

	got, err := io.ReadAll(files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestBuildAttachmentFilesPNGPassesThrough(t *testing.T) {
	data := encode(t, png.Encode)

	files, warn := BuildAttachmentFiles(data, "cover.png", "image/png")
	require.Len(t, files, 1)
	assert.Empty(t, warn)
	assert.Equal(t, "cover.png", files[0].Name)
}

func TestBuildAttachmentFilesUndecodableStillAttached(t *testing.T) {
	data := []byte("definitely not an image")

	files, warn := BuildAttachmentFiles(data, "cover.bin", "application/octet-stream")
	require.Len(t, files, 1)
	assert.Equal(t, noPreviewWarning, warn)
	assert.Equal(t, "cover.bin", files[0].Name)

	got, err := io.ReadAll(files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

// Every inline-rendered format Discord supports must be recognized by the
// decoder, or a valid upload gets a spurious no-preview warning. A truncated
// container is enough to exercise format sniffing: an unregistered format
// fails with image.ErrFormat, a registered one fails further in.
func TestInlineFormatsAreRegistered(t *testing.T) {
	headers := map[string][]byte{
		"webp": []byte("RIFF\x24\x00\x00\x00WEBPVP8 "),
		"gif":  []byte("GIF89a"),
		"jpeg": {0xff, 0xd8, 0xff, 0xe0},
	}

	for format, header := range headers {
		t.Run(format, func(t *testing.T) {
			_, _, err := image.Decode(bytes.NewReader(header))
			require.Error(t, err)
			assert.NotErrorIs(t, err, image.ErrFormat, "decoder for %s must be registered", format)
		})
	}
}

func TestPreviewFilename(t *testing.T) {
	assert.Equal(t, "cover.png", previewFilename("cover.bmp"))
	assert.Equal(t, "archive.tar.png", previewFilename("archive.tar.tiff"))
	assert.Equal(t, "noext.png", previewFilename("noext"))
	assert.Equal(t, "preview.png", previewFilename(".bmp"))
}
