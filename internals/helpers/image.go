package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxImageWidth = 1024

// ConvertImageToWebP decodes an uploaded image, downscales anything wider than
// maxImageWidth and re-encodes it as lossy WebP.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename builds a collision-free name for a stored upload.
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
