package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = 80
)

// ConvertImageToWebP membaca file upload, resize keep-aspect bila melebihi
// batas, lalu re-encode ke WebP. Mengecilkan ukuran header image sebelum
// naik ke storage.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) (*bytes.Buffer, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > webpMaxWidth || bounds.Dy() > webpMaxHeight {
		img = imaging.Fit(img, webpMaxWidth, webpMaxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf, nil
}
