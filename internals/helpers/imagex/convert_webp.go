package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxWidth      = 1600
	maxHeight     = 1600
	webpQuality   = 80
)

// MaxUploadSize batas ukuran file gambar yang diterima controller.
func MaxUploadSize() int64 { return maxUploadSize }

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
}

// ConvertToWebP resize (keep-aspect, fit) lalu encode ke webp.
func ConvertToWebP(src []byte, filename string) ([]byte, error) {
	img, err := DecodeImage(src, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > maxWidth || b.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out.Bytes(), nil
}

/* =======================================================================
   Penyimpanan lokal (uploads/) + nama file unik
======================================================================= */

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), base)
}

// SaveWebP menyimpan hasil konversi ke direktori uploads dan
// mengembalikan path relatif yang disimpan di system_settings.
func SaveWebP(folder, originalFilename string, src []byte) (string, error) {
	data, err := ConvertToWebP(src, originalFilename)
	if err != nil {
		return "", err
	}

	rel := GenerateUniqueFilename(folder, originalFilename)
	full := filepath.Join("uploads", rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori upload: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}
	return "/" + filepath.ToSlash(full), nil
}
