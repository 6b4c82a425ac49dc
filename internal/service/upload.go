// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
)

// MaxUploadSize is the largest accepted image payload (5 MiB).
const MaxUploadSize = 5 << 20

// jpegQuality is used when a JPEG has to be re-encoded after an EXIF
// orientation fix.
const jpegQuality = 95

// allowedExts maps accepted filename extensions to their canonical
// MIME type. Only JPEG and PNG images are stored.
var allowedExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadService stores validated image uploads on disk and returns the
// public path they will be served from.
type UploadService struct {
	dir string
}

// NewUploadService creates the uploads directory if needed.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save validates and stores one uploaded image. The file must be a JPEG
// or PNG no larger than MaxUploadSize, checked by extension, declared
// MIME type, sniffed magic bytes and a full decode. JPEGs carrying an
// EXIF orientation are rotated upright before storage. Returns the
// public URL path of the stored file.
func (s *UploadService) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrUploadRejected, MaxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	wantType, ok := allowedExts[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q not allowed", ErrUploadRejected, ext)
	}
	if declared := header.Header.Get("Content-Type"); declared != "" && declared != wantType {
		return "", fmt.Errorf("%w: content type %q does not match extension %q", ErrUploadRejected, declared, ext)
	}

	// Size in the header is client-supplied, so cap the read as well.
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrUploadRejected, MaxUploadSize)
	}

	if sniffed := sniffImageType(data); sniffed != wantType {
		return "", fmt.Errorf("%w: content is not a %s image", ErrUploadRejected, wantType)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: undecodable image: %v", ErrUploadRejected, err)
	}

	if wantType == "image/jpeg" {
		if orientation := readExifOrientation(bytes.NewReader(data)); orientation > 1 {
			data, err = encodeJPEG(applyOrientation(img, orientation))
			if err != nil {
				return "", fmt.Errorf("re-encode oriented jpeg: %w", err)
			}
		}
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// sniffImageType detects the MIME type from the file's magic bytes.
func sniffImageType(data []byte) string {
	switch contentType := http.DetectContentType(data); contentType {
	case "image/jpeg", "image/png":
		return contentType
	default:
		return ""
	}
}

// readExifOrientation returns the EXIF orientation tag, or 1 (normal)
// when the image carries no usable EXIF data.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation rotates or flips an image according to its EXIF
// orientation value so it renders upright everywhere.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
