// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// uploadPart builds a multipart form with one "image" field and returns
// the parsed file the way a handler would receive it.
func uploadPart(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="image"; filename="` + filename + `"`}
	if contentType != "" {
		h["Content-Type"] = []string{contentType}
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	return file, header
}

func TestSaveAcceptsPNG(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	file, header := uploadPart(t, "shot.png", "image/png", pngBytes(t))
	path, err := svc.Save(file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	stored := filepath.Join(svc.Dir(), strings.TrimPrefix(path, "/uploads/"))
	_, err = os.Stat(stored)
	assert.NoError(t, err)
}

func TestSaveAcceptsJPEGCaseInsensitiveExt(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	file, header := uploadPart(t, "photo.JPG", "image/jpeg", jpegBytes(t))
	path, err := svc.Save(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	file, header := uploadPart(t, "anim.gif", "image/gif", []byte("GIF89a"))
	_, err = svc.Save(file, header)
	assert.ErrorIs(t, err, ErrUploadRejected)
}

func TestSaveRejectsMismatchedDeclaredType(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	// A declared type that disagrees with the extension is rejected
	// even when the bytes themselves are a valid image.
	file, header := uploadPart(t, "shot.png", "application/octet-stream", pngBytes(t))
	_, err = svc.Save(file, header)
	assert.ErrorIs(t, err, ErrUploadRejected)
}

func TestSaveRejectsMismatchedContent(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	// PNG extension over non-PNG bytes must not pass the sniff check.
	file, header := uploadPart(t, "fake.png", "image/png", []byte("GIF89a not an image"))
	_, err = svc.Save(file, header)
	assert.ErrorIs(t, err, ErrUploadRejected)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	big := make([]byte, MaxUploadSize+1)
	copy(big, pngBytes(t))
	file, header := uploadPart(t, "big.png", "image/png", big)
	_, err = svc.Save(file, header)
	assert.ErrorIs(t, err, ErrUploadRejected)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	data := pngBytes(t)
	file1, header1 := uploadPart(t, "same.png", "image/png", data)
	file2, header2 := uploadPart(t, "same.png", "image/png", data)

	first, err := svc.Save(file1, header1)
	require.NoError(t, err)
	second, err := svc.Save(file2, header2)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
