package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n0123456789")

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("images", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["images"][0]
}

func TestService_Save_CoverGoesUnderCoversPath(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir, "/static/tour-images")

	url, err := service.Save(makeFileHeader(t, "registan.png", pngBytes), PurposeCover)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/tour-images/covers/"), url)
	assert.True(t, strings.HasSuffix(url, "registan.png"), url)

	// the file landed on disk under the same name
	rel := strings.TrimPrefix(url, "/static/tour-images/")
	_, statErr := os.Stat(filepath.Join(dir, rel))
	assert.NoError(t, statErr)
}

func TestService_Save_SameNameTwiceNeverCollides(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir, "/static/tour-images")

	first, err := service.Save(makeFileHeader(t, "photo.png", pngBytes), PurposeGallery)
	require.NoError(t, err)
	second, err := service.Save(makeFileHeader(t, "photo.png", pngBytes), PurposeGallery)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestService_Save_RejectsNonImage(t *testing.T) {
	service := NewService(t.TempDir(), "/static/tour-images")

	_, err := service.Save(makeFileHeader(t, "notes.txt", []byte("just some text content")), PurposeGallery)

	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestService_Save_RejectsUnknownPurpose(t *testing.T) {
	service := NewService(t.TempDir(), "/static/tour-images")

	_, err := service.Save(makeFileHeader(t, "a.png", pngBytes), "avatars")

	assert.ErrorIs(t, err, ErrInvalidPurpose)
}

func TestService_Save_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir, "/static/tour-images")

	url, err := service.Save(makeFileHeader(t, "../секрет фото!!.png", pngBytes), PurposeCover)

	require.NoError(t, err)
	assert.NotContains(t, url, "..")
	assert.NotContains(t, url, " ")
	assert.NotContains(t, url, "!")
}
