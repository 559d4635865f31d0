package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("myImage", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["myImage"][0]
}

func TestSave_StoresAllowedImage(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	name, err := store.Save(makeFileHeader(t, "cut.jpg", []byte("jpegdata")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "IMAGE-"), "collision-resistant prefix")
	assert.True(t, strings.HasSuffix(name, "-cut.jpg"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegdata"), data)
}

func TestSave_SanitizesClientName(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	name, err := store.Save(makeFileHeader(t, `..\evil dir\my cut.png`, []byte("x")))
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, `\`)
	assert.NotContains(t, name, " ")
}

func TestSave_RejectsDisallowedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	for _, filename := range []string{"run.exe", "note.txt", "page.html", "noext"} {
		_, err := store.Save(makeFileHeader(t, filename, []byte("x")))
		assert.Error(t, err, filename)
	}

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing written for rejected uploads")
}

func TestSave_RejectsOversizeFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), 8)
	require.NoError(t, err)

	_, err = store.Save(makeFileHeader(t, "big.jpg", bytes.Repeat([]byte("a"), 64)))
	assert.Error(t, err)
}

func TestRemove_UnlinksByURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)
	name, err := store.Save(makeFileHeader(t, "cut.gif", []byte("gifdata")))
	require.NoError(t, err)

	require.NoError(t, store.Remove("http://example.com"+PublicPath+name))

	_, statErr := os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove_CannotEscapeUploadDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 1<<20)
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(dir), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o600))
	t.Cleanup(func() { os.Remove(outside) })

	err = store.Remove("http://example.com/public/uploads/../victim.txt")
	assert.Error(t, err, "traversal collapses to the base name, which does not exist")

	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr, "file outside the upload dir untouched")
}
