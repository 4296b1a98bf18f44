package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomandblossom/florist-backend/pkg/config"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(context.Background(), config.UploadsConfig{
		Dir:         t.TempDir(),
		BaseURL:     "/uploads",
		MaxUploadMB: 1,
	}, nil)
	require.NoError(t, err)
	return client
}

func TestSaveAndDelete(t *testing.T) {
	client := newTestClient(t)

	url, err := client.Save(context.Background(), "monstera.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	name := strings.TrimPrefix(url, "/uploads/")
	_, err = os.Stat(filepath.Join(client.Dir(), name))
	require.NoError(t, err)

	require.NoError(t, client.Delete(context.Background(), name))
	_, err = os.Stat(filepath.Join(client.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Save(context.Background(), "malware.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrDisallowedExtension)

	_, err = client.Save(context.Background(), "noext", strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrDisallowedExtension)
}

func TestSaveRejectsOversizedUpload(t *testing.T) {
	client := newTestClient(t)
	client.maxBytes = 8

	_, err := client.Save(context.Background(), "big.png", strings.NewReader("way more than eight bytes"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDeleteRejectsPathTraversal(t *testing.T) {
	client := newTestClient(t)

	assert.Error(t, client.Delete(context.Background(), "../secrets.txt"))
	assert.Error(t, client.Delete(context.Background(), ""))
	assert.ErrorIs(t, client.Delete(context.Background(), "missing.png"), os.ErrNotExist)
}
