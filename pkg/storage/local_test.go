package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalDisk {
	t.Helper()
	d, err := NewLocalDisk(t.TempDir(), "http://localhost:8080/storage")
	require.NoError(t, err)
	return d
}

func TestLocalPutGetDelete(t *testing.T) {
	d := newLocal(t)
	ctx := context.Background()

	require.NoError(t, d.Put(ctx, "products/a.png", strings.NewReader("png-bytes")))

	ok, err := d.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.True(t, ok)

	r, err := d.Get(ctx, "products/a.png")
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "png-bytes", string(body))

	require.NoError(t, d.Delete(ctx, "products/a.png"))
	ok, err = d.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalBlocksTraversal(t *testing.T) {
	d := newLocal(t)
	ctx := context.Background()

	// Cleaned to a path inside the root, never above it.
	require.NoError(t, d.Put(ctx, "../../etc/passwd", strings.NewReader("nope")))
	ok, err := d.Exists(ctx, "etc/passwd")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalURL(t *testing.T) {
	d := newLocal(t)
	assert.Equal(t, "http://localhost:8080/storage/products/a.png", d.URL("/products/a.png"))
}

func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	disks = map[string]Disk{}
	defaultDisk = ""
}

func TestDiskRegistry(t *testing.T) {
	t.Cleanup(resetRegistry)

	d := newLocal(t)
	RegisterDisk("test-local", d)
	require.NoError(t, SetDefault("test-local"))

	got, err := DiskByName("test-local")
	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.Same(t, d, Default())

	_, err = DiskByName("missing")
	assert.Error(t, err)
}
