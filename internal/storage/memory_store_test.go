package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	content := []byte("object payload")

	err := store.Put(ctx, "bucket", "obj1", bytes.NewReader(content), int64(len(content)), "text/plain")
	assert.NoError(t, err)

	obj, err := store.Get(ctx, "bucket", "obj1")
	assert.NoError(t, err)
	defer obj.Reader.Close()

	data, err := io.ReadAll(obj.Reader)
	assert.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, int64(len(content)), obj.Size)
	assert.Equal(t, "text/plain", obj.ContentType)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "bucket", "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStore_BucketsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Put(ctx, "a", "obj", bytes.NewReader([]byte("x")), 1, "")
	assert.NoError(t, err)

	_, err = store.Get(ctx, "b", "obj")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.True(t, store.Exists("a", "obj"))
}
