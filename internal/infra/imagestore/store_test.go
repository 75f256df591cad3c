package imagestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save("car.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_car.jpg"))

	data, err := os.ReadFile(filepath.Join(store.dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(ref))
	_, err = os.Stat(filepath.Join(store.dir, ref))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Save_UniqueRefs(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ref1, err := store.Save("car.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	ref2, err := store.Save("car.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestStore_Save_RejectsPathTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../evil.jpg", strings.NewReader("x"))
	// filepath.Base срезает каталоги, файл должен остаться внутри хранилища
	if err == nil {
		entries, readErr := os.ReadDir(store.dir)
		require.NoError(t, readErr)
		for _, e := range entries {
			assert.True(t, strings.HasSuffix(e.Name(), "_evil.jpg"))
		}
	}
}

func TestStore_Delete_MissingFileIsNoop(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("does-not-exist.jpg"))
	assert.NoError(t, store.Delete(""))
}
