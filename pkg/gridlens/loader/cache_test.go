package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReusesUnchangedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.csv")
	require.NoError(t, os.WriteFile(path, []byte("Cliente,Consumo\nx,10\n"), 0o644))

	cache := NewCache()

	first, err := cache.Load(path)
	require.NoError(t, err)
	second, err := cache.Load(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "unchanged source must not be re-parsed")
	assert.Equal(t, 1, cache.Len())
}

func TestCacheInvalidatesOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.csv")
	require.NoError(t, os.WriteFile(path, []byte("Cliente,Consumo\nx,10\n"), 0o644))

	cache := NewCache()
	first, err := cache.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Cliente,Consumo\nx,10\ny,20\n"), 0o644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	second, err := cache.Load(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	grid, _ := second.Grid("dados")
	assert.Equal(t, 3, grid.RowCount())
}

func TestCacheExplicitInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.csv")
	require.NoError(t, os.WriteFile(path, []byte("Cliente,Consumo\nx,10\n"), 0o644))

	cache := NewCache()
	first, err := cache.Load(path)
	require.NoError(t, err)

	cache.Invalidate(path)
	assert.Equal(t, 0, cache.Len())

	second, err := cache.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCacheMissingSource(t *testing.T) {
	cache := NewCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}
