package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".booksim", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "deep", "path")

	store, err := NewConfigStore(nestedPath)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nestedPath, "config.toml"), store.Path())

	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("corpus.directory", "/books"))
	require.NoError(t, store.Set("analysis.top_terms", 50))

	assert.Equal(t, "/books", store.GetString("corpus.directory"))
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, "", store.GetString("analysis.top_terms"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("analysis.top_pairs", 5))
	require.NoError(t, store.Set("corpus.directory", "not an int"))

	assert.Equal(t, 5, store.GetInt("analysis.top_pairs"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Equal(t, 0, store.GetInt("corpus.directory"))

	store.mu.Lock()
	store.data["int64_key"] = int64(9999)
	store.mu.Unlock()
	assert.Equal(t, 9999, store.GetInt("int64_key"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	words := []string{"A", "THE"}
	require.NoError(t, store.Set("analysis.stop_words", words))

	got := store.GetStringSlice("analysis.stop_words")
	assert.Equal(t, []string{"A", "THE"}, got)

	got[0] = "CHANGED"
	assert.Equal(t, []string{"A", "THE"}, store.GetStringSlice("analysis.stop_words"))

	assert.Nil(t, store.GetStringSlice("nonexistent"))
	require.NoError(t, store.Set("analysis.top_terms", 10))
	assert.Nil(t, store.GetStringSlice("analysis.top_terms"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("corpus.directory", "/books"))
	require.NoError(t, store1.Set("corpus.extensions", []string{".txt", ".md"}))
	require.NoError(t, store1.Set("analysis.top_terms", 42))
	require.NoError(t, store1.Set("analysis.stop_words", []string{}))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/books", store2.GetString("corpus.directory"))
	assert.Equal(t, []string{".txt", ".md"}, store2.GetStringSlice("corpus.extensions"))
	assert.Equal(t, 42, store2.GetInt("analysis.top_terms"))

	_, ok := store2.Get("analysis.stop_words")
	assert.True(t, ok, "an explicitly empty list must survive a reload")
	assert.Empty(t, store2.GetStringSlice("analysis.stop_words"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("analysis.top_terms", 7))
	require.NoError(t, store.Set("output.matrix_file", "matrix.txt"))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[analysis]")
	assert.Contains(t, string(content), "[output]")
	assert.NotContains(t, string(content), "analysis.top_terms")
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[corpus]
directory = "./Book-Txt/"
extensions = [".txt"]

[analysis]
top_terms = 25
stop_words = ["A", "AN"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "./Book-Txt/", store.GetString("corpus.directory"))
	assert.Equal(t, []string{".txt"}, store.GetStringSlice("corpus.extensions"))
	assert.Equal(t, 25, store.GetInt("analysis.top_terms"))
	assert.Equal(t, []string{"A", "AN"}, store.GetStringSlice("analysis.stop_words"))
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("analysis.top_terms", 7))
	require.NoError(t, store.Set("analysis.top_pairs", 3))
	require.NoError(t, store.Delete("analysis.top_terms"))

	_, ok := store.Get("analysis.top_terms")
	assert.False(t, ok)

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok = reloaded.Get("analysis.top_terms")
	assert.False(t, ok)
	assert.Equal(t, 3, reloaded.GetInt("analysis.top_pairs"))

	assert.NoError(t, store.Delete("never.set"))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "no file is written until a value is set")
}

func TestConfigStore_Load_CommentOnly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# Just a comment\n\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.directory", "/books"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.directory", "/books"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.directory", "/books"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("analysis.top_terms", 5)
	assert.Error(t, err)

	_, ok := store.Get("analysis.top_terms")
	assert.False(t, ok, "failed writes are rolled back")
}

func TestConfigStore_Set_Unmarshallable(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Set_KeyConflict(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("analysis.top_terms", 5))

	err = store.Set("analysis", "flat")

	assert.Error(t, err)
	assert.Equal(t, 5, store.GetInt("analysis.top_terms"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	nested, err := nestMap(map[string]any{
		"a.b":   1,
		"a.c":   "x",
		"top":   true,
		"x.y.z": 2,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a":   map[string]any{"b": 1, "c": "x"},
		"top": true,
		"x":   map[string]any{"y": map[string]any{"z": 2}},
	}, nested)
	assert.Equal(t, map[string]any{"a.b": 1, "a.c": "x", "top": true, "x.y.z": 2}, flattenMap(nested, ""))
}
