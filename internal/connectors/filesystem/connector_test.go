package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	t.Run("creates connector with normalised extensions", func(t *testing.T) {
		connector := New("/tmp/books", []string{"txt", ".MD", ""})

		require.NotNil(t, connector)
		assert.Equal(t, "/tmp/books", connector.rootPath)
		assert.Len(t, connector.extensions, 2)
		assert.Contains(t, connector.extensions, ".txt")
		assert.Contains(t, connector.extensions, ".md")
	})

	t.Run("resolves file URIs", func(t *testing.T) {
		connector := New("file:///tmp/books/", []string{".txt"})

		assert.Equal(t, "/tmp/books", connector.Root())
	})

	t.Run("implements DocumentSource interface", func(t *testing.T) {
		var _ driven.DocumentSource = New("/tmp", nil)
	})
}

func TestBuilder(t *testing.T) {
	t.Run("builds connector", func(t *testing.T) {
		source, err := Builder("/tmp/books", []string{".txt"})

		require.NoError(t, err)
		assert.Equal(t, "filesystem", source.Type())
	})

	t.Run("rejects empty root", func(t *testing.T) {
		source, err := Builder("  ", []string{".txt"})

		assert.Nil(t, source)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestConnector_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts existing directory", func(t *testing.T) {
		connector := New(t.TempDir(), []string{".txt"})

		assert.NoError(t, connector.Validate(ctx))
	})

	t.Run("rejects missing directory", func(t *testing.T) {
		connector := New("/non/existent/path", []string{".txt"})

		err := connector.Validate(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("rejects a file", func(t *testing.T) {
		file := writeFile(t, t.TempDir(), "book.txt", "text")
		connector := New(file, []string{".txt"})

		err := connector.Validate(ctx)

		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "is not a directory")
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := New(t.TempDir(), nil).Validate(cctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnector_List(t *testing.T) {
	ctx := context.Background()

	t.Run("lists text files sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "moby_dick.txt", "whale")
		writeFile(t, dir, "emma.txt", "emma")
		writeFile(t, dir, "ulysses.TXT", "bloom")

		paths, err := New(dir, []string{".txt"}).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "emma.txt"),
			filepath.Join(dir, "moby_dick.txt"),
			filepath.Join(dir, "ulysses.TXT"),
		}, paths)
	})

	t.Run("excludes other extensions and subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "book.txt", "text")
		writeFile(t, dir, "cover.png", "png")
		writeFile(t, dir, "notes.md", "# notes")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "volume2.txt"), 0755))
		writeFile(t, filepath.Join(dir, "volume2.txt"), "nested.txt", "nested")

		paths, err := New(dir, []string{".txt"}).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "book.txt")}, paths)
	})

	t.Run("includes hidden text files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".draft.txt", "draft")

		paths, err := New(dir, []string{".txt"}).List(ctx)

		require.NoError(t, err)
		assert.Len(t, paths, 1)
	})

	t.Run("follows symlinks to files", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		dir := t.TempDir()
		target := writeFile(t, t.TempDir(), "real.txt", "real")
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.txt")))

		paths, err := New(dir, []string{".txt"}).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "link.txt")}, paths)
	})

	t.Run("empty directory yields no documents", func(t *testing.T) {
		paths, err := New(t.TempDir(), []string{".txt"}).List(ctx)

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, err := New("/non/existent/path", []string{".txt"}).List(ctx)

		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("cancelled context stops listing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "book.txt", "text")
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(dir, []string{".txt"}).List(cctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnector_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("includes content and metadata", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "emma.txt", "Emma Woodhouse, handsome, clever, and rich")

		raw, err := New(dir, []string{".txt"}).Read(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, path, raw.URI)
		assert.Equal(t, filepath.Clean(dir), raw.SourceID)
		assert.Equal(t, "text/plain", raw.MIMEType)
		assert.Equal(t, []byte("Emma Woodhouse, handsome, clever, and rich"), raw.Content)
		assert.Equal(t, "emma.txt", raw.Metadata["filename"])
		assert.Equal(t, "txt", raw.Metadata["extension"])
		assert.Equal(t, int64(42), raw.Metadata["size"])
	})

	t.Run("accepts file URIs", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "emma.txt", "Emma")

		raw, err := New(dir, nil).Read(ctx, "file://"+path)

		require.NoError(t, err)
		assert.Equal(t, []byte("Emma"), raw.Content)
	})

	t.Run("missing file wraps ErrFileRead", func(t *testing.T) {
		dir := t.TempDir()

		raw, err := New(dir, nil).Read(ctx, filepath.Join(dir, "gone.txt"))

		assert.Nil(t, raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileRead)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "gone.txt")
	})

	t.Run("directory wraps ErrFileRead", func(t *testing.T) {
		dir := t.TempDir()

		_, err := New(dir, nil).Read(ctx, dir)

		assert.ErrorIs(t, err, domain.ErrFileRead)
	})

	t.Run("empty file reads as empty content", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "blank.txt", "")

		raw, err := New(dir, nil).Read(ctx, path)

		require.NoError(t, err)
		assert.Empty(t, raw.Content)
	})
}

func TestMIMEType(t *testing.T) {
	tests := map[string]string{
		"emma.txt":       "text/plain",
		"EMMA.TXT":       "text/plain",
		"notes.md":       "text/markdown",
		"notes.Markdown": "text/markdown",
		"pg2701.html":    "text/html",
		"pg2701.htm":     "text/html",
		"book.xhtml":     "text/html",
		"README":         "text/plain",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, MIMEType(name))
		})
	}
}

func TestConnector_Read_SetsMIMEFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "moby.html", "<p>Call me Ishmael.</p>")

	raw, err := New(dir, []string{".html"}).Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "text/html", raw.MIMEType)
}
