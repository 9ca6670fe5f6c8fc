// Package filesystem lists and reads the books of a local corpus directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
	"github.com/custodia-labs/booksim/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.DocumentSource = (*Connector)(nil)

// connectorType is the source type identifier.
const connectorType = "filesystem"

// Connector lists plain-text documents in a single directory and reads them.
// Listing is not recursive: subdirectories are ignored.
type Connector struct {
	rootPath   string
	extensions map[string]struct{}
}

// New creates a connector rooted at rootPath that accepts files with one of
// the given extensions (case-insensitive, leading dot optional).
func New(rootPath string, extensions []string) *Connector {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if ext = domain.NormaliseExtension(ext); ext != "" {
			exts[ext] = struct{}{}
		}
	}
	return &Connector{
		rootPath:   ResolvePath(rootPath),
		extensions: exts,
	}
}

// Builder adapts New to driven.DocumentSourceBuilder.
func Builder(root string, extensions []string) (driven.DocumentSource, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: empty corpus directory", domain.ErrInvalidInput)
	}
	return New(root, extensions), nil
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return connectorType
}

// Root returns the resolved corpus directory.
func (c *Connector) Root() string {
	return c.rootPath
}

// Validate checks the root exists and is a directory.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrSourceUnavailable, c.rootPath)
		}
		return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrSourceUnavailable, c.rootPath)
	}
	return nil
}

// List returns the paths of accepted regular files directly under the root,
// sorted by file name.
func (c *Connector) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrSourceUnavailable, c.rootPath)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	// os.ReadDir already sorts entries by file name.
	var paths []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !c.accepts(entry.Name()) {
			continue
		}

		path := filepath.Join(c.rootPath, entry.Name())
		if !isRegular(path, entry) {
			logger.Debug("Ignoring non-regular entry %s", path)
			continue
		}
		paths = append(paths, path)
	}

	logger.Debug("Listed %d documents under %s", len(paths), c.rootPath)
	return paths, nil
}

// Read returns the full content of the document at uri.
func (c *Connector) Read(ctx context.Context, uri string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ResolvePath(uri)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFileRead, uri, err)
	}
	logger.Debug("Read %s (%s)", path, humanize.Bytes(uint64(len(content))))

	filename := filepath.Base(path)
	return &domain.RawDocument{
		SourceID: c.rootPath,
		URI:      path,
		MIMEType: MIMEType(filename),
		Content:  content,
		Metadata: map[string]any{
			"filename":  filename,
			"extension": strings.TrimPrefix(filepath.Ext(filename), "."),
			"size":      int64(len(content)),
		},
	}, nil
}

// MIMEType guesses the content type of a book from its extension.
// Anything unrecognised is treated as plain text.
func MIMEType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return "text/markdown"
	case ".html", ".htm", ".xhtml":
		return "text/html"
	default:
		return "text/plain"
	}
}

func (c *Connector) accepts(name string) bool {
	_, ok := c.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// isRegular follows symlinks so a link to a book counts as a book.
func isRegular(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
