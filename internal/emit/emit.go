// Package emit writes rendered class files to disk.
package emit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/usestring/jackgen/internal/render/java"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "generated"

// DefaultWorkers bounds concurrent file writes when no limit is configured.
const DefaultWorkers = 8

// ResolveDir maps an output path to the directory that receives the class
// files. An existing directory is used as is. A path ending in ".java" names
// a file, so its parent directory is used. Any other path is created as a
// directory.
func ResolveDir(path string) (string, error) {
	if path == "" {
		path = DefaultOutput
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return path, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat output path %s: %w", path, err)
	}

	dir := path
	if strings.EqualFold(filepath.Ext(path), java.FileExtension) {
		dir = filepath.Dir(path)
	} else if err == nil {
		return "", fmt.Errorf("output path %s exists and is not a directory", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// Writer writes rendered files with bounded concurrency.
type Writer struct {
	workers int
	logger  *slog.Logger
}

// NewWriter creates a Writer. A non-positive workers value uses
// DefaultWorkers; a nil logger uses slog.Default().
func NewWriter(workers int, logger *slog.Logger) *Writer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{workers: workers, logger: logger}
}

// Write writes files into dir and returns their paths in the order of files.
// Existing files are overwritten.
func (w *Writer) Write(ctx context.Context, dir string, files []java.File) ([]string, error) {
	paths := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, f.FileName)
			if err := os.WriteFile(path, f.Content, 0644); err != nil {
				return fmt.Errorf("write class %s: %w", f.Class, err)
			}
			w.logger.Debug("wrote class file",
				slog.String("class", f.Class),
				slog.String("path", path),
			)
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
