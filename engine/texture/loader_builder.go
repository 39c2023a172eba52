package texture

import (
	"io/fs"
	"log/slog"
	"os"
)

// LoaderOption is a functional option for configuring a Loader.
type LoaderOption func(*loader)

// WithFS sets the file system textures are read from. Loaders built this way cannot Watch.
//
// Parameters:
//   - fsys: the source file system
//
// Returns:
//   - LoaderOption: a function that sets the file system
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *loader) {
		l.fsys = fsys
		l.dir = ""
	}
}

// WithAssetDir reads textures from a directory on disk.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - LoaderOption: a function that sets the file system
func WithAssetDir(dir string) LoaderOption {
	return func(l *loader) {
		l.fsys = os.DirFS(dir)
		l.dir = dir
	}
}

// WithWorkers sets the number of decode workers.
//
// Parameters:
//   - n: the worker count (minimum 1)
//
// Returns:
//   - LoaderOption: a function that sets the worker count
func WithWorkers(n int) LoaderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithLogger sets the logger used for load results.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}
