package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotWatchable is returned by Watch when the loader does not read from a directory on disk.
var ErrNotWatchable = errors.New("texture source is not a directory on disk")

type loader struct {
	fsys    fs.FS
	dir     string
	workers int
	logger  *slog.Logger

	pool     worker.DynamicWorkerPool
	submitMu sync.Mutex
	closed   bool

	// pending holds the WaitGroup release of every queued or running task
	pendingMu sync.Mutex
	pending   map[int]func()
	wg        sync.WaitGroup
	nextID    atomic.Int64

	mu      sync.Mutex
	reloads map[string][]func() error
	watcher *fsnotify.Watcher
}

// Loader decodes image files on a worker pool. Every load returns immediately with a placeholder
// texture; the decoded pixels replace the placeholder when the worker finishes. Failed loads are
// logged and leave the placeholder in place.
type Loader interface {
	// Load starts decoding the image at path.
	//
	// Parameters:
	//   - path: slash-separated path inside the loader's file system
	//
	// Returns:
	//   - Texture: a texture holding a 1x1 opaque white placeholder until the decode completes
	Load(path string) Texture

	// LoadAlphaComposite starts decoding a color map and a transparency map and merges them with
	// AlphaComposite.
	//
	// Parameters:
	//   - colorPath: the RGB source
	//   - transPath: the transparency source
	//
	// Returns:
	//   - Texture: a texture holding a 1x1 transparent placeholder until both decodes complete
	LoadAlphaComposite(colorPath, transPath string) Texture

	// Wait blocks until every submitted load has finished.
	Wait()

	// Watch reloads textures whose source files are written after the call. Only loaders
	// configured with WithAssetDir can watch.
	//
	// Returns:
	//   - error: ErrNotWatchable, or an error starting the file watcher
	Watch() error

	// Close stops the file watcher and the worker pool. Loads still queued are abandoned and
	// later loads keep their placeholder.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader reading from the current directory unless configured otherwise.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderOption) Loader {
	l := &loader{
		fsys:    os.DirFS("."),
		workers: max(runtime.NumCPU()-1, 1),
		logger:  slog.Default(),
		reloads: make(map[string][]func() error),
		pending: make(map[int]func()),
	}
	for _, opt := range options {
		opt(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, time.Second)
	return l
}

func (l *loader) Load(path string) Texture {
	tex := NewTexture(path, Solid(255, 255, 255, 255))
	l.track(func() error {
		img, err := l.decode(path)
		if err != nil {
			return err
		}
		tex.SetData(StagingFromNRGBA(ToNRGBA(img)))
		l.logger.Debug("texture loaded", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return nil
	}, path)
	return tex
}

func (l *loader) LoadAlphaComposite(colorPath, transPath string) Texture {
	tex := NewTexture(colorPath+"+"+transPath, Solid(0, 0, 0, 0))
	l.track(func() error {
		color, err := l.decode(colorPath)
		if err != nil {
			return err
		}
		trans, err := l.decode(transPath)
		if err != nil {
			return err
		}
		tex.SetData(StagingFromNRGBA(AlphaComposite(color, trans)))
		l.logger.Debug("texture composited", "color", colorPath, "trans", transPath)
		return nil
	}, colorPath, transPath)
	return tex
}

func (l *loader) Wait() {
	l.wg.Wait()
}

func (l *loader) Watch() error {
	if l.dir == "" {
		return ErrNotWatchable
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start texture watcher: %w", err)
	}
	if err := w.Add(l.dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", l.dir, err)
	}
	l.watcher = w
	go l.watch(w)
	l.logger.Info("watching textures", "dir", l.dir)
	return nil
}

func (l *loader) Close() {
	l.mu.Lock()
	if l.watcher != nil {
		l.watcher.Close()
		l.watcher = nil
	}
	l.mu.Unlock()

	l.submitMu.Lock()
	l.closed = true
	l.submitMu.Unlock()

	// stopped workers never run what is still queued
	l.pendingMu.Lock()
	for id, release := range l.pending {
		release()
		delete(l.pending, id)
	}
	l.pendingMu.Unlock()
	l.pool.Stop()
}

// track submits job and remembers it under every source path it reads.
func (l *loader) track(job func() error, paths ...string) {
	l.mu.Lock()
	for _, p := range paths {
		l.reloads[p] = append(l.reloads[p], job)
	}
	l.mu.Unlock()
	l.submit(job)
}

func (l *loader) watch(w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			rel, err := filepath.Rel(l.dir, ev.Name)
			if err != nil {
				continue
			}
			l.mu.Lock()
			jobs := l.reloads[filepath.ToSlash(rel)]
			l.mu.Unlock()
			for _, job := range jobs {
				l.submit(job)
			}
			if len(jobs) > 0 {
				l.logger.Debug("texture source changed", "path", rel, "reloads", len(jobs))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			l.logger.Warn("texture watcher error", "error", err)
		}
	}
}

// submit queues job on the pool. Loads and watcher reloads may submit from different goroutines.
// Jobs submitted after Close are dropped.
func (l *loader) submit(job func() error) {
	l.submitMu.Lock()
	defer l.submitMu.Unlock()
	if l.closed {
		return
	}
	id := int(l.nextID.Add(1))
	release := sync.OnceFunc(l.wg.Done)
	l.wg.Add(1)
	l.pendingMu.Lock()
	l.pending[id] = release
	l.pendingMu.Unlock()
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer func() {
				l.pendingMu.Lock()
				delete(l.pending, id)
				l.pendingMu.Unlock()
				release()
			}()
			if err := job(); err != nil {
				l.logger.Warn("texture load failed", "error", err)
				return nil, err
			}
			return nil, nil
		},
	})
}

func (l *loader) decode(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return img, nil
}
