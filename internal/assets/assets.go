package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second
	failureTTL     = 30 * time.Second
	cleanupEvery   = time.Minute
	maxParallel    = 4
)

var (
	// ErrInvalidPath is returned for empty, absolute or escaping paths.
	ErrInvalidPath = errors.New("invalid asset path")
	// ErrTimeout is returned when an image takes longer than the load timeout.
	ErrTimeout = errors.New("image load timed out")
)

// Options configure a Loader.
type Options struct {
	// Root is the asset directory; ignored when FS is set.
	Root    string
	FS      fs.FS
	Timeout time.Duration
	Logger  *zap.Logger
}

// Loader decodes slide images and caches the results, failures included.
type Loader struct {
	fsys    fs.FS
	timeout time.Duration
	cache   *cache.Cache
	logger  *zap.Logger
}

// Result is the outcome of loading one image.
type Result struct {
	Path  string
	Image image.Image
	Err   error
}

// OK reports whether the image decoded.
func (r Result) OK() bool {
	return r.Err == nil && r.Image != nil
}

type entry struct {
	img image.Image
	err error
}

// NewLoader returns a loader over the asset directory.
func NewLoader(opts Options) *Loader {
	fsys := opts.FS
	if fsys == nil {
		fsys = os.DirFS(opts.Root)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fsys:    fsys,
		timeout: timeout,
		cache:   cache.New(cache.NoExpiration, cleanupEvery),
		logger:  logger,
	}
}

// Load decodes one image, bounded by the loader timeout.
func (l *Loader) Load(ctx context.Context, path string) (image.Image, error) {
	name := strings.TrimPrefix(strings.TrimSpace(path), "./")
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	if cached, ok := l.cache.Get(name); ok {
		e := cached.(entry)
		return e.img, e.err
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	done := make(chan entry, 1)
	go func() {
		img, err := l.decode(name)
		done <- entry{img: img, err: err}
	}()

	var e entry
	select {
	case e = <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			e = entry{err: fmt.Errorf("%w: %s", ErrTimeout, name)}
		} else {
			return nil, ctx.Err()
		}
	}

	if e.err != nil {
		l.logger.Warn("image load failed", zap.String("path", name), zap.Error(e.err))
		l.cache.Set(name, e, failureTTL)
		return nil, e.err
	}
	l.cache.Set(name, e, cache.NoExpiration)
	return e.img, nil
}

// WaitAll loads every path concurrently and waits for all of them. A failed
// image resolves the wait like a successful one; the returned map always
// has one entry per distinct non-empty path.
func (l *Loader) WaitAll(ctx context.Context, paths []string) map[string]Result {
	unique := dedupe(paths)
	results := make([]Result, len(unique))

	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, p := range unique {
		i, p := i, p
		g.Go(func() error {
			img, err := l.Load(ctx, p)
			results[i] = Result{Path: p, Image: img, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]Result, len(results))
	for _, r := range results {
		out[r.Path] = r
	}
	return out
}

func (l *Loader) decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
