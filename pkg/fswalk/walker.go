package fswalk

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vango-dev/fsroutes/internal/errors"
	"github.com/vango-dev/fsroutes/internal/logging"
	"github.com/vango-dev/fsroutes/pkg/routepath"
)

// Walker lists every file reachable from a root directory.
type Walker struct {
	// FS is the filesystem to read. Defaults to the OS filesystem.
	FS afero.Fs

	// Logger receives debug records for every file found.
	Logger *slog.Logger
}

// New creates a Walker over fsys.
func New(fsys afero.Fs, logger *slog.Logger) *Walker {
	return &Walker{FS: fsys, Logger: logger}
}

// Files returns the absolute, slash-separated path of every file below
// root. A missing root fails with E101; any entry that cannot be stat'ed
// or listed fails with E102. No partial result is returned on error.
func (w *Walker) Files(ctx context.Context, root string) ([]string, error) {
	fsys := w.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := logging.OrDiscard(w.Logger)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.New("E101").WithPath(root).Wrap(err)
	}
	start := routepath.ToSlash(abs)
	if _, err := fsys.Stat(abs); err != nil {
		return nil, errors.New("E101").WithPath(start).Wrap(err)
	}

	var (
		files   []string
		visited = make(map[string]struct{})
		stack   = []string{start}
	)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, errors.New("E150").WithPath(start).Wrap(err)
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := fsys.Stat(filepath.FromSlash(current))
		if err != nil {
			return nil, errors.New("E102").WithPath(current).Wrap(err)
		}

		if !info.IsDir() {
			logger.Debug("found file", "path", current)
			files = append(files, current)
			continue
		}

		key := dirKey(fsys, current)
		if _, seen := visited[key]; seen {
			logger.Debug("skipping directory already visited", "path", current, "target", key)
			continue
		}
		visited[key] = struct{}{}

		entries, err := afero.ReadDir(fsys, filepath.FromSlash(current))
		if err != nil {
			return nil, errors.New("E102").WithPath(current).Wrap(err)
		}
		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, path.Join(current, entries[i].Name()))
		}
	}

	return files, nil
}

// dirKey identifies a directory independently of the symlinks used to
// reach it. Only the OS filesystem has links to resolve.
func dirKey(fsys afero.Fs, dir string) string {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return dir
	}
	resolved, err := filepath.EvalSymlinks(filepath.FromSlash(dir))
	if err != nil {
		return dir
	}
	return routepath.ToSlash(resolved)
}
