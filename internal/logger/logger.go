// Package logger sends diagnostics to a file. The terminal belongs to the
// UI, so nothing is written anywhere unless Init turns debugging on.
package logger

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	fileName = "showmore.log"
	maxSize  = 1 << 20 // Rotate once the previous run left this much
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// L is the package logger used by the helpers below.
var L = discard

// Options configures Init.
type Options struct {
	Debug bool       // Enables the file log
	Dir   string     // Default: <user cache dir>/showmore
	Level slog.Level // Minimum level written
}

// Init points L at the log file described by opts and returns a closer for
// it. With Debug unset, L discards and the closer does nothing.
func Init(opts Options) (io.Closer, error) {
	L = discard
	if !opts.Debug {
		return io.NopCloser(nil), nil
	}

	dir := opts.Dir
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return io.NopCloser(nil), err
		}
		dir = filepath.Join(cache, "showmore")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.NopCloser(nil), err
	}

	path := filepath.Join(dir, fileName)
	if err := rotate(path, maxSize); err != nil {
		return io.NopCloser(nil), err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.NopCloser(nil), err
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})
	L = slog.New(h).With("pid", os.Getpid())
	return f, nil
}

// rotate moves path to path.1 when it is at least limit bytes, replacing any
// older backup. A missing file is fine.
func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}
	return os.Rename(path, path+".1")
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
