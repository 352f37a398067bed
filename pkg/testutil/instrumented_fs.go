package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/iconlib/pkg/types"
)

// InstrumentedFS wraps a types.FS, counting concurrent ReadFile calls and
// failing operations on chosen paths.
type InstrumentedFS struct {
	types.FS

	readDelay time.Duration

	inFlight    atomic.Int64
	maxInFlight atomic.Int64
	reads       atomic.Int64

	mu          sync.Mutex
	failRead    map[string]error
	failReadDir map[string]error
	failWrite   map[string]error
	writes      []string
}

// NewInstrumentedFS wraps inner.
func NewInstrumentedFS(inner types.FS) *InstrumentedFS {
	return &InstrumentedFS{
		FS:          inner,
		failRead:    make(map[string]error),
		failReadDir: make(map[string]error),
		failWrite:   make(map[string]error),
	}
}

// WithReadDelay makes every ReadFile sleep, so overlapping reads are observable.
func (f *InstrumentedFS) WithReadDelay(d time.Duration) *InstrumentedFS {
	f.readDelay = d
	return f
}

// FailRead makes ReadFile(path) return fs.ErrPermission.
func (f *InstrumentedFS) FailRead(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failRead[filepath.Clean(path)] = fs.ErrPermission
}

// FailReadDir makes ReadDir(path) return fs.ErrPermission.
func (f *InstrumentedFS) FailReadDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failReadDir[filepath.Clean(path)] = fs.ErrPermission
}

// FailWrite makes WriteFile fail for any file whose final name, after the
// writer's rename, would be path.
func (f *InstrumentedFS) FailWrite(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrite[filepath.Clean(path)] = fs.ErrPermission
}

// MaxConcurrentReads is the highest number of ReadFile calls seen in flight.
func (f *InstrumentedFS) MaxConcurrentReads() int {
	return int(f.maxInFlight.Load())
}

// Reads is the total number of ReadFile calls.
func (f *InstrumentedFS) Reads() int {
	return int(f.reads.Load())
}

// Writes returns the paths passed to WriteFile and Rename targets, in order.
func (f *InstrumentedFS) Writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func (f *InstrumentedFS) ReadFile(name string) ([]byte, error) {
	f.reads.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		max := f.maxInFlight.Load()
		if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}

	if f.readDelay > 0 {
		time.Sleep(f.readDelay)
	}

	f.mu.Lock()
	err := f.failRead[filepath.Clean(name)]
	f.mu.Unlock()
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *InstrumentedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f.mu.Lock()
	err := f.failReadDir[filepath.Clean(name)]
	f.mu.Unlock()
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return f.FS.ReadDir(name)
}

func (f *InstrumentedFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.mu.Lock()
	f.writes = append(f.writes, name)
	err := f.failWrite[filepath.Clean(name)]
	if err == nil {
		err = f.failWrite[filepath.Clean(trimTmp(name))]
	}
	f.mu.Unlock()
	if err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *InstrumentedFS) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	f.writes = append(f.writes, newpath)
	f.mu.Unlock()
	return f.FS.Rename(oldpath, newpath)
}

// trimTmp strips the writer's temporary suffix.
func trimTmp(name string) string {
	return strings.TrimSuffix(name, ".tmp")
}
