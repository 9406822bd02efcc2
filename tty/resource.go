package tty

import (
	"os"
	"sync"
)

// ResourceID is an opaque handle that a ResourceTable resolves to an open
// file descriptor.
type ResourceID uint32

const (
	Stdin  ResourceID = 0
	Stdout ResourceID = 1
	Stderr ResourceID = 2
)

// ResourceTable resolves resource ids to file descriptors. Unknown ids
// resolve to an error matching ErrResourceNotFound.
type ResourceTable interface {
	Fd(id ResourceID) (int, error)
}

// FileTable is a ResourceTable of *os.File values. The standard streams are
// registered under Stdin, Stdout and Stderr.
type FileTable struct {
	mu    sync.RWMutex
	next  ResourceID
	files map[ResourceID]*os.File
}

func NewFileTable() *FileTable {
	return &FileTable{
		next: Stderr + 1,
		files: map[ResourceID]*os.File{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	}
}

// Add registers f and returns its id. Ids are never reused.
func (t *FileTable) Add(f *os.File) ResourceID {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	t.files[id] = f
	return id
}

// Remove forgets id without closing the file.
func (t *FileTable) Remove(id ResourceID) (*os.File, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.files[id]
	delete(t.files, id)
	return f, ok
}

func (t *FileTable) File(id ResourceID) (*os.File, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.files[id]
	if !ok || f == nil {
		return nil, &ResourceError{ID: id}
	}
	return f, nil
}

func (t *FileTable) Fd(id ResourceID) (int, error) {
	f, err := t.File(id)
	if err != nil {
		return -1, err
	}
	return int(f.Fd()), nil
}
