package fstore

import (
	"github.com/SujalChoudhari/Node-User-Settings/lib/document"
)

// --------------------------------------------------------------------------
// Asynchronous calling convention
// --------------------------------------------------------------------------

// AsyncLoad carries the outcome of one asynchronous load: the usual
// LoadResult plus the validation error, if any.
type AsyncLoad struct {
	Result LoadResult
	Err    error
}

// IAsyncFileStore mirrors IFileStore with a non-blocking calling
// convention for the two I/O operations. Path resolution performs no I/O
// and stays synchronous. Each returned channel is buffered, receives
// exactly one value and is then closed, so it may be discarded without
// leaking the goroutine. Semantics are identical to the blocking form by
// construction: every method dispatches to the same underlying store.
type IAsyncFileStore interface {
	ResolvePath(name string) (path string, err error)
	DefaultPath() string
	Load(name string) <-chan AsyncLoad
	Save(doc document.Document, name string) <-chan error
}

// NewAsync wraps a blocking file store in the asynchronous calling
// convention.
func NewAsync(s IFileStore) IAsyncFileStore {
	return &asyncStore{inner: s}
}

type asyncStore struct {
	inner IFileStore
}

func (a *asyncStore) ResolvePath(name string) (string, error) {
	return a.inner.ResolvePath(name)
}

func (a *asyncStore) DefaultPath() string {
	return a.inner.DefaultPath()
}

func (a *asyncStore) Load(name string) <-chan AsyncLoad {
	ch := make(chan AsyncLoad, 1)
	go func() {
		defer close(ch)
		result, err := a.inner.Load(name)
		ch <- AsyncLoad{Result: result, Err: err}
	}()
	return ch
}

func (a *asyncStore) Save(doc document.Document, name string) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- a.inner.Save(doc, name)
	}()
	return ch
}
