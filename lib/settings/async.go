package settings

// --------------------------------------------------------------------------
// Asynchronous calling convention
// --------------------------------------------------------------------------

// Result carries the outcome of one asynchronous operation.
type Result[T any] struct {
	Value T
	Err   error
}

// IAsyncSettings mirrors ISettings with a non-blocking calling convention:
// every operation is scheduled immediately and completion is observed by
// receiving from the returned channel. Each channel is buffered and receives
// exactly one Result before being closed, so it may also be discarded
// without leaking the goroutine.
//
// There is no cancellation or timeout; once issued an operation runs to
// completion or to its reported failure. Semantics are identical to the
// synchronous interface by construction, as every method dispatches to the
// same underlying ISettings.
type IAsyncSettings interface {
	Has(key string, fileName string) <-chan Result[bool]
	Get(key string, defaultValue interface{}, fileName string) <-chan Result[string]
	GetMany(keys []string, fileName string) <-chan Result[[]*string]
	Set(key string, value interface{}, fileName string) <-chan Result[bool]
	SetMany(values map[string]interface{}, fileName string) <-chan Result[[]string]
	Delete(key string, fileName string) <-chan Result[bool]
	DefaultFilePath() string
}

// NewAsync wraps a synchronous settings implementation in the asynchronous
// calling convention. The wrapper holds no state of its own.
func NewAsync(s ISettings) IAsyncSettings {
	return &asyncImpl{inner: s}
}

type asyncImpl struct {
	inner ISettings
}

// dispatch runs fn in its own goroutine and delivers its result through a
// buffered channel.
func dispatch[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		value, err := fn()
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// --------------------------------------------------------------------------
// Interface Methods (docu see settings.IAsyncSettings)
// --------------------------------------------------------------------------

func (a *asyncImpl) Has(key string, fileName string) <-chan Result[bool] {
	return dispatch(func() (bool, error) { return a.inner.Has(key, fileName) })
}

func (a *asyncImpl) Get(key string, defaultValue interface{}, fileName string) <-chan Result[string] {
	return dispatch(func() (string, error) { return a.inner.Get(key, defaultValue, fileName) })
}

func (a *asyncImpl) GetMany(keys []string, fileName string) <-chan Result[[]*string] {
	return dispatch(func() ([]*string, error) { return a.inner.GetMany(keys, fileName) })
}

func (a *asyncImpl) Set(key string, value interface{}, fileName string) <-chan Result[bool] {
	return dispatch(func() (bool, error) { return a.inner.Set(key, value, fileName) })
}

func (a *asyncImpl) SetMany(values map[string]interface{}, fileName string) <-chan Result[[]string] {
	return dispatch(func() ([]string, error) { return a.inner.SetMany(values, fileName) })
}

func (a *asyncImpl) Delete(key string, fileName string) <-chan Result[bool] {
	return dispatch(func() (bool, error) { return a.inner.Delete(key, fileName) })
}

func (a *asyncImpl) DefaultFilePath() string {
	return a.inner.DefaultFilePath()
}
