// Package fsettings implements the settings.ISettings interface over a
// Preference File Store. Every operation resolves the target file, loads the
// current document (provisioning it on first access), applies its mutation
// in memory and, for writes, persists the result. Batched writes persist
// exactly once for the whole batch.
//
// The implementation holds no document state between calls. Thread safety
// therefore reduces to the file store's guarantees: operations may run
// concurrently, and overlapping write cycles against the same file are
// last-write-wins.
package fsettings
