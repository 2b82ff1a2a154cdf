// Package jsonfs implements the fstore.IFileStore interface over the local
// filesystem, storing one JSON object per preference file.
//
// Key Features:
//   - Lazy provisioning: a missing preference file is created with "{}"
//     content on first access, including its parent directory tree
//   - Absorbed read failures: unreadable or corrupt files resolve to an
//     empty document with the cause reported in the LoadResult, never as a
//     raised error
//   - Atomic replacement on save: documents are written to a temporary file
//     and renamed into place, so the on-disk file always contains a complete
//     valid JSON object even under concurrent writers
//   - Per-file operation counters exported via VictoriaMetrics
//
// Implementation Details:
//
//   - Path Resolution: logical file names are joined onto the storage
//     directory and rejected if they are absolute or escape the directory.
//     The empty name selects the configured default file, so both addressing
//     modes share one code path.
//
//   - Provisioning: the first create uses O_EXCL so a file created
//     concurrently by another actor is left untouched and treated as
//     success. When the create fails because the parent directory is
//     missing, the directory tree is created recursively and the file create
//     retried once.
//
//   - Concurrency: the store itself is stateless apart from its metrics and
//     performs no locking. Two overlapping save cycles against the same file
//     are last-write-wins; the atomic rename only guarantees that no reader
//     ever sees a torn document.
package jsonfs
