// Package fstore defines the Preference File Store: the component that
// resolves logical file names to paths and performs the raw load/save of
// Preference Documents, including first-use provisioning of missing files
// and directories.
//
// The package focuses on:
//   - A unified interface (IFileStore) for document load/save against a
//     storage backend
//   - An explicit Config object replacing ambient process-wide storage
//     configuration, so there is no "initialize before use" ordering hazard
//   - A LoadResult type that keeps the original "any read failure resolves
//     to an empty document" contract while still telling callers whether the
//     emptiness came from a fresh file, an unreadable file, or corrupt
//     content
//
// Key Components:
//
//   - IFileStore Interface: load and save operations addressed by logical
//     file name, where the empty name selects the configured default file.
//     Load absorbs all I/O failures into its result; Save surfaces write
//     failures as errors for the caller to convert into a success flag.
//
//   - LoadResult / LoadOrigin: the outcome of a load. The document is never
//     nil; the origin discriminates file, created, read_error and
//     parse_error so higher layers can choose to mask or surface the cause.
//
//   - FileStoreFactory: a function type that abstracts store creation,
//     providing dependency injection for the settings layer and for tests.
//
// Implementations:
//
//	The jsonfs subpackage ("github.com/SujalChoudhari/Node-User-Settings/lib/fstore/jsonfs")
//	implements IFileStore over the local filesystem with one JSON object per
//	preference file. It is the only storage backend; alternate backends were
//	deliberately left out of scope.
package fstore
