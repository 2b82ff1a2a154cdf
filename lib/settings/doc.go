// Package settings provides the key-oriented preference API built on top of
// the Preference File Store: existence checks, single and batched reads with
// default-value fallback, single and batched writes, and deletion, in both a
// blocking and a non-blocking calling convention.
//
// The package focuses on:
//   - A unified interface (ISettings) for preference operations addressed by
//     logical file name
//   - One asynchronous wrapper (IAsyncSettings via NewAsync) that dispatches
//     to the same synchronous core, so the two calling conventions cannot
//     drift in behavior
//   - Unified error handling through a typed error code system
//
// Key Components:
//
//   - ISettings Interface: every operation is a full read(-modify-write)
//     cycle against the file store, so each call observes the latest on-disk
//     state at the cost of one file round trip. There is no cross-call
//     caching and no locking around the cycle; overlapping writers to the
//     same file are last-write-wins.
//
//   - Error System: a structured error type using return codes
//     (RetCInvalidArgument, RetCInternalError) and descriptive messages.
//     Only validation errors propagate to callers; filesystem errors are
//     absorbed into either the empty-document fallback (reads) or a boolean
//     success flag (writes). Callers that ignore the boolean cannot
//     distinguish an absent key from an unreadable file, which is the
//     intended contract.
//
//   - FileStoreFactory injection: implementations receive their file store
//     through the fstore.FileStoreFactory function type, abstracting storage
//     creation from API logic.
//
// Implementations:
//
//	The fsettings subpackage
//	("github.com/SujalChoudhari/Node-User-Settings/lib/settings/fsettings")
//	implements ISettings over any fstore.IFileStore.
package settings
