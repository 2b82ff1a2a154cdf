// Package document defines the Preference Document, the unit of persistence
// for the whole library: a flat string-to-string mapping with a JSON codec
// and a single coercion rule for non-string input.
//
// The package focuses on:
//   - The Document type and its JSON encode/decode round trip
//   - One coercion function (Stringify) shared by every write path, so the
//     rule "values are always stored as strings" cannot drift between the
//     single-key and batched operations
//
// Implementation Details:
//
//   - Parsing accepts any JSON object, not only string-valued ones. Files
//     written by other producers may contain numbers, booleans or nested
//     values; these are coerced to their string form on load rather than
//     rejected. Numeric members keep their literal text (json.Number is used
//     during decoding), so a stored 1.50 loads as "1.50" and not "1.5".
//
//   - Marshal always emits an indented JSON object. An empty (or nil)
//     document serializes to "{}", which is also the content written when a
//     preference file is provisioned for the first time.
//
// Documents are plain maps and carry no synchronization; callers that share
// one across goroutines must coordinate access themselves. The store layers
// above never do so: each operation materializes its own Document.
package document
