// Package testing provides a reusable conformance test suite for
// settings.ISettings implementations. The suite covers the observable
// contract: set/get round trips, default-value fallback, existence checks,
// deletion semantics, batched operations, value coercion, per-file
// isolation, argument validation, racing writers and the asynchronous
// calling convention.
//
// It is consumed by implementation packages via RunSettingsTests with a
// factory that yields a fresh, isolated instance per subtest.
package testing
