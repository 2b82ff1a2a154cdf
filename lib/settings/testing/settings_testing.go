package testing

import (
	"errors"
	"sync"
	"testing"

	"github.com/SujalChoudhari/Node-User-Settings/lib/settings"
)

// SettingsFactory is a function that creates a fresh, empty ISettings
// instance backed by its own isolated storage.
type SettingsFactory func() settings.ISettings

// RunSettingsTests runs a comprehensive test suite for an ISettings
// implementation.
func RunSettingsTests(t *testing.T, name string, factory SettingsFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("DefaultFallback", func(t *testing.T) {
			testDefaultFallback(t, factory())
		})

		t.Run("Has", func(t *testing.T) {
			testHas(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("SetMany&GetMany", func(t *testing.T) {
			testSetManyGetMany(t, factory())
		})

		t.Run("ValueCoercion", func(t *testing.T) {
			testValueCoercion(t, factory())
		})

		t.Run("AlternateFiles", func(t *testing.T) {
			testAlternateFiles(t, factory())
		})

		t.Run("Validation", func(t *testing.T) {
			testValidation(t, factory())
		})

		t.Run("ConcurrentWriters", func(t *testing.T) {
			testConcurrentWriters(t, factory())
		})

		t.Run("Async", func(t *testing.T) {
			testAsync(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func mustSet(t testing.TB, s settings.ISettings, key string, value interface{}, file string) {
	t.Helper()
	ok, err := s.Set(key, value, file)
	if err != nil {
		t.Fatalf("Set(%s) raised: %v", key, err)
	}
	if !ok {
		t.Fatalf("Set(%s) reported save failure", key)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, s settings.ISettings) {
	mustSet(t, s, "theme", "dark", "")

	value, err := s.Get("theme", "fallback", "")
	if err != nil {
		t.Fatalf("Get raised: %v", err)
	}
	if value != "dark" {
		t.Errorf("Expected dark, got %q", value)
	}

	// Overwrite an existing key.
	mustSet(t, s, "theme", "light", "")
	value, _ = s.Get("theme", "fallback", "")
	if value != "light" {
		t.Errorf("Expected light after overwrite, got %q", value)
	}
}

func testDefaultFallback(t *testing.T, s settings.ISettings) {
	value, err := s.Get("never-set", "the-default", "")
	if err != nil {
		t.Fatalf("Get raised: %v", err)
	}
	if value != "the-default" {
		t.Errorf("Expected the-default, got %q", value)
	}

	// Non-string defaults come back in their string form.
	value, _ = s.Get("never-set", 42, "")
	if value != "42" {
		t.Errorf("Expected \"42\", got %q", value)
	}

	// The default must not have been written back.
	found, err := s.Has("never-set", "")
	if err != nil {
		t.Fatalf("Has raised: %v", err)
	}
	if found {
		t.Errorf("Get wrote the default back to the document")
	}
}

func testHas(t *testing.T, s settings.ISettings) {
	found, err := s.Has("missing", "")
	if err != nil {
		t.Fatalf("Has raised: %v", err)
	}
	if found {
		t.Errorf("Expected Has=false on fresh file")
	}

	mustSet(t, s, "present", "yes", "")

	found, _ = s.Has("present", "")
	if !found {
		t.Errorf("Expected Has=true after Set")
	}

	// Exact match only, no case folding.
	found, _ = s.Has("Present", "")
	if found {
		t.Errorf("Expected exact-match key lookup")
	}
}

func testDelete(t *testing.T, s settings.ISettings) {
	// Deleting an absent key is a successful no-op.
	ok, err := s.Delete("ghost", "")
	if err != nil {
		t.Fatalf("Delete raised: %v", err)
	}
	if !ok {
		t.Errorf("Expected Delete of absent key to report success")
	}

	mustSet(t, s, "keep", "1", "")
	mustSet(t, s, "drop", "2", "")

	ok, err = s.Delete("drop", "")
	if err != nil {
		t.Fatalf("Delete raised: %v", err)
	}
	if !ok {
		t.Errorf("Expected Delete to report success")
	}

	if found, _ := s.Has("drop", ""); found {
		t.Errorf("Expected key to be gone after Delete")
	}
	if found, _ := s.Has("keep", ""); !found {
		t.Errorf("Delete removed an unrelated key")
	}
}

func testSetManyGetMany(t *testing.T, s settings.ISettings) {
	stored, err := s.SetMany(map[string]interface{}{"a": 1, "b": 2}, "")
	if err != nil {
		t.Fatalf("SetMany raised: %v", err)
	}

	// Stored values come back in sorted key order.
	if len(stored) != 2 || stored[0] != "1" || stored[1] != "2" {
		t.Errorf("Expected stored values [1 2], got %v", stored)
	}

	values, err := s.GetMany([]string{"a", "b", "c"}, "")
	if err != nil {
		t.Fatalf("GetMany raised: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(values))
	}
	if values[0] == nil || *values[0] != "1" {
		t.Errorf("Expected a=1, got %v", values[0])
	}
	if values[1] == nil || *values[1] != "2" {
		t.Errorf("Expected b=2, got %v", values[1])
	}
	if values[2] != nil {
		t.Errorf("Expected nil for unset key, got %q", *values[2])
	}

	// Duplicates and order are preserved.
	values, _ = s.GetMany([]string{"b", "b", "a"}, "")
	if len(values) != 3 || *values[0] != "2" || *values[1] != "2" || *values[2] != "1" {
		t.Errorf("Expected [2 2 1], got %v", values)
	}

	// Empty input yields an empty result, not an error.
	values, err = s.GetMany(nil, "")
	if err != nil {
		t.Fatalf("GetMany(nil) raised: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected empty result for nil keys, got %v", values)
	}
}

func testValueCoercion(t *testing.T, s settings.ISettings) {
	cases := []struct {
		key      string
		value    interface{}
		expected string
	}{
		{"int", 7, "7"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"string", "as-is", "as-is"},
	}

	for _, c := range cases {
		mustSet(t, s, c.key, c.value, "")
		value, err := s.Get(c.key, "unused", "")
		if err != nil {
			t.Fatalf("Get(%s) raised: %v", c.key, err)
		}
		if value != c.expected {
			t.Errorf("Expected %s=%q, got %q", c.key, c.expected, value)
		}
	}
}

func testAlternateFiles(t *testing.T, s settings.ISettings) {
	mustSet(t, s, "who", "default-file", "")
	mustSet(t, s, "who", "alternate-file", "Other.json")

	value, _ := s.Get("who", "?", "")
	if value != "default-file" {
		t.Errorf("Expected default-file, got %q", value)
	}
	value, _ = s.Get("who", "?", "Other.json")
	if value != "alternate-file" {
		t.Errorf("Expected alternate-file, got %q", value)
	}

	// A key set in one file does not exist in another.
	mustSet(t, s, "only-here", "x", "Other.json")
	if found, _ := s.Has("only-here", ""); found {
		t.Errorf("Key leaked between logical files")
	}
}

func testValidation(t *testing.T, s settings.ISettings) {
	checkInvalid := func(op string, err error) {
		t.Helper()
		if err == nil {
			t.Errorf("%s: expected validation error for empty key", op)
			return
		}
		var settingsErr *settings.Error
		if !errors.As(err, &settingsErr) || settingsErr.Code != settings.RetCInvalidArgument {
			t.Errorf("%s: expected RetCInvalidArgument, got %v", op, err)
		}
	}

	_, err := s.Has("", "")
	checkInvalid("Has", err)
	_, err = s.Get("", "d", "")
	checkInvalid("Get", err)
	_, err = s.Set("", "v", "")
	checkInvalid("Set", err)
	_, err = s.Delete("", "")
	checkInvalid("Delete", err)
	_, err = s.SetMany(map[string]interface{}{"": "v"}, "")
	checkInvalid("SetMany", err)
}

func testConcurrentWriters(t *testing.T, s settings.ISettings) {
	// Two racing writers: either value may win, but the document must stay
	// a valid, readable JSON object throughout.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Set("contested", "x", "")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Set("contested", "y", "")
		}()
	}
	wg.Wait()

	value, err := s.Get("contested", "absent", "")
	if err != nil {
		t.Fatalf("Get after concurrent writes raised: %v", err)
	}
	if value != "x" && value != "y" {
		t.Errorf("Expected x or y after racing writers, got %q", value)
	}
}

func testAsync(t *testing.T, s settings.ISettings) {
	async := settings.NewAsync(s)

	if res := <-async.Set("async-key", 99, ""); res.Err != nil || !res.Value {
		t.Fatalf("Async Set failed: ok=%t err=%v", res.Value, res.Err)
	}

	if res := <-async.Has("async-key", ""); res.Err != nil || !res.Value {
		t.Errorf("Async Has failed: found=%t err=%v", res.Value, res.Err)
	}

	if res := <-async.Get("async-key", "d", ""); res.Err != nil || res.Value != "99" {
		t.Errorf("Async Get: expected 99, got %q (err=%v)", res.Value, res.Err)
	}

	if res := <-async.SetMany(map[string]interface{}{"m1": "a", "m2": "b"}, ""); res.Err != nil {
		t.Errorf("Async SetMany raised: %v", res.Err)
	} else if len(res.Value) != 2 || res.Value[0] != "a" || res.Value[1] != "b" {
		t.Errorf("Async SetMany: expected [a b], got %v", res.Value)
	}

	if res := <-async.GetMany([]string{"m1", "missing"}, ""); res.Err != nil {
		t.Errorf("Async GetMany raised: %v", res.Err)
	} else if len(res.Value) != 2 || res.Value[0] == nil || *res.Value[0] != "a" || res.Value[1] != nil {
		t.Errorf("Async GetMany: unexpected result %v", res.Value)
	}

	if res := <-async.Delete("async-key", ""); res.Err != nil || !res.Value {
		t.Errorf("Async Delete failed: ok=%t err=%v", res.Value, res.Err)
	}

	// Validation errors propagate through the channel.
	if res := <-async.Get("", "d", ""); res.Err == nil {
		t.Errorf("Expected validation error through async channel")
	}

	if async.DefaultFilePath() != s.DefaultFilePath() {
		t.Errorf("Async DefaultFilePath diverges from sync")
	}
}
