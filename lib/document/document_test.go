package document

import (
	"encoding/json"
	"testing"
)

func TestParseStringValues(t *testing.T) {
	doc, err := Parse([]byte(`{"theme": "dark", "lang": "en"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(doc))
	}
	if doc["theme"] != "dark" {
		t.Errorf("Expected theme=dark, got %q", doc["theme"])
	}
	if doc["lang"] != "en" {
		t.Errorf("Expected lang=en, got %q", doc["lang"])
	}
}

func TestParseCoercesNonStringValues(t *testing.T) {
	doc, err := Parse([]byte(`{"count": 3, "ratio": 1.50, "on": true, "none": null, "nested": {"a": 1}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cases := map[string]string{
		"count":  "3",
		"ratio":  "1.50",
		"on":     "true",
		"none":   "null",
		"nested": `{"a":1}`,
	}
	for key, expected := range cases {
		if doc[key] != expected {
			t.Errorf("Expected %s=%q, got %q", key, expected, doc[key])
		}
	}
}

func TestParseRejectsNonObjects(t *testing.T) {
	for _, data := range []string{`[1, 2]`, `"text"`, `42`, `not json at all`, ``} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Expected parse error for %q", data)
		}
	}
}

func TestParseEmptyObject(t *testing.T) {
	doc, err := Parse(Empty())
	if err != nil {
		t.Fatalf("Parse of empty object failed: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("Expected empty document, got %d entries", len(doc))
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	original := Document{"a": "1", "b": "two", "c": ""}

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	reloaded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshaled document failed: %v", err)
	}

	if len(reloaded) != len(original) {
		t.Fatalf("Expected %d entries after round trip, got %d", len(original), len(reloaded))
	}
	for key, value := range original {
		if reloaded[key] != value {
			t.Errorf("Round trip changed %s: expected %q, got %q", key, value, reloaded[key])
		}
	}
}

func TestMarshalNilDocument(t *testing.T) {
	var doc Document
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal of nil document failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected {}, got %s", data)
	}
}

func TestMarshalAlwaysValidJSONObject(t *testing.T) {
	doc := Document{`weird "key"`: "va\nlue", "": "empty key"}
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var check map[string]string
	if err := json.Unmarshal(data, &check); err != nil {
		t.Errorf("Marshal produced invalid JSON: %v", err)
	}
}

func TestClone(t *testing.T) {
	original := Document{"a": "1"}
	clone := original.Clone()

	clone["a"] = "changed"
	clone["b"] = "new"

	if original["a"] != "1" {
		t.Errorf("Clone mutation leaked into original")
	}
	if _, ok := original["b"]; ok {
		t.Errorf("Clone insertion leaked into original")
	}
}

func TestSortedKeys(t *testing.T) {
	doc := Document{"c": "3", "a": "1", "b": "2"}
	keys := doc.SortedKeys()

	expected := []string{"a", "b", "c"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Expected key %q at position %d, got %q", key, i, keys[i])
		}
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in       interface{}
		expected string
	}{
		{"plain", "plain"},
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint64(18446744073709551615), "18446744073709551615"},
		{1.5, "1.5"},
		{3.0, "3"},
		{json.Number("1.50"), "1.50"},
		{[]byte("bytes"), "bytes"},
		{[]int{1, 2}, "[1,2]"},
		{map[string]int{"a": 1}, `{"a":1}`},
	}

	for _, c := range cases {
		if got := Stringify(c.in); got != c.expected {
			t.Errorf("Stringify(%v): expected %q, got %q", c.in, c.expected, got)
		}
	}
}
