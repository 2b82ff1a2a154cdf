package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Document is the in-memory representation of one preference file: a flat
// mapping from string key to string value. Values are always held as strings;
// anything else is coerced via Stringify before it enters the document.
type Document map[string]string

// Empty returns the canonical serialized form of an empty document.
// Freshly provisioned preference files contain exactly this content.
func Empty() []byte {
	return []byte("{}")
}

// New creates an empty Document.
func New() Document {
	return Document{}
}

// Parse decodes JSON text into a Document. Top-level members of any
// JSON-serializable type are accepted and coerced to their string form,
// so files written by other producers (numbers, booleans, nested values)
// still load. Anything that is not a single JSON object is an error.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}

	doc := make(Document, len(raw))
	for key, value := range raw {
		doc[key] = Stringify(value)
	}
	return doc, nil
}

// Marshal encodes the Document as an indented JSON object. The output is
// always a valid JSON object whose members are string-to-string pairs.
func (d Document) Marshal() ([]byte, error) {
	if d == nil {
		return Empty(), nil
	}
	return json.MarshalIndent(d, "", "  ")
}

// Clone returns an independent copy of the Document.
func (d Document) Clone() Document {
	clone := make(Document, len(d))
	for key, value := range d {
		clone[key] = value
	}
	return clone
}

// SortedKeys returns the document's keys in lexicographic order.
// Documents are unordered maps, so this is the only deterministic ordering
// the package offers.
func (d Document) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Stringify coerces an arbitrary value to the string form under which it is
// stored in a Document. Strings pass through unchanged, JSON scalars keep
// their literal text, and composite values fall back to their compact JSON
// encoding.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		if encoded, err := json.Marshal(v); err == nil {
			return string(encoded)
		}
		return fmt.Sprint(v)
	}
}
