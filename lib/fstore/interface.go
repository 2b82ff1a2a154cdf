package fstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SujalChoudhari/Node-User-Settings/lib/document"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ErrInvalidName is returned when a logical file name cannot be resolved to
// a path inside the storage directory (absolute paths, parent-directory
// traversal, etc.). It is the only error the file store raises before I/O.
var ErrInvalidName = errors.New("invalid preference file name")

// IFileStore is the interface for loading and saving Preference Documents
// against a storage backend. The logical file name passed to each method
// selects which preference file to operate on; the empty string selects the
// configured default file.
//
// Load never raises for I/O reasons: every filesystem failure is absorbed
// into the returned LoadResult, which reports an empty Document together
// with the origin of that emptiness. Save reports write failures as errors
// so callers can convert them into their own success indicator.
type IFileStore interface {
	// ResolvePath resolves a logical file name to an absolute path inside
	// the storage directory. Returns ErrInvalidName for names that would
	// escape the directory.
	ResolvePath(name string) (path string, err error)
	// DefaultPath returns the path of the configured default preference file.
	DefaultPath() string
	// Load reads and parses the preference file for name, provisioning a
	// missing file (and its parent directory) with empty-object content on
	// first access. The error return is non-nil only for an invalid name.
	Load(name string) (result LoadResult, err error)
	// Save serializes the document and replaces the preference file for name.
	// The on-disk file is never left partially written.
	Save(doc document.Document, name string) (err error)
}

// --------------------------------------------------------------------------
// Load Results
// --------------------------------------------------------------------------

// LoadOrigin states how the Document in a LoadResult came to be.
type LoadOrigin int

const (
	// OriginFile: the document was parsed from an existing file.
	OriginFile LoadOrigin = iota
	// OriginCreated: the file did not exist; an empty one was provisioned.
	OriginCreated
	// OriginReadError: the file could not be read (or created); the document
	// is an empty fallback and Err holds the cause.
	OriginReadError
	// OriginParseError: the file was read but did not contain a valid JSON
	// object; the document is an empty fallback and Err holds the cause.
	OriginParseError
)

// String returns the origin's name for logs and metrics labels.
func (o LoadOrigin) String() string {
	switch o {
	case OriginFile:
		return "file"
	case OriginCreated:
		return "created"
	case OriginReadError:
		return "read_error"
	case OriginParseError:
		return "parse_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// LoadResult is the outcome of a Load. Document is never nil. Callers that
// only want the original fallback behavior can use the Document and ignore
// the rest; callers that need to distinguish "file was absent" from "file
// was unreadable or corrupt" inspect Origin and Err.
type LoadResult struct {
	Document document.Document
	Origin   LoadOrigin
	Err      error // underlying cause for OriginReadError / OriginParseError
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// DefaultFileName is used when a Config does not name its default file.
const DefaultFileName = "Settings.json"

// Config holds the settings for a file store. It is constructed once at
// startup and passed by value into the store; the store never mutates it
// and there is no process-wide configuration state.
type Config struct {
	// StorageDirectory is the directory all preference files live in.
	// It does not need to exist yet; it is created on first use. Required.
	StorageDirectory string
	// DefaultFileName is the file targeted when operations omit a logical
	// file name. Defaults to DefaultFileName when empty.
	DefaultFileName string
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	name := c.DefaultFileName
	if name == "" {
		name = DefaultFileName
	}

	var sb strings.Builder
	sb.WriteString("\nFILE STORE\n")
	sb.WriteString(fmt.Sprintf("  %-22s: %s\n", "Storage Directory", c.StorageDirectory))
	sb.WriteString(fmt.Sprintf("  %-22s: %s\n", "Default File", name))
	return sb.String()
}

// FileStoreFactory is a function type that creates the file store used by a
// settings implementation. This is used to abstract the creation of the
// store from the settings implementation.
type FileStoreFactory func() (IFileStore, error)
