package settings

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ISettings is the key-oriented interface over one or more preference files.
// Every operation accepts a logical file name; the empty string targets the
// configured default file, any other name targets that file inside the
// storage directory, created on first use exactly like the default.
//
// Each call is one full load(-mutate-save) cycle against the file store;
// documents are never cached across calls. Filesystem read failures never
// raise: they resolve to the empty document, so an absent key and an
// unreadable file are indistinguishable here. Write failures are reported
// through the boolean result. The only raised errors are validation errors
// (empty key, invalid file name), returned before any I/O is attempted.
type ISettings interface {
	// Has reports whether key is present in the file (exact string match).
	Has(key string, fileName string) (found bool, err error)
	// Get returns the value for key, or the string form of defaultValue if
	// the key is absent. The default is never written back to the file.
	Get(key string, defaultValue interface{}, fileName string) (value string, err error)
	// GetMany loads the file once and returns one entry per requested key,
	// order and duplicates preserved: the stored value if present, nil if
	// absent.
	GetMany(keys []string, fileName string) (values []*string, err error)
	// Set stores the string form of value under key and persists. The
	// boolean reports whether the save succeeded.
	Set(key string, value interface{}, fileName string) (ok bool, err error)
	// SetMany applies all entries to the document and persists exactly once
	// for the whole batch. It returns the stored string values in sorted key
	// order.
	SetMany(values map[string]interface{}, fileName string) (stored []string, err error)
	// Delete removes key and persists, reporting the save result. Deleting
	// an absent key is a successful no-op and performs no write.
	Delete(key string, fileName string) (ok bool, err error)
	// DefaultFilePath returns the path of the default preference file.
	DefaultFilePath() string
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInvalidArgument:
		errorCode = "InvalidArgument"
	case RetCInternalError:
		errorCode = "InternalError"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("SettingsError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new settings Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess         RetCode = iota // 0: Operation executed successfully.
	RetCInvalidArgument                // 1: A supplied key or file name is invalid.
	RetCInternalError                  // 2: Operation failed due to an internal error.
)
