package jsonfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SujalChoudhari/Node-User-Settings/lib/document"
	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
	"github.com/SujalChoudhari/Node-User-Settings/lib/logging"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var log = logging.GetLogger("fstore/jsonfs")

type storeImpl struct {
	dir         string
	defaultName string
	metrics     *storeMetrics
}

// NewFileStore creates a file store that keeps one JSON object per
// preference file inside cfg.StorageDirectory. The directory does not need
// to exist; it is provisioned on first use.
func NewFileStore(cfg fstore.Config) (fstore.IFileStore, error) {
	if strings.TrimSpace(cfg.StorageDirectory) == "" {
		return nil, fmt.Errorf("storage directory must not be empty")
	}

	name := cfg.DefaultFileName
	if name == "" {
		name = fstore.DefaultFileName
	}

	s := &storeImpl{
		dir:         filepath.Clean(cfg.StorageDirectory),
		defaultName: name,
		metrics:     newStoreMetrics(),
	}

	// The default name goes through the same validation as explicit names.
	if _, err := s.ResolvePath(name); err != nil {
		return nil, fmt.Errorf("invalid default file name %q: %w", name, err)
	}
	return s, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see fstore.IFileStore)
// --------------------------------------------------------------------------

func (s *storeImpl) ResolvePath(name string) (string, error) {
	if name == "" {
		name = s.defaultName
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q is absolute", fstore.ErrInvalidName, name)
	}

	path := filepath.Join(s.dir, name)

	// Join cleans the result, so a name like "../other" resolves outside the
	// storage directory and is caught here.
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the storage directory", fstore.ErrInvalidName, name)
	}
	return path, nil
}

func (s *storeImpl) DefaultPath() string {
	return filepath.Join(s.dir, s.defaultName)
}

func (s *storeImpl) Load(name string) (fstore.LoadResult, error) {
	path, err := s.ResolvePath(name)
	if err != nil {
		return fstore.LoadResult{}, err
	}

	result := s.load(path)
	s.metrics.countLoad(s.logicalName(name), result.Origin)
	return result, nil
}

func (s *storeImpl) Save(doc document.Document, name string) error {
	path, err := s.ResolvePath(name)
	if err != nil {
		return err
	}

	if err := s.save(doc, path); err != nil {
		log.Warnw("failed to save preference file", "path", path, "error", err)
		s.metrics.countSaveError(s.logicalName(name))
		return err
	}
	s.metrics.countSave(s.logicalName(name))
	return nil
}

// --------------------------------------------------------------------------
// Internal Helpers
// --------------------------------------------------------------------------

// logicalName normalizes the name used for metrics labels.
func (s *storeImpl) logicalName(name string) string {
	if name == "" {
		return s.defaultName
	}
	return name
}

// load reads and parses the file at path. It never returns an error: every
// failure branch resolves to an empty document whose origin reports the
// cause.
func (s *storeImpl) load(path string) fstore.LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.provision(path)
		}
		log.Warnw("failed to read preference file", "path", path, "error", err)
		return fstore.LoadResult{Document: document.New(), Origin: fstore.OriginReadError, Err: err}
	}

	doc, err := document.Parse(data)
	if err != nil {
		log.Warnw("preference file contains invalid JSON, treating as empty", "path", path, "error", err)
		return fstore.LoadResult{Document: document.New(), Origin: fstore.OriginParseError, Err: err}
	}
	return fstore.LoadResult{Document: doc, Origin: fstore.OriginFile}
}

// provision creates a missing preference file with empty-object content.
// A concurrent create by another actor counts as success. A missing parent
// directory is created recursively and the file create retried once.
func (s *storeImpl) provision(path string) fstore.LoadResult {
	err := createExclusive(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		// Parent directory missing.
		if mkErr := os.MkdirAll(filepath.Dir(path), dirMode); mkErr != nil {
			log.Warnw("failed to create storage directory", "dir", filepath.Dir(path), "error", mkErr)
			return fstore.LoadResult{Document: document.New(), Origin: fstore.OriginReadError, Err: mkErr}
		}
		s.metrics.countDirCreated()
		err = createExclusive(path)
	}

	switch {
	case err == nil:
		s.metrics.countFileCreated()
	case errors.Is(err, os.ErrExist):
		// Another actor created the file first; nothing to do.
	default:
		log.Warnw("failed to create preference file", "path", path, "error", err)
		return fstore.LoadResult{Document: document.New(), Origin: fstore.OriginReadError, Err: err}
	}

	return fstore.LoadResult{Document: document.New(), Origin: fstore.OriginCreated}
}

// createExclusive creates path with empty-object content, failing if the
// file already exists.
func createExclusive(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return err
	}
	if _, err := f.Write(document.Empty()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// save writes the document to a temporary file in the target directory and
// renames it over path. The rename is atomic on POSIX filesystems, so a
// concurrent reader observes either the old or the new document, never a
// partial one.
func (s *storeImpl) save(doc document.Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), fileMode); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace preference file: %w", err)
	}
	return nil
}
