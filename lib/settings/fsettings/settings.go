package fsettings

import (
	"errors"
	"fmt"

	"github.com/SujalChoudhari/Node-User-Settings/lib/document"
	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
	"github.com/SujalChoudhari/Node-User-Settings/lib/logging"
	"github.com/SujalChoudhari/Node-User-Settings/lib/settings"
)

var log = logging.GetLogger("settings/fsettings")

type settingsImpl struct {
	store fstore.IFileStore
}

// NewFileSettings creates a settings instance backed by the file store the
// factory produces. This is the only implementation of settings.ISettings;
// alternate storage backends are out of scope.
func NewFileSettings(factory fstore.FileStoreFactory) (settings.ISettings, error) {
	store, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create file store: %w", err)
	}
	return &settingsImpl{store: store}, nil
}

// validateKey rejects the empty key before any I/O is attempted.
func validateKey(key string) error {
	if key == "" {
		return settings.NewError(settings.RetCInvalidArgument, "key must not be empty")
	}
	return nil
}

// load runs one store load, converting invalid file names into the package's
// typed validation error. I/O failures are already absorbed by the store and
// surface here as the empty document.
func (s *settingsImpl) load(fileName string) (document.Document, error) {
	result, err := s.store.Load(fileName)
	if err != nil {
		if errors.Is(err, fstore.ErrInvalidName) {
			return nil, settings.NewError(settings.RetCInvalidArgument, err.Error())
		}
		return nil, settings.NewError(settings.RetCInternalError, err.Error())
	}
	return result.Document, nil
}

// save persists the document, reporting the outcome as a boolean. Invalid
// names raise; everything else has already been logged by the store.
func (s *settingsImpl) save(doc document.Document, fileName string) (bool, error) {
	err := s.store.Save(doc, fileName)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fstore.ErrInvalidName) {
		return false, settings.NewError(settings.RetCInvalidArgument, err.Error())
	}
	return false, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see settings.ISettings)
// --------------------------------------------------------------------------

func (s *settingsImpl) Has(key string, fileName string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	doc, err := s.load(fileName)
	if err != nil {
		return false, err
	}
	_, found := doc[key]
	return found, nil
}

func (s *settingsImpl) Get(key string, defaultValue interface{}, fileName string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	doc, err := s.load(fileName)
	if err != nil {
		return "", err
	}
	if value, found := doc[key]; found {
		return value, nil
	}
	return document.Stringify(defaultValue), nil
}

func (s *settingsImpl) GetMany(keys []string, fileName string) ([]*string, error) {
	doc, err := s.load(fileName)
	if err != nil {
		return nil, err
	}

	values := make([]*string, 0, len(keys))
	for _, key := range keys {
		if value, found := doc[key]; found {
			v := value
			values = append(values, &v)
		} else {
			values = append(values, nil)
		}
	}
	return values, nil
}

func (s *settingsImpl) Set(key string, value interface{}, fileName string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	doc, err := s.load(fileName)
	if err != nil {
		return false, err
	}
	doc[key] = document.Stringify(value)
	return s.save(doc, fileName)
}

func (s *settingsImpl) SetMany(values map[string]interface{}, fileName string) ([]string, error) {
	// Validate the whole batch before any I/O is attempted.
	batch := make(document.Document, len(values))
	for key, value := range values {
		if err := validateKey(key); err != nil {
			return nil, err
		}
		batch[key] = document.Stringify(value)
	}

	doc, err := s.load(fileName)
	if err != nil {
		return nil, err
	}
	for key, value := range batch {
		doc[key] = value
	}

	// One persist for the whole batch.
	if ok, err := s.save(doc, fileName); err != nil {
		return nil, err
	} else if !ok {
		log.Debugw("batch save failed, stored values not persisted", "file", fileName)
	}

	stored := make([]string, 0, len(batch))
	for _, key := range batch.SortedKeys() {
		stored = append(stored, batch[key])
	}
	return stored, nil
}

func (s *settingsImpl) Delete(key string, fileName string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	doc, err := s.load(fileName)
	if err != nil {
		return false, err
	}
	if _, found := doc[key]; !found {
		// Deleting an absent key is a successful no-op, no write performed.
		return true, nil
	}
	delete(doc, key)
	return s.save(doc, fileName)
}

func (s *settingsImpl) DefaultFilePath() string {
	return s.store.DefaultPath()
}
