package jsonfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SujalChoudhari/Node-User-Settings/lib/document"
	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
)

func newTestStore(t *testing.T) (fstore.IFileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(fstore.Config{StorageDirectory: dir})
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return s, dir
}

func TestNewFileStoreValidation(t *testing.T) {
	if _, err := NewFileStore(fstore.Config{}); err == nil {
		t.Errorf("Expected error for empty storage directory")
	}
	if _, err := NewFileStore(fstore.Config{StorageDirectory: "   "}); err == nil {
		t.Errorf("Expected error for blank storage directory")
	}
	if _, err := NewFileStore(fstore.Config{StorageDirectory: t.TempDir(), DefaultFileName: "../escape.json"}); err == nil {
		t.Errorf("Expected error for default file name escaping the directory")
	}
}

func TestResolvePath(t *testing.T) {
	s, dir := newTestStore(t)

	path, err := s.ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath of default failed: %v", err)
	}
	if path != filepath.Join(dir, fstore.DefaultFileName) {
		t.Errorf("Expected default path %s, got %s", filepath.Join(dir, fstore.DefaultFileName), path)
	}

	path, err = s.ResolvePath("custom.json")
	if err != nil {
		t.Fatalf("ResolvePath of custom name failed: %v", err)
	}
	if path != filepath.Join(dir, "custom.json") {
		t.Errorf("Expected %s, got %s", filepath.Join(dir, "custom.json"), path)
	}

	if s.DefaultPath() != filepath.Join(dir, fstore.DefaultFileName) {
		t.Errorf("DefaultPath mismatch: got %s", s.DefaultPath())
	}
}

func TestResolvePathRejectsEscapes(t *testing.T) {
	s, _ := newTestStore(t)

	for _, name := range []string{"../outside.json", "../../etc/passwd", "/absolute.json", "a/../../b.json"} {
		if _, err := s.ResolvePath(name); !errors.Is(err, fstore.ErrInvalidName) {
			t.Errorf("Expected ErrInvalidName for %q, got %v", name, err)
		}
	}
}

func TestLoadProvisionsMissingFile(t *testing.T) {
	s, dir := newTestStore(t)

	result, err := s.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Origin != fstore.OriginCreated {
		t.Errorf("Expected OriginCreated, got %v", result.Origin)
	}
	if len(result.Document) != 0 {
		t.Errorf("Expected empty document, got %d entries", len(result.Document))
	}

	data, err := os.ReadFile(filepath.Join(dir, fstore.DefaultFileName))
	if err != nil {
		t.Fatalf("Provisioned file unreadable: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected provisioned content {}, got %q", data)
	}
}

func TestLoadProvisionsMissingDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "nested", "prefs")
	s, err := NewFileStore(fstore.Config{StorageDirectory: dir})
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	result, err := s.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Origin != fstore.OriginCreated {
		t.Errorf("Expected OriginCreated, got %v", result.Origin)
	}

	data, err := os.ReadFile(filepath.Join(dir, fstore.DefaultFileName))
	if err != nil {
		t.Fatalf("Expected file to exist after directory provisioning: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected {}, got %q", data)
	}
}

func TestLoadExistingFile(t *testing.T) {
	s, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "app.json"), []byte(`{"theme": "dark", "size": 12}`), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load("app.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Origin != fstore.OriginFile {
		t.Errorf("Expected OriginFile, got %v", result.Origin)
	}
	if result.Document["theme"] != "dark" {
		t.Errorf("Expected theme=dark, got %q", result.Document["theme"])
	}
	if result.Document["size"] != "12" {
		t.Errorf("Expected size coerced to \"12\", got %q", result.Document["size"])
	}
}

func TestLoadCorruptFileFallsBackToEmpty(t *testing.T) {
	s, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load("broken.json")
	if err != nil {
		t.Fatalf("Load raised for corrupt file: %v", err)
	}
	if result.Origin != fstore.OriginParseError {
		t.Errorf("Expected OriginParseError, got %v", result.Origin)
	}
	if result.Err == nil {
		t.Errorf("Expected cause in result.Err")
	}
	if len(result.Document) != 0 {
		t.Errorf("Expected empty fallback document, got %d entries", len(result.Document))
	}

	// The corrupt file must not have been overwritten by the load.
	data, _ := os.ReadFile(filepath.Join(dir, "broken.json"))
	if string(data) != `{not json` {
		t.Errorf("Load modified the corrupt file: %q", data)
	}
}

func TestLoadConcurrentlyCreatedFile(t *testing.T) {
	s, dir := newTestStore(t)

	// Simulate another actor creating the file between the failed read and
	// the exclusive create: the file already exists when Load provisions.
	if err := os.WriteFile(filepath.Join(dir, fstore.DefaultFileName), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Origin != fstore.OriginFile {
		t.Errorf("Expected OriginFile for existing file, got %v", result.Origin)
	}
}

func TestSaveAndReload(t *testing.T) {
	s, _ := newTestStore(t)

	doc := document.Document{"a": "1", "b": "two"}
	if err := s.Save(doc, "state.json"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result, err := s.Load("state.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Origin != fstore.OriginFile {
		t.Errorf("Expected OriginFile, got %v", result.Origin)
	}
	if len(result.Document) != 2 || result.Document["a"] != "1" || result.Document["b"] != "two" {
		t.Errorf("Reloaded document mismatch: %v", result.Document)
	}
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "fresh")
	s, err := NewFileStore(fstore.Config{StorageDirectory: dir})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save(document.Document{"k": "v"}, ""); err != nil {
		t.Fatalf("Save into missing directory failed: %v", err)
	}

	result, err := s.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if result.Document["k"] != "v" {
		t.Errorf("Expected k=v after save, got %v", result.Document)
	}
}

func TestSaveInvalidName(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Save(document.Document{}, "../evil.json"); !errors.Is(err, fstore.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s, dir := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.Save(document.Document{"n": "x"}, "a.json"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only a.json in storage directory, got %v", names)
	}
}

func TestMultipleLogicalFilesAreIndependent(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Save(document.Document{"who": "first"}, "one.json"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(document.Document{"who": "second"}, "two.json"); err != nil {
		t.Fatal(err)
	}

	one, _ := s.Load("one.json")
	two, _ := s.Load("two.json")
	if one.Document["who"] != "first" || two.Document["who"] != "second" {
		t.Errorf("Logical files are not independent: %v / %v", one.Document, two.Document)
	}
}

func TestAsyncStoreMatchesSync(t *testing.T) {
	s, _ := newTestStore(t)
	async := fstore.NewAsync(s)

	if err := <-async.Save(document.Document{"k": "v"}, "async.json"); err != nil {
		t.Fatalf("Async save failed: %v", err)
	}

	load := <-async.Load("async.json")
	if load.Err != nil {
		t.Fatalf("Async load raised: %v", load.Err)
	}
	if load.Result.Origin != fstore.OriginFile || load.Result.Document["k"] != "v" {
		t.Errorf("Async load mismatch: origin=%v doc=%v", load.Result.Origin, load.Result.Document)
	}

	// Validation errors travel through the channel.
	load = <-async.Load("../escape.json")
	if !errors.Is(load.Err, fstore.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName through async channel, got %v", load.Err)
	}

	if async.DefaultPath() != s.DefaultPath() {
		t.Errorf("Async DefaultPath diverges from sync")
	}
}
