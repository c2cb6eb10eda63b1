package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type nullLogger struct{}

func (nullLogger) Info(string, ...interface{})        {}
func (nullLogger) Success(string, ...interface{})     {}
func (nullLogger) Warn(string, ...interface{})        {}
func (nullLogger) Error(string, ...interface{})       {}
func (nullLogger) Debug(bool, string, ...interface{}) {}

func TestManifestSize(t *testing.T) {
	total := 0
	for _, files := range Manifest {
		total += len(files)
	}
	if total != 19 {
		t.Errorf("manifest lists %d files, want 19", total)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	n, err := Generate(dir, false, nullLogger{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 19 {
		t.Errorf("wrote %d files, want 19", n)
	}

	for category, files := range Manifest {
		for _, name := range files {
			path := filepath.Join(dir, category, name)
			data, err := os.ReadFile(path)
			if err != nil {
				t.Errorf("missing %s: %v", path, err)
				continue
			}
			if !bytes.HasPrefix(data, []byte("OggS")) {
				t.Errorf("%s does not start with an Ogg capture pattern", path)
			}
		}
	}
}

func TestGenerate_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	real := []byte("real recording, not a stub")
	path := filepath.Join(dir, "weapons", "rifle_fire.ogg")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, real, 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Generate(dir, false, nullLogger{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 18 {
		t.Errorf("wrote %d files, want 18 (one kept)", n)
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, real) {
		t.Error("existing file was overwritten without --force")
	}
}

func TestGenerate_Force(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weapons", "rifle_fire.ogg")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Generate(dir, true, nullLogger{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 19 {
		t.Errorf("wrote %d files, want 19", n)
	}
	data, _ := os.ReadFile(path)
	if !bytes.HasPrefix(data, []byte("OggS")) {
		t.Error("force should rewrite the stub")
	}
}

func TestWriteStub_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.ogg")
	if err := WriteStub(path); err != nil {
		t.Fatalf("WriteStub: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stub not created: %v", err)
	}
}
