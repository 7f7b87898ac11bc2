package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadGistFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	files, err := readGistFiles([]string{path}, "")
	if err != nil {
		t.Fatalf("readGistFiles returned error: %v", err)
	}

	file, ok := files["hello.txt"]
	if !ok {
		t.Fatalf("Expected hello.txt key, got %v", files)
	}
	if file.Content == nil || *file.Content != "hello world" {
		t.Errorf("Unexpected content: %v", file.Content)
	}
}

func TestReadGistFiles_MissingFile(t *testing.T) {
	if _, err := readGistFiles([]string{"/does/not/exist.txt"}, ""); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadGistFiles_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	if _, err := readGistFiles([]string{path}, ""); err == nil {
		t.Error("Expected error for empty file")
	}
}

func TestReadGistFiles_UsesBaseName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "script.sh")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	files, err := readGistFiles([]string{path}, "")
	if err != nil {
		t.Fatalf("readGistFiles returned error: %v", err)
	}
	if _, ok := files["script.sh"]; !ok {
		t.Errorf("Expected base name key, got %v", files)
	}
}
