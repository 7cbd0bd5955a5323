package sink

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	valid := []string{
		"model_factory_defaultgen.go",
		"sub/dir/file.go",
	}
	for _, p := range valid {
		if err := ValidatePath(p); err != nil {
			t.Errorf("ValidatePath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{
		"",
		"/abs/path.go",
		"c:/windows/path.go",
		"../escape.go",
		"a/../b.go",
		"./unclean.go",
		"trailing/slash/",
	}
	for _, p := range invalid {
		if err := ValidatePath(p); err == nil {
			t.Errorf("ValidatePath(%q) = nil, want error", p)
		}
	}
}

func TestFilesystemSinkWrites(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	content := []byte("package api\n")
	if err := s.WriteFile(context.Background(), "sub/out.go", content); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "sub", "out.go"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content = %q", got)
	}

	// The temp file must be gone after the rename.
	entries, err := os.ReadDir(filepath.Join(dir, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".defaultgen-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestFilesystemSinkOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "out.go", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(ctx, "out.go", []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.go"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want the second write", got)
	}
}

func TestFilesystemSinkRejectsEscape(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	if err := s.WriteFile(context.Background(), "../outside.go", []byte("x")); err == nil {
		t.Error("expected an error for a path escaping the root")
	}
}

func TestFilesystemSinkHonorsCancel(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.WriteFile(ctx, "out.go", []byte("x")); err == nil {
		t.Fatal("expected a context error")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.go")); !os.IsNotExist(err) {
		t.Error("cancelled write should leave no file behind")
	}
}

func TestMemorySinkIsolation(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	content := []byte("package api\n")
	if err := s.WriteFile(ctx, "out.go", content); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice must not affect the stored copy.
	content[0] = 'X'
	got := s.Get("out.go")
	if string(got) != "package api\n" {
		t.Errorf("stored content mutated: %q", got)
	}

	// And mutating the returned slice must not affect future reads.
	got[0] = 'Y'
	if string(s.Get("out.go")) != "package api\n" {
		t.Error("Get should return a copy")
	}
}

func TestMemorySinkMissingPath(t *testing.T) {
	s := NewMemorySink()
	if s.Get("never-written.go") != nil {
		t.Error("Get for an unwritten path should return nil")
	}
	if len(s.Paths()) != 0 {
		t.Errorf("Paths = %v, want empty", s.Paths())
	}
}

func TestMemorySinkRejectsBadPath(t *testing.T) {
	s := NewMemorySink()
	if err := s.WriteFile(context.Background(), "../x.go", []byte("x")); err == nil {
		t.Error("expected an error for a traversal path")
	}
}
