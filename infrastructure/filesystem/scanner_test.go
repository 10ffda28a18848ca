package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bnk-converter/domain/bank"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListContainerFiles(t *testing.T) {
	t.Run("finds and sorts bnk files", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "b.bnk")
		touch(t, dir, "a.bnk")
		touch(t, dir, "C.BNK")
		touch(t, dir, "notes.txt")
		if err := os.Mkdir(filepath.Join(dir, "nested.bnk"), 0755); err != nil {
			t.Fatal(err)
		}

		files, err := NewScanner().ListContainerFiles(dir)
		if err != nil {
			t.Fatalf("ListContainerFiles failed: %v", err)
		}

		want := []string{
			filepath.Join(dir, "C.BNK"),
			filepath.Join(dir, "a.bnk"),
			filepath.Join(dir, "b.bnk"),
		}
		if len(files) != len(want) {
			t.Fatalf("files = %v, want %v", files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
			}
		}
	})

	t.Run("empty directory is not an error", func(t *testing.T) {
		files, err := NewScanner().ListContainerFiles(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("files = %v, want none", files)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewScanner().ListContainerFiles(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, bank.ErrInputDirNotFound) {
			t.Fatalf("expected ErrInputDirNotFound, got %v", err)
		}
	})
}

func TestListStreams(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "0002.wem")
	touch(t, dir, "0001.wem")
	touch(t, dir, "music.bnk")

	streams, err := NewScanner().ListStreams(dir)
	if err != nil {
		t.Fatalf("ListStreams failed: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("streams = %v, want 2", streams)
	}
	if filepath.Base(streams[0]) != "0001.wem" || filepath.Base(streams[1]) != "0002.wem" {
		t.Errorf("streams not sorted: %v", streams)
	}
}

func TestCheckerSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.ogg")
	if err := os.WriteFile(path, make([]byte, 123), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewChecker()
	if got := c.Size(path); got != 123 {
		t.Errorf("Size = %d, want 123", got)
	}
	if got := c.Size(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("Size of missing file = %d, want 0", got)
	}
	if !c.Exists(path) {
		t.Error("Exists = false for existing file")
	}
}
