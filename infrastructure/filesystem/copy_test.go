package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.wem")
	dst := filepath.Join(dir, "dst.wem")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("dst content = %q", data)
	}
	if _, err := os.Stat(src); err != nil {
		t.Error("source should survive a copy")
	}
}

func TestMoveFile(t *testing.T) {
	t.Run("rename path", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.wem")
		dst := filepath.Join(dir, "dst.wem")
		if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := MoveFile(src, dst); err != nil {
			t.Fatalf("MoveFile failed: %v", err)
		}
		if _, err := os.Stat(src); !os.IsNotExist(err) {
			t.Error("source should be gone after move")
		}
		if _, err := os.Stat(dst); err != nil {
			t.Error("destination missing after move")
		}
	})

	t.Run("cross-device rename falls back to copy", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.wem")
		dst := filepath.Join(dir, "dst.wem")
		if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
			t.Fatal(err)
		}

		rename := func(string, string) error {
			return errors.New("invalid cross-device link")
		}
		if err := moveFile(rename, src, dst); err != nil {
			t.Fatalf("moveFile failed: %v", err)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "payload" {
			t.Errorf("dst content = %q", data)
		}
		if _, err := os.Stat(src); !os.IsNotExist(err) {
			t.Error("source should be removed after the copy fallback")
		}
	})

	t.Run("unreachable destination is an error", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.wem")
		if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
			t.Fatal(err)
		}

		dst := filepath.Join(dir, "missing-parent", "dst.wem")
		if err := MoveFile(src, dst); err == nil {
			t.Fatal("expected error for unreachable destination")
		}
		if _, err := os.Stat(src); err != nil {
			t.Error("source should survive a failed move")
		}
	})
}
