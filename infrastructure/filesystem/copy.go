package filesystem

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src to dst, creating or truncating dst
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// MoveFile moves src to dst. A plain rename is tried first; when src and dst
// are on different filesystems the rename fails with EXDEV, so it falls back
// to copy-and-remove.
func MoveFile(src, dst string) error {
	return moveFile(os.Rename, src, dst)
}

func moveFile(rename func(src, dst string) error, src, dst string) error {
	if err := rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFile(src, dst); err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	return os.Remove(src)
}
