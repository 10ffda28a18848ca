package execrunner

import (
	"errors"
	"io/fs"
	"os/exec"
)

// IsStartFailure reports whether err means the process could not be started
// at all (missing or non-executable binary), as opposed to the process
// running and exiting non-zero.
func IsStartFailure(err error) bool {
	if err == nil {
		return false
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
