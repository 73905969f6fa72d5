package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"codeberg.org/mutker/senecd/internal/errors"
)

const (
	pidFile = "senecd.pid"
)

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write writes the current process ID to a PID file. It fails when another
// senecd process holding the file is still alive.
func Write() error {
	errFactory := errors.New()

	if running, err := otherInstanceRunning(); err != nil {
		return err
	} else if running {
		return errFactory.New(errors.ErrAlreadyRunning)
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func otherInstanceRunning() (bool, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(path())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errFactory.Wrap(errors.ErrInternal, err)
	}

	pid, err := strconv.Atoi(string(raw))
	if err != nil {
		// stale or corrupt file, treat as not running
		return false, nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false, nil
	}

	return process.Signal(syscall.Signal(0)) == nil, nil
}

// Remove removes the PID file.
func Remove() error {
	errFactory := errors.New()

	if _, err := os.Stat(path()); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(path()); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}
