package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bilalayas/takipcim/internal/logging"
)

// ErrLocked means another tracker already holds the lock
var ErrLocked = errors.New("another takipcim tracker is already running")

// FileLock is an advisory, non-blocking, exclusive lock on a file.
// The holder's pid is written into the file for diagnostics.
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path or fails with ErrLocked without waiting
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, ErrLocked) {
			if pid := readPID(path); pid != "" {
				return nil, fmt.Errorf("%w (pid %s)", ErrLocked, pid)
			}
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := unlock(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logging.Logger.Debug("Lock released", "path", l.path)
	return l.file.Close()
}

func readPID(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
