package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"audiotag/internal/services"
	"audiotag/internal/textutil"
)

// runLock serializes runs that target the same ASIN. The lock file is left
// in place on release; removing it would let a waiter and a newcomer lock
// different inodes at the same time.
type runLock struct {
	lock *flock.Flock
}

func acquireRunLock(dir, asin string) (*runLock, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrFileWrite, "lock", "create lock dir", dir, err)
	}
	path := filepath.Join(dir, "audiotag-"+textutil.SanitizeToken(asin)+".lock")
	lk := flock.New(path)
	ok, err := lk.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrFileWrite, "lock", "acquire", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrInvalidInput, "lock", "acquire",
			fmt.Sprintf("another audiotag run is already processing %s", asin), nil)
	}
	return &runLock{lock: lk}, nil
}

func (l *runLock) release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
