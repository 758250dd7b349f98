package funding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/gofrs/flock"
)

// ErrLocked is returned when another invocation is funding the same destination.
var ErrLocked = errors.New("destination is being funded by another process")

// Lock takes an exclusive file lock for dest under dir. The returned func releases it.
func Lock(dir string, dest common.PublicKey) (func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(filepath.Join(dir, "dust-"+dest.ToBase58()+".lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() { _ = lock.Unlock() }, nil
}
