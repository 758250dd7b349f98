package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"golang.org/x/sys/unix"

	"cornercase/internal/report"
	"cornercase/internal/solana"
	"cornercase/internal/storage"
)

const (
	balanceTimeout = 10 * time.Second
	storageTimeout = 15 * time.Second
)

// CheckKeypair loads the signer keypair. The account is nil when loading fails.
func CheckKeypair(path string) (Result, *types.Account) {
	const name = "Signer keypair"

	account, err := solana.LoadKeypair(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}, nil
	}
	return Result{Name: name, Passed: true, Detail: account.PublicKey.ToBase58()}, &account
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
// With create set, a missing directory is created first.
func CheckDirectoryAccess(name, path string, create bool) Result {
	if create {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: create: %v)", path, err)}
		}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBalance confirms the RPC endpoint answers and addr holds at least minimum lamports.
func CheckBalance(ctx context.Context, b Balancer, addr common.PublicKey, minimum uint64) Result {
	const name = "Signer balance"

	checkCtx, cancel := context.WithTimeout(ctx, balanceTimeout)
	defer cancel()

	balance, err := b.Balance(checkCtx, addr)
	if err != nil {
		return Result{Name: name, Detail: summarizeError("rpc", err)}
	}
	if balance < minimum {
		return Result{Name: name, Detail: fmt.Sprintf("%s, need at least %s", report.Lamports(balance), report.Lamports(minimum))}
	}
	return Result{Name: name, Passed: true, Detail: report.Lamports(balance)}
}

// CheckStorage asks the metadata backend whether it is reachable.
func CheckStorage(ctx context.Context, name string, checker storage.Checker) Result {
	checkCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	detail, err := checker.Check(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeError("storage", err)}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

func summarizeError(what string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("%s check timed out (endpoint unresponsive)", what)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Sprintf("%s check timed out (endpoint unreachable)", what)
	}
	return err.Error()
}
