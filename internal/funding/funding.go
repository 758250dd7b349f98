package funding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/blocto/solana-go-sdk/common"

	"cornercase/internal/logging"
)

// DefaultFeePerTransaction is the flat lamport cost assumed for one transaction.
const DefaultFeePerTransaction uint64 = 5000

// ErrAlreadyFunded is returned when the destination already holds enough lamports.
var ErrAlreadyFunded = errors.New("account already funded")

// Ledger is the subset of chain access the funding helper needs.
type Ledger interface {
	Balance(ctx context.Context, addr common.PublicKey) (uint64, error)
	// RentExemptMinimum returns the rent-exempt minimum of a zero-data account.
	RentExemptMinimum(ctx context.Context) (uint64, error)
	// Transfer moves lamports from the signer to `to` and waits for confirmation.
	Transfer(ctx context.Context, to common.PublicKey, lamports uint64) (string, error)
}

// Options controls the fee model and locking.
type Options struct {
	FeePerTransaction uint64
	// LockDir holds per-destination lock files; empty disables locking.
	LockDir string
	Logger  *slog.Logger
}

// Receipt describes a completed or refused funding attempt.
type Receipt struct {
	Destination common.PublicKey
	Balance     uint64
	Rent        uint64
	Required    uint64
	Signature   string
}

// Required returns the lamports needed to pay for n transactions from an account
// holding balance. An account at or below the rent-exempt minimum also needs the
// rent covered.
func Required(balance, rent, n, fee uint64) (uint64, error) {
	var required uint64
	if balance <= rent {
		required = rent
	}
	if fee != 0 && n > (math.MaxUint64-required)/fee {
		return 0, fmt.Errorf("%d transactions at %d lamports overflows", n, fee)
	}
	return required + n*fee, nil
}

// Dust tops up dest so it can pay for n transactions. It refuses with
// ErrAlreadyFunded, sending nothing, when the balance already covers the amount.
// Otherwise it submits a single transfer of the full required amount.
func Dust(ctx context.Context, ledger Ledger, dest common.PublicKey, n uint64, opts Options) (Receipt, error) {
	logger := logging.NewComponentLogger(opts.Logger, "funding")
	receipt := Receipt{Destination: dest}
	fee := opts.FeePerTransaction
	if fee == 0 {
		fee = DefaultFeePerTransaction
	}

	if opts.LockDir != "" {
		unlock, err := Lock(opts.LockDir, dest)
		if err != nil {
			return receipt, err
		}
		defer unlock()
	}

	balance, err := ledger.Balance(ctx, dest)
	if err != nil {
		return receipt, fmt.Errorf("get balance: %w", err)
	}
	rent, err := ledger.RentExemptMinimum(ctx)
	if err != nil {
		return receipt, fmt.Errorf("get rent-exempt minimum: %w", err)
	}
	receipt.Balance, receipt.Rent = balance, rent

	required, err := Required(balance, rent, n, fee)
	if err != nil {
		return receipt, err
	}
	receipt.Required = required

	if balance >= required {
		logger.Info("destination already funded",
			logging.String("destination", dest.ToBase58()),
			logging.Uint64("balance", balance),
			logging.Uint64("required", required),
		)
		return receipt, fmt.Errorf("%w: balance %d >= required %d", ErrAlreadyFunded, balance, required)
	}

	sig, err := ledger.Transfer(ctx, dest, required)
	if err != nil {
		return receipt, fmt.Errorf("transfer %d lamports: %w", required, err)
	}
	receipt.Signature = sig
	logger.Info("destination funded",
		logging.String("destination", dest.ToBase58()),
		logging.Uint64("lamports", required),
		logging.String("signature", sig),
	)
	return receipt, nil
}
