package testsupport

import (
	"context"
	"sync"

	"github.com/blocto/solana-go-sdk/common"
)

// Transfer is one transfer recorded by FakeLedger.
type Transfer struct {
	To       common.PublicKey
	Lamports uint64
}

// FakeLedger is an in-memory balance ledger for funding tests.
type FakeLedger struct {
	mu        sync.Mutex
	balances  map[common.PublicKey]uint64
	transfers []Transfer
	Rent      uint64
	// TransferErr, when set, is returned by Transfer without moving funds.
	TransferErr error
}

// NewFakeLedger returns a ledger with the given rent-exempt minimum.
func NewFakeLedger(rent uint64) *FakeLedger {
	return &FakeLedger{balances: map[common.PublicKey]uint64{}, Rent: rent}
}

// SetBalance seeds the balance of addr.
func (l *FakeLedger) SetBalance(addr common.PublicKey, lamports uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] = lamports
}

// Transfers returns the recorded transfers.
func (l *FakeLedger) Transfers() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Transfer, len(l.transfers))
	copy(out, l.transfers)
	return out
}

func (l *FakeLedger) Balance(_ context.Context, addr common.PublicKey) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr], nil
}

func (l *FakeLedger) RentExemptMinimum(context.Context) (uint64, error) {
	return l.Rent, nil
}

func (l *FakeLedger) Transfer(_ context.Context, to common.PublicKey, lamports uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.TransferErr != nil {
		return "", l.TransferErr
	}
	l.transfers = append(l.transfers, Transfer{To: to, Lamports: lamports})
	l.balances[to] += lamports
	return "fake-signature", nil
}
