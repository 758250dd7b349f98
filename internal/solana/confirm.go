package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/logging"
)

// ErrConfirmTimeout is returned when a sent transaction does not reach the
// configured commitment in time. The transaction may still land later.
var ErrConfirmTimeout = errors.New("transaction not confirmed in time")

var commitmentRank = map[string]int{
	"processed": 0,
	"confirmed": 1,
	"finalized": 2,
}

func reached(status, want string) bool {
	got, ok := commitmentRank[status]
	if !ok {
		return false
	}
	return got >= commitmentRank[want]
}

// sendAndConfirm signs ixs with the payer plus extra signers, submits the
// transaction and waits for it to reach the configured commitment.
func (c *Client) sendAndConfirm(ctx context.Context, ixs []types.Instruction, extra ...types.Account) (string, error) {
	latest, err := c.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("get latest blockhash: %w", err)
	}

	signers := append([]types.Account{c.payer}, extra...)
	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        c.payer.PublicKey,
			RecentBlockhash: latest.Blockhash,
			Instructions:    ixs,
		}),
	})
	if err != nil {
		return "", fmt.Errorf("build transaction: %w", err)
	}

	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	logging.WithContext(ctx, c.logger).Debug("transaction sent",
		logging.String("signature", sig),
		logging.Int("instructions", len(ixs)),
	)

	if err := c.waitForSignature(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

func (c *Client) waitForSignature(ctx context.Context, sig string) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		status, err := c.rpc.GetSignatureStatus(ctx, sig)
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("get signature status %s: %w", sig, err)
		}
		if err == nil && status != nil {
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed: %v", sig, status.Err)
			}
			if status.ConfirmationStatus != nil && reached(string(*status.ConfirmationStatus), c.commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s after %s", ErrConfirmTimeout, sig, c.confirmTimeout)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
