package solana

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"
)

// Payer returns the signing account's address.
func (c *Client) Payer() common.PublicKey {
	return c.payer.PublicKey
}

// Balance returns the lamports held by addr.
func (c *Client) Balance(ctx context.Context, addr common.PublicKey) (uint64, error) {
	return c.rpc.GetBalance(ctx, addr.ToBase58())
}

// RentExemptMinimum returns the rent-exempt minimum for an account without data.
func (c *Client) RentExemptMinimum(ctx context.Context) (uint64, error) {
	return c.rpc.GetMinimumBalanceForRentExemption(ctx, 0)
}

// Transfer sends lamports from the payer to `to` and waits for confirmation.
func (c *Client) Transfer(ctx context.Context, to common.PublicKey, lamports uint64) (string, error) {
	ix := system.Transfer(system.TransferParam{
		From:   c.payer.PublicKey,
		To:     to,
		Amount: lamports,
	})
	sig, err := c.sendAndConfirm(ctx, []types.Instruction{ix})
	if err != nil {
		return sig, fmt.Errorf("transfer to %s: %w", to.ToBase58(), err)
	}
	return sig, nil
}
