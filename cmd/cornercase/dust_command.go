package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cornercase/internal/funding"
	"cornercase/internal/report"
	"cornercase/internal/solana"
)

func newDustCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dust <destination> <numberOfTransactions>",
		Short: "Send a destination just enough lamports to pay for n transactions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := solana.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("destination: %w", err)
			}
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("number of transactions %q: must be a non-negative integer", args[1])
			}

			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			ledger := ctx.chain.ledger(s.cfg, s.signer, s.logger)
			receipt, err := funding.Dust(s.ctx, ledger, dest, n, funding.Options{
				FeePerTransaction: s.cfg.Funding.FeePerTransaction,
				LockDir:           s.cfg.Funding.LockDir,
				Logger:            s.logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sent %s to %s\n", report.Lamports(receipt.Required), dest.ToBase58())
			fmt.Fprintf(out, "  previous balance: %s\n", report.Lamports(receipt.Balance))
			fmt.Fprintf(out, "  signature:        %s\n", receipt.Signature)
			return nil
		},
	}
}
