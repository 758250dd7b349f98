package main

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/spf13/cobra"

	"cornercase/internal/logging"
	"cornercase/internal/preflight"
	"cornercase/internal/report"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check signer, cluster, storage and directories before minting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}

			checker, closeStore, err := ctx.chain.store(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			// Balance reads never sign, so the ledger gets an empty account.
			results := preflight.RunAll(cmd.Context(), cfg, preflight.Probes{
				Balance: ctx.chain.ledger(cfg, types.Account{}, logger),
				Storage: checker,
			})
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := "OK"
				if !r.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Table([]string{"Check", "Status", "Detail"}, rows, nil))
			fmt.Fprintf(cmd.OutOrStdout(), "Target cluster: %s\n", cfg.Network.RPCURL)

			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d preflight checks failed", failed)
			}
			return nil
		},
	}
}
