package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cornercase/internal/clone"
	"cornercase/internal/minting"
	"cornercase/internal/solana"
)

func newCloneCommand(ctx *commandContext) *cobra.Command {
	var sourceURL string
	cmd := &cobra.Command{
		Use:   "clone <sourceMint> <destination>",
		Short: "Copy an existing NFT from the source cluster to a destination wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := solana.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("source mint: %w", err)
			}
			dest, err := solana.ParseAddress(args[1])
			if err != nil {
				return fmt.Errorf("destination: %w", err)
			}

			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			endpoint := strings.TrimSpace(sourceURL)
			if endpoint == "" {
				endpoint = s.cfg.Network.CloneSourceURL
			}
			client, closeClient, err := ctx.chain.minter(s.ctx, s.cfg, s.signer, s.logger)
			if err != nil {
				return err
			}
			defer closeClient()

			finder := ctx.chain.finder(endpoint, s.cfg, s.logger)
			job, result, err := clone.Clone(s.ctx, finder, minting.NewExecutor(client, s.logger), source, dest, s.logger)
			if err != nil {
				if result.Minted() {
					return fmt.Errorf("%w (partial mint %s)", err, result.Address.ToBase58())
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", job.Name)
			fmt.Fprintf(out, "  source:      %s (%s)\n", source.ToBase58(), endpoint)
			fmt.Fprintf(out, "  clone:       %s (%s)\n", result.Address.ToBase58(), s.cfg.Network.RPCURL)
			fmt.Fprintf(out, "  destination: %s\n", dest.ToBase58())
			return nil
		},
	}
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "RPC URL to read the source NFT from (overrides network.clone_source_url)")
	return cmd
}
