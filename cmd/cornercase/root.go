package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWith(defaultChain())
}

func newRootCommandWith(chain chainFactory) *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags, chain)

	rootCmd := &cobra.Command{
		Use:           "cornercase",
		Short:         "Mint corner-case NFTs on a Solana test network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&flags.keypair, "keypair", "k", "", "Signer keypair file (overrides signer.keypair_path)")
	rootCmd.PersistentFlags().StringVarP(&flags.url, "url", "u", "", "RPC URL of the target cluster (overrides network.rpc_url)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newCreateCommand(ctx))
	rootCmd.AddCommand(newCaseCommand(ctx))
	rootCmd.AddCommand(newCasesCommand())
	rootCmd.AddCommand(newCloneCommand(ctx))
	rootCmd.AddCommand(newDustCommand(ctx))
	rootCmd.AddCommand(newPreflightCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
