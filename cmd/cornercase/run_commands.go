package main

import (
	"fmt"
	"strconv"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/spf13/cobra"

	"cornercase/internal/catalogue"
	"cornercase/internal/logging"
	"cornercase/internal/minting"
	"cornercase/internal/report"
	"cornercase/internal/runner"
	"cornercase/internal/solana"
)

type runFlags struct {
	json   bool
	strict bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Print outcomes as JSON")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Exit with status 1 when any job fails")
}

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "create <destination>",
		Short: "Mint every default corner case to a destination wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := solana.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("destination: %w", err)
			}
			return runEntries(cmd, ctx, catalogue.Defaults(), dest, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func newCaseCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "case <caseId> <destination>",
		Short: "Mint a single corner case to a destination wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := catalogue.Lookup(args[0])
			if err != nil {
				return err
			}
			dest, err := solana.ParseAddress(args[1])
			if err != nil {
				return fmt.Errorf("destination: %w", err)
			}
			return runEntries(cmd, ctx, []catalogue.Entry{entry}, dest, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runEntries(cmd *cobra.Command, ctx *commandContext, entries []catalogue.Entry, dest common.PublicKey, flags runFlags) error {
	s, err := ctx.newSession(cmd)
	if err != nil {
		return err
	}
	client, closeClient, err := ctx.chain.minter(s.ctx, s.cfg, s.signer, s.logger)
	if err != nil {
		return err
	}
	defer closeClient()

	jobs := catalogue.Jobs(entries, dest)
	logging.WithContext(s.ctx, s.logger).Info("minting corner cases",
		logging.String(logging.FieldEventType, "run_start"),
		logging.Int("jobs", len(jobs)),
		logging.String("destination", dest.ToBase58()),
		logging.String("rpc_url", s.cfg.Network.RPCURL),
		logging.String("signer", s.signer.PublicKey.ToBase58()),
	)

	exec := minting.NewExecutor(client, s.logger)
	outcomes := runner.Run(s.ctx, exec.Tasks(jobs), runner.Options{
		Stagger:       s.cfg.Stagger(),
		JobTimeout:    s.cfg.JobTimeout(),
		MaxConcurrent: s.cfg.Runner.MaxConcurrent,
		Logger:        s.logger,
	})

	out := cmd.OutOrStdout()
	if flags.json {
		err = report.JSON(out, outcomes)
	} else {
		err = report.Outcomes(out, outcomes, report.Options{Colorize: report.ShouldColorize(out)})
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if failed := report.Failed(outcomes); flags.strict && failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(outcomes))
	}
	return nil
}

func newCasesCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:         "cases",
		Short:       "List the corner-case catalogue",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			type caseView struct {
				ID      string `json:"id"`
				Jobs    int    `json:"jobs"`
				Default bool   `json:"default"`
				Summary string `json:"summary"`
			}
			var views []caseView
			for _, e := range catalogue.All() {
				views = append(views, caseView{
					ID:      e.ID,
					Jobs:    len(e.Jobs(common.PublicKey{})),
					Default: e.Default,
					Summary: e.Summary,
				})
			}
			if asJSON {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.ID, strconv.Itoa(v.Jobs), yesNo(v.Default), v.Summary})
			}
			table := report.Table(
				[]string{"Case", "Jobs", "Default", "Summary"},
				rows,
				[]report.Alignment{report.AlignLeft, report.AlignRight, report.AlignLeft, report.AlignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalogue as JSON")
	return cmd
}
