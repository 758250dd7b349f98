package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cornercase/internal/clone"
	"cornercase/internal/config"
	"cornercase/internal/funding"
	"cornercase/internal/logging"
	"cornercase/internal/minting"
	"cornercase/internal/solana"
	"cornercase/internal/storage"
)

type globalFlags struct {
	config   string
	keypair  string
	url      string
	logLevel string
}

// chainFactory builds the network collaborators. Tests swap in fakes.
type chainFactory struct {
	minter func(ctx context.Context, cfg *config.Config, signer types.Account, logger *slog.Logger) (minting.Client, func(), error)
	ledger func(cfg *config.Config, signer types.Account, logger *slog.Logger) funding.Ledger
	finder func(endpoint string, cfg *config.Config, logger *slog.Logger) clone.Finder
	store  func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Checker, func(), error)
}

func defaultChain() chainFactory {
	return chainFactory{
		minter: func(ctx context.Context, cfg *config.Config, signer types.Account, logger *slog.Logger) (minting.Client, func(), error) {
			uploader, closeFn, err := openStorage(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			client := solana.New(cfg.Network.RPCURL, signer, solana.Options{
				Commitment:     cfg.Network.Commitment,
				ConfirmTimeout: cfg.ConfirmTimeout(),
				Uploader:       uploader,
				UploadTimeout:  cfg.UploadTimeout(),
				Logger:         logger,
			})
			return client, closeFn, nil
		},
		ledger: func(cfg *config.Config, signer types.Account, logger *slog.Logger) funding.Ledger {
			return solana.New(cfg.Network.RPCURL, signer, solana.Options{
				Commitment:     cfg.Network.Commitment,
				ConfirmTimeout: cfg.ConfirmTimeout(),
				Logger:         logger,
			})
		},
		finder: func(endpoint string, cfg *config.Config, logger *slog.Logger) clone.Finder {
			return solana.New(endpoint, types.Account{}, solana.Options{
				Commitment: cfg.Network.Commitment,
				Logger:     logger,
			})
		},
		store: func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Checker, func(), error) {
			uploader, closeFn, err := openStorage(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			checker, ok := uploader.(storage.Checker)
			if !ok {
				closeFn()
				return nil, func() {}, nil
			}
			return checker, closeFn, nil
		},
	}
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Uploader, func(), error) {
	uploader, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("metadata storage: %w", err)
	}
	closeFn := func() {
		if closer, ok := uploader.(io.Closer); ok {
			_ = closer.Close()
		}
	}
	return uploader, closeFn, nil
}

type commandContext struct {
	flags *globalFlags
	chain chainFactory

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags, chain chainFactory) *commandContext {
	return &commandContext{flags: flags, chain: chain}
}

// ensureConfig loads the configuration once and layers the global flags on top.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cfg *config.Config) error {
	if path := strings.TrimSpace(c.flags.keypair); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("resolve keypair path: %w", err)
		}
		cfg.Signer.KeypairPath = expanded
	}
	if url := strings.TrimSpace(c.flags.url); url != "" {
		cfg.Network.RPCURL = url
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	return cfg.Validate()
}

// session bundles what every network command needs: config, signer, logger
// and a context tagged with a fresh run id.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	signer types.Account
	logger *slog.Logger
}

func (c *commandContext) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	signer, err := solana.LoadKeypair(cfg.Signer.KeypairPath)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &session{
		ctx:    logging.WithRunID(cmd.Context(), uuid.NewString()),
		cfg:    cfg,
		signer: signer,
		logger: logger,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
