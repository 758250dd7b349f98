package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/pelletier/go-toml/v2"

	"cornercase/internal/clone"
	"cornercase/internal/config"
	"cornercase/internal/funding"
	"cornercase/internal/minting"
	"cornercase/internal/nft"
	"cornercase/internal/solana"
	"cornercase/internal/storage"
	"cornercase/internal/testsupport"
)

type stubFinder struct {
	records map[common.PublicKey]nft.Record
}

func (f stubFinder) FindByMint(_ context.Context, mint common.PublicKey) (nft.Record, error) {
	rec, ok := f.records[mint]
	if !ok {
		return nft.Record{}, solana.ErrAccountNotFound
	}
	return rec, nil
}

type stubChecker struct {
	detail string
	err    error
}

func (s *stubChecker) Check(context.Context) (string, error) { return s.detail, s.err }

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	client     *testsupport.FakeClient
	ledger     *testsupport.FakeLedger
	finder     stubFinder
	store      *stubChecker
	// finderURL records the endpoint the last finder was built for.
	finderURL string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("CORNERCASE_RPC_URL", "")
	t.Setenv("CORNERCASE_KEYPAIR", "")
	t.Setenv("CORNERCASE_STORAGE_BACKEND", "")

	configPath := filepath.Join(base, "cornercase.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		client:     testsupport.NewFakeClient(),
		ledger:     testsupport.NewFakeLedger(890880),
		finder:     stubFinder{records: map[common.PublicKey]nft.Record{}},
		store:      &stubChecker{detail: "ipfs node test"},
	}
}

func (e *cliTestEnv) chain() chainFactory {
	return chainFactory{
		minter: func(context.Context, *config.Config, types.Account, *slog.Logger) (minting.Client, func(), error) {
			return e.client, func() {}, nil
		},
		ledger: func(*config.Config, types.Account, *slog.Logger) funding.Ledger {
			return e.ledger
		},
		finder: func(endpoint string, _ *config.Config, _ *slog.Logger) clone.Finder {
			e.finderURL = endpoint
			return e.finder
		},
		store: func(context.Context, *config.Config, *slog.Logger) (storage.Checker, func(), error) {
			return e.store, func() {}, nil
		},
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommandWith(env.chain())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
