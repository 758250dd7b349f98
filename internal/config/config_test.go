package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cornercase/internal/config"
)

func TestLoadDefaultConfigExpandsPathsAndAppliesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "cornercase", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "solana", "id.json"); cfg.Signer.KeypairPath != want {
		t.Fatalf("keypair path: got %q want %q", cfg.Signer.KeypairPath, want)
	}
	if cfg.Network.RPCURL != "https://api.devnet.solana.com" {
		t.Fatalf("unexpected rpc url %q", cfg.Network.RPCURL)
	}
	if cfg.Stagger().Milliseconds() != 1000 {
		t.Fatalf("unexpected stagger %s", cfg.Stagger())
	}
	if cfg.Funding.FeePerTransaction != 5000 {
		t.Fatalf("unexpected fee %d", cfg.Funding.FeePerTransaction)
	}
	if cfg.Storage.Backend != config.StorageIPFS {
		t.Fatalf("unexpected backend %q", cfg.Storage.Backend)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	keypair := filepath.Join(t.TempDir(), "payer.json")
	t.Setenv("CORNERCASE_RPC_URL", "http://127.0.0.1:8899")
	t.Setenv("CORNERCASE_KEYPAIR", keypair)
	t.Setenv("CORNERCASE_STORAGE_BACKEND", "IPFS")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Network.RPCURL != "http://127.0.0.1:8899" {
		t.Fatalf("rpc url env override ignored: %q", cfg.Network.RPCURL)
	}
	if cfg.Signer.KeypairPath != keypair {
		t.Fatalf("keypair env override ignored: %q", cfg.Signer.KeypairPath)
	}
	if cfg.Storage.Backend != "ipfs" {
		t.Fatalf("backend should be lowercased, got %q", cfg.Storage.Backend)
	}
}

func TestLoadProjectFileWhenHomeConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	chdir(t, project)

	content := "[runner]\nstagger_ms = 250\nmax_concurrent = 4\n"
	if err := os.WriteFile(filepath.Join(project, "cornercase.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "cornercase.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Runner.StaggerMillis != 250 || cfg.Runner.MaxConcurrent != 4 {
		t.Fatalf("runner section not applied: %+v", cfg.Runner)
	}
	if cfg.Runner.JobTimeoutSeconds != 180 {
		t.Fatalf("unset keys should keep defaults, got %d", cfg.Runner.JobTimeoutSeconds)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown backend", content: "[storage]\nbackend = \"s3\"\n", want: "storage.backend"},
		{name: "gcs without bucket", content: "[storage]\nbackend = \"gcs\"\n", want: "storage.gcs_bucket"},
		{name: "bad commitment", content: "[network]\ncommitment = \"max\"\n", want: "network.commitment"},
		{name: "relative rpc url", content: "[network]\nrpc_url = \"localhost\"\n", want: "network.rpc_url"},
		{name: "negative stagger", content: "[runner]\nstagger_ms = -1\n", want: "runner.stagger_ms"},
		{name: "bad log format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
		{name: "unknown key", content: "[runner]\nparallel = true\n", want: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded map[string]any
	if err := toml.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("sample is not valid toml: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample) returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	defaults := config.Default()
	if cfg.Network.CloneSourceURL != defaults.Network.CloneSourceURL {
		t.Fatalf("sample clone source drifted from defaults: %q", cfg.Network.CloneSourceURL)
	}
	if cfg.Runner != defaults.Runner {
		t.Fatalf("sample runner drifted from defaults: %+v", cfg.Runner)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(oldwd, dir)
	}
	t.Setenv("PWD", dir)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing.Chdir: " + err.Error())
		}
	})
}
