package testsupport

import (
	"path/filepath"
	"testing"

	"cornercase/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Launch stagger is disabled and a fresh keypair file is written as the signer.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Network.RPCURL = "http://127.0.0.1:8899"
	cfgVal.Runner.StaggerMillis = 0
	cfgVal.Funding.LockDir = filepath.Join(base, "locks")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	path, _ := WriteKeypair(t, base)
	cfgVal.Signer.KeypairPath = path

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStagger sets the launch stagger in milliseconds.
func WithStagger(ms int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Runner.StaggerMillis = ms
	}
}

// WithStorageBackend overrides storage.backend.
func WithStorageBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backend = backend
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Funding.LockDir)
}
