package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Network contains the cluster endpoints and confirmation policy.
type Network struct {
	RPCURL string `toml:"rpc_url"`
	// CloneSourceURL is the cluster the clone command reads source NFTs from.
	CloneSourceURL        string `toml:"clone_source_url"`
	Commitment            string `toml:"commitment"`
	ConfirmTimeoutSeconds int    `toml:"confirm_timeout_seconds"`
}

// Signer identifies the keypair that pays for and authorizes every mint.
type Signer struct {
	KeypairPath string `toml:"keypair_path"`
}

// Runner controls how jobs are launched.
type Runner struct {
	StaggerMillis     int `toml:"stagger_ms"`
	JobTimeoutSeconds int `toml:"job_timeout_seconds"`
	// MaxConcurrent bounds in-flight jobs; 0 means unbounded.
	MaxConcurrent int `toml:"max_concurrent"`
}

// Storage selects where off-chain metadata JSON is published.
type Storage struct {
	Backend              string `toml:"backend"`
	IPFSAPI              string `toml:"ipfs_api"`
	IPFSGateway          string `toml:"ipfs_gateway"`
	GCSBucket            string `toml:"gcs_bucket"`
	GCSBaseURL           string `toml:"gcs_base_url"`
	GCSPrefix            string `toml:"gcs_prefix"`
	UploadTimeoutSeconds int    `toml:"upload_timeout_seconds"`
}

// Funding contains the fee model used by the dust command.
type Funding struct {
	FeePerTransaction uint64 `toml:"fee_per_transaction"`
	LockDir           string `toml:"lock_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	Dir        string `toml:"dir"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Config encapsulates all configuration values for cornercase.
//
// Configuration sections by subsystem:
//   - Network: RPC endpoints, commitment and confirmation timeout
//   - Signer: payer/authority keypair location
//   - Runner: launch stagger, per-job timeout, concurrency bound
//   - Storage: metadata JSON upload backend (ipfs or gcs)
//   - Funding: per-transaction fee and lock directory for dust
//   - Logging: log format, level, and optional rotating file
type Config struct {
	Network Network `toml:"network"`
	Signer  Signer  `toml:"signer"`
	Runner  Runner  `toml:"runner"`
	Storage Storage `toml:"storage"`
	Funding Funding `toml:"funding"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cornercase.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Stagger returns the delay between consecutive job launches.
func (c *Config) Stagger() time.Duration {
	return time.Duration(c.Runner.StaggerMillis) * time.Millisecond
}

// JobTimeout returns the per-job deadline, or zero when jobs are unbounded.
func (c *Config) JobTimeout() time.Duration {
	return time.Duration(c.Runner.JobTimeoutSeconds) * time.Second
}

// ConfirmTimeout returns how long a transaction may take to reach the configured commitment.
func (c *Config) ConfirmTimeout() time.Duration {
	return time.Duration(c.Network.ConfirmTimeoutSeconds) * time.Second
}

// UploadTimeout returns the deadline for a single metadata upload.
func (c *Config) UploadTimeout() time.Duration {
	return time.Duration(c.Storage.UploadTimeoutSeconds) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultLockDir() string {
	if base, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "cornercase")
	}
	return filepath.Join(os.TempDir(), "cornercase")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
