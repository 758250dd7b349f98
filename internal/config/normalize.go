package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeNetwork()
	if err := c.normalizeSigner(); err != nil {
		return err
	}
	c.normalizeStorage()
	if err := c.normalizeFunding(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeNetwork() {
	if value, ok := os.LookupEnv("CORNERCASE_RPC_URL"); ok && strings.TrimSpace(value) != "" {
		c.Network.RPCURL = value
	}
	c.Network.RPCURL = strings.TrimSpace(c.Network.RPCURL)
	if c.Network.RPCURL == "" {
		c.Network.RPCURL = defaultRPCURL
	}
	c.Network.CloneSourceURL = strings.TrimSpace(c.Network.CloneSourceURL)
	if c.Network.CloneSourceURL == "" {
		c.Network.CloneSourceURL = defaultCloneSourceURL
	}
	c.Network.Commitment = strings.ToLower(strings.TrimSpace(c.Network.Commitment))
	if c.Network.Commitment == "" {
		c.Network.Commitment = defaultCommitment
	}
	if c.Network.ConfirmTimeoutSeconds <= 0 {
		c.Network.ConfirmTimeoutSeconds = defaultConfirmTimeoutSeconds
	}
}

func (c *Config) normalizeSigner() error {
	if value, ok := os.LookupEnv("CORNERCASE_KEYPAIR"); ok && strings.TrimSpace(value) != "" {
		c.Signer.KeypairPath = value
	}
	if strings.TrimSpace(c.Signer.KeypairPath) == "" {
		c.Signer.KeypairPath = defaultKeypairPath
	}
	var err error
	if c.Signer.KeypairPath, err = expandPath(strings.TrimSpace(c.Signer.KeypairPath)); err != nil {
		return fmt.Errorf("signer.keypair_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeStorage() {
	if value, ok := os.LookupEnv("CORNERCASE_STORAGE_BACKEND"); ok && strings.TrimSpace(value) != "" {
		c.Storage.Backend = value
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultStorageBackend
	}
	c.Storage.IPFSAPI = strings.TrimSpace(c.Storage.IPFSAPI)
	if c.Storage.IPFSAPI == "" {
		c.Storage.IPFSAPI = defaultIPFSAPI
	}
	c.Storage.IPFSGateway = strings.TrimSpace(c.Storage.IPFSGateway)
	if c.Storage.IPFSGateway == "" {
		c.Storage.IPFSGateway = defaultIPFSGateway
	}
	if !strings.HasSuffix(c.Storage.IPFSGateway, "/") {
		c.Storage.IPFSGateway += "/"
	}
	c.Storage.GCSBucket = strings.TrimSpace(c.Storage.GCSBucket)
	c.Storage.GCSBaseURL = strings.TrimRight(strings.TrimSpace(c.Storage.GCSBaseURL), "/")
	if c.Storage.GCSBaseURL == "" {
		c.Storage.GCSBaseURL = defaultGCSBaseURL
	}
	c.Storage.GCSPrefix = strings.Trim(strings.TrimSpace(c.Storage.GCSPrefix), "/")
	if c.Storage.UploadTimeoutSeconds <= 0 {
		c.Storage.UploadTimeoutSeconds = defaultUploadTimeoutSeconds
	}
}

func (c *Config) normalizeFunding() error {
	if c.Funding.FeePerTransaction == 0 {
		c.Funding.FeePerTransaction = defaultFeePerTransaction
	}
	if strings.TrimSpace(c.Funding.LockDir) == "" {
		c.Funding.LockDir = defaultLockDir()
	}
	var err error
	if c.Funding.LockDir, err = expandPath(strings.TrimSpace(c.Funding.LockDir)); err != nil {
		return fmt.Errorf("funding.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
