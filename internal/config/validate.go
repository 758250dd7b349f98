package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNetwork(); err != nil {
		return err
	}
	if err := c.validateRunner(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateNetwork() error {
	for name, raw := range map[string]string{
		"network.rpc_url":          c.Network.RPCURL,
		"network.clone_source_url": c.Network.CloneSourceURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	switch c.Network.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return fmt.Errorf("network.commitment: unsupported value %q (want processed, confirmed or finalized)", c.Network.Commitment)
	}
	return nil
}

func (c *Config) validateRunner() error {
	if c.Runner.StaggerMillis < 0 {
		return errors.New("runner.stagger_ms must be zero or positive")
	}
	if c.Runner.JobTimeoutSeconds < 0 {
		return errors.New("runner.job_timeout_seconds must be zero or positive")
	}
	if c.Runner.MaxConcurrent < 0 {
		return errors.New("runner.max_concurrent must be zero or positive")
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case StorageIPFS:
		if !strings.HasPrefix(c.Storage.IPFSGateway, "http://") && !strings.HasPrefix(c.Storage.IPFSGateway, "https://") {
			return fmt.Errorf("storage.ipfs_gateway must be an http(s) URL, got %q", c.Storage.IPFSGateway)
		}
	case StorageGCS:
		if c.Storage.GCSBucket == "" {
			return errors.New("storage.gcs_bucket must be set when storage.backend is gcs")
		}
	default:
		return fmt.Errorf("storage.backend: unsupported value %q (want ipfs or gcs)", c.Storage.Backend)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
