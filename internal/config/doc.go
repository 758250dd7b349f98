// Package config loads, normalizes, and validates cornercase configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CORNERCASE_RPC_URL and CORNERCASE_KEYPAIR. The Config type centralizes every
// knob the CLI needs: the cluster endpoints, the signer keypair, runner pacing,
// the metadata storage backend, funding fees, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
