package config

const (
	defaultConfigPath            = "~/.config/cornercase/config.toml"
	defaultRPCURL                = "https://api.devnet.solana.com"
	defaultCloneSourceURL        = "https://api.mainnet-beta.solana.com"
	defaultCommitment            = "confirmed"
	defaultConfirmTimeoutSeconds = 60
	defaultKeypairPath           = "~/.config/solana/id.json"
	defaultStaggerMillis         = 1000
	defaultJobTimeoutSeconds     = 180
	defaultStorageBackend        = StorageIPFS
	defaultIPFSAPI               = "localhost:5001"
	defaultIPFSGateway           = "https://ipfs.io/ipfs/"
	defaultGCSBaseURL            = "https://storage.googleapis.com"
	defaultGCSPrefix             = "metadata"
	defaultUploadTimeoutSeconds  = 60
	defaultFeePerTransaction     = 5000
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultLogMaxSizeMB          = 10
	defaultLogMaxBackups         = 3
)

// Storage backend identifiers accepted by storage.backend.
const (
	StorageIPFS = "ipfs"
	StorageGCS  = "gcs"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Network: Network{
			RPCURL:                defaultRPCURL,
			CloneSourceURL:        defaultCloneSourceURL,
			Commitment:            defaultCommitment,
			ConfirmTimeoutSeconds: defaultConfirmTimeoutSeconds,
		},
		Signer: Signer{
			KeypairPath: defaultKeypairPath,
		},
		Runner: Runner{
			StaggerMillis:     defaultStaggerMillis,
			JobTimeoutSeconds: defaultJobTimeoutSeconds,
		},
		Storage: Storage{
			Backend:              defaultStorageBackend,
			IPFSAPI:              defaultIPFSAPI,
			IPFSGateway:          defaultIPFSGateway,
			GCSBaseURL:           defaultGCSBaseURL,
			GCSPrefix:            defaultGCSPrefix,
			UploadTimeoutSeconds: defaultUploadTimeoutSeconds,
		},
		Funding: Funding{
			FeePerTransaction: defaultFeePerTransaction,
			LockDir:           defaultLockDir(),
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
