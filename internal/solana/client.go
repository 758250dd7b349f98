package solana

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/logging"
	"cornercase/internal/storage"
)

// ErrAccountNotFound is returned when a required on-chain account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// rpcAPI is the subset of the blocto client used here.
type rpcAPI interface {
	GetBalance(ctx context.Context, base58Addr string) (uint64, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataLen uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*rpc.SignatureStatus, error)
	GetAccountInfoWithConfig(ctx context.Context, base58Addr string, cfg client.GetAccountInfoConfig) (client.AccountInfo, error)
}

// Options configures a Client.
type Options struct {
	// Commitment is the level a transaction must reach: processed, confirmed or finalized.
	Commitment     string
	ConfirmTimeout time.Duration
	// Uploader publishes metadata JSON; required by UploadMetadata only.
	Uploader      storage.Uploader
	UploadTimeout time.Duration
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// Client talks to one cluster on behalf of one signer. It is safe for
// concurrent use; every job shares the same instance.
type Client struct {
	rpc            rpcAPI
	payer          types.Account
	uploader       storage.Uploader
	http           *http.Client
	logger         *slog.Logger
	commitment     string
	confirmTimeout time.Duration
	uploadTimeout  time.Duration
	pollInterval   time.Duration
}

// New connects to endpoint. payer signs and pays for every transaction; it may be
// the zero account for read-only use.
func New(endpoint string, payer types.Account, opts Options) *Client {
	return newWithRPC(client.NewClient(endpoint), payer, opts)
}

func newWithRPC(api rpcAPI, payer types.Account, opts Options) *Client {
	c := &Client{
		rpc:            api,
		payer:          payer,
		uploader:       opts.Uploader,
		http:           opts.HTTPClient,
		logger:         logging.NewComponentLogger(opts.Logger, "solana"),
		commitment:     opts.Commitment,
		confirmTimeout: opts.ConfirmTimeout,
		uploadTimeout:  opts.UploadTimeout,
		pollInterval:   500 * time.Millisecond,
	}
	if c.commitment == "" {
		c.commitment = string(rpc.CommitmentConfirmed)
	}
	if c.confirmTimeout <= 0 {
		c.confirmTimeout = time.Minute
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}
