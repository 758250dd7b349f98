package preflight

import (
	"context"

	"github.com/blocto/solana-go-sdk/common"

	"cornercase/internal/config"
	"cornercase/internal/storage"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Balancer reads an account balance from the target cluster.
type Balancer interface {
	Balance(ctx context.Context, addr common.PublicKey) (uint64, error)
}

// Probes are the network collaborators used by RunAll. A nil probe skips its check.
type Probes struct {
	Balance Balancer
	Storage storage.Checker
}

// RunAll executes every check that applies to cfg. The balance check only
// runs once the signer keypair has loaded.
func RunAll(ctx context.Context, cfg *config.Config, probes Probes) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	keypair, signer := CheckKeypair(cfg.Signer.KeypairPath)
	results = append(results, keypair)

	results = append(results, CheckDirectoryAccess("Lock directory", cfg.Funding.LockDir, true))
	if cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir, true))
	}

	if signer != nil && probes.Balance != nil {
		results = append(results, CheckBalance(ctx, probes.Balance, signer.PublicKey, cfg.Funding.FeePerTransaction))
	}

	if probes.Storage != nil {
		results = append(results, CheckStorage(ctx, "Metadata storage ("+cfg.Storage.Backend+")", probes.Storage))
	}

	return results
}

// Failed counts the checks that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
