package clone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blocto/solana-go-sdk/common"

	"cornercase/internal/logging"
	"cornercase/internal/nft"
)

// CaseID is the case label attached to cloned jobs.
const CaseID = "clone"

// Finder reads an existing token from the source network.
type Finder interface {
	FindByMint(ctx context.Context, mint common.PublicKey) (nft.Record, error)
}

// Executor mints a job on the target network.
type Executor interface {
	Execute(ctx context.Context, job nft.Job) (nft.Result, error)
}

// JobFromRecord builds a job that recreates rec as closely as the signer can
// without other parties' signatures. Creators and collection are copied
// unverified and no verification step is requested. The new token goes to dest.
func JobFromRecord(rec nft.Record, dest common.PublicKey) nft.Job {
	creators := make([]nft.Creator, len(rec.Creators))
	for i, c := range rec.Creators {
		creators[i] = nft.Creator{Address: c.Address, Share: c.Share}
	}

	spec := nft.JobSpec{
		Name:                 rec.Name,
		Symbol:               rec.Symbol,
		URI:                  rec.URI,
		SellerFeeBasisPoints: rec.SellerFeeBasisPoints,
		TokenOwner:           dest,
		Creators:             creators,
		Immutable:            !rec.IsMutable,
	}
	if rec.Collection != nil {
		spec.Collection = &nft.CollectionRef{Address: rec.Collection.Address}
	}
	switch rec.Edition {
	case nft.EditionMaster:
		if rec.MaxSupply != nil {
			supply := *rec.MaxSupply
			spec.MaxSupply = &supply
		}
	case nft.EditionPrint:
		var none uint64
		spec.MaxSupply = &none
	}

	name := rec.Name
	if name == "" {
		name = rec.Mint.ToBase58()
	}
	return nft.Job{Case: CaseID, Name: "Clone of " + name, Spec: spec}
}

// Clone reads source through finder and mints a copy to dest through exec.
func Clone(ctx context.Context, finder Finder, exec Executor, source, dest common.PublicKey, logger *slog.Logger) (nft.Job, nft.Result, error) {
	logger = logging.NewComponentLogger(logger, "clone")

	rec, err := finder.FindByMint(ctx, source)
	if err != nil {
		return nft.Job{}, nft.Result{}, fmt.Errorf("read source %s: %w", source.ToBase58(), err)
	}
	logger.Info("source nft loaded",
		logging.String("mint", source.ToBase58()),
		logging.String("name", rec.Name),
		logging.Int("creators", len(rec.Creators)),
		logging.String("edition", string(rec.Edition)),
	)

	job := JobFromRecord(rec, dest)
	result, err := exec.Execute(ctx, job)
	if err != nil {
		return job, result, fmt.Errorf("mint clone: %w", err)
	}
	return job, result, nil
}
