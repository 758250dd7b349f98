package minting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/logging"
	"cornercase/internal/nft"
	"cornercase/internal/runner"
)

// Client is the chain collaborator a job is executed against.
type Client interface {
	// UploadMetadata publishes the off-chain JSON and returns its URI.
	UploadMetadata(ctx context.Context, meta nft.Metadata) (string, error)
	// Create mints a new NFT described by spec and returns its mint address.
	Create(ctx context.Context, spec nft.JobSpec) (common.PublicKey, error)
	// VerifyCreator flips the verified flag of creator on mint's metadata.
	VerifyCreator(ctx context.Context, mint common.PublicKey, creator types.Account) error
	// VerifyCollection marks mint as a verified member of collection.
	VerifyCollection(ctx context.Context, mint, collection common.PublicKey) error
	// PrintNewEdition prints the next edition of master to newOwner and returns its mint.
	PrintNewEdition(ctx context.Context, master, newOwner common.PublicKey) (common.PublicKey, error)
}

// Executor turns catalogue jobs into chain calls.
type Executor struct {
	client Client
	logger *slog.Logger
}

// NewExecutor constructs an executor over client.
func NewExecutor(client Client, logger *slog.Logger) *Executor {
	return &Executor{client: client, logger: logging.NewComponentLogger(logger, "minting")}
}

// Execute runs every step of job in order: collection prerequisite, metadata upload,
// create, creator verification, collection verification, edition print. When a step
// after create fails, the returned Result still carries the created mint.
func (e *Executor) Execute(ctx context.Context, job nft.Job) (nft.Result, error) {
	var result nft.Result
	if err := job.Validate(); err != nil {
		return result, err
	}
	logger := logging.WithContext(ctx, e.logger)
	spec := job.Spec

	if job.Collection != nil {
		collection, err := e.mint(ctx, *job.Collection)
		if err != nil {
			return result, fmt.Errorf("create collection: %w", err)
		}
		result.AddArtifact("collection", collection)
		ref := *spec.Collection
		ref.Address = collection
		spec.Collection = &ref
		logger.Debug("collection prerequisite minted", logging.String("collection", collection.ToBase58()))
	}

	mint, err := e.mint(ctx, spec)
	if err != nil {
		return result, err
	}
	result.Address = mint
	logger.Info("nft created", logging.String("mint", mint.ToBase58()))

	if job.CreatorSigner != nil {
		if err := e.client.VerifyCreator(ctx, mint, *job.CreatorSigner); err != nil {
			return result, fmt.Errorf("verify creator %s: %w", job.CreatorSigner.PublicKey.ToBase58(), err)
		}
		logger.Debug("creator verified", logging.String("creator", job.CreatorSigner.PublicKey.ToBase58()))
	}

	if spec.Collection != nil && spec.Collection.Verify {
		if err := e.client.VerifyCollection(ctx, mint, spec.Collection.Address); err != nil {
			return result, fmt.Errorf("verify collection: %w", err)
		}
		logger.Debug("collection verified", logging.String("collection", spec.Collection.Address.ToBase58()))
	}

	if job.Print != nil {
		edition, err := e.client.PrintNewEdition(ctx, mint, job.Print.NewOwner)
		if err != nil {
			return result, fmt.Errorf("print edition: %w", err)
		}
		result.AddArtifact("edition", edition)
		logger.Info("edition printed",
			logging.String("edition", edition.ToBase58()),
			logging.String("owner", job.Print.NewOwner.ToBase58()),
		)
	}
	return result, nil
}

// mint uploads spec's metadata when present and creates the token.
func (e *Executor) mint(ctx context.Context, spec nft.JobSpec) (common.PublicKey, error) {
	if spec.Metadata != nil {
		uri, err := e.client.UploadMetadata(ctx, *spec.Metadata)
		if err != nil {
			return common.PublicKey{}, fmt.Errorf("upload metadata: %w", err)
		}
		spec.URI = uri
		if spec.Name == "" {
			spec.Name = nft.DefaultName
		}
	}
	mint, err := e.client.Create(ctx, spec)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("create: %w", err)
	}
	return mint, nil
}

// Tasks wraps jobs as runner tasks, preserving order.
func (e *Executor) Tasks(jobs []nft.Job) []runner.Task {
	tasks := make([]runner.Task, len(jobs))
	for i, job := range jobs {
		job := job // per-iteration copy; go.mod targets go1.21 loop semantics
		tasks[i] = runner.Task{
			Case: job.Case,
			Name: job.Name,
			Run: func(ctx context.Context) (nft.Result, error) {
				return e.Execute(ctx, job)
			},
		}
	}
	return tasks
}
