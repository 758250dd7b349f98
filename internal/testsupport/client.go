package testsupport

import (
	"context"
	"fmt"
	"sync"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/nft"
)

// Operation names recorded by FakeClient.
const (
	OpUpload           = "upload"
	OpCreate           = "create"
	OpVerifyCreator    = "verify_creator"
	OpVerifyCollection = "verify_collection"
	OpPrint            = "print"
)

// Call is one recorded FakeClient invocation.
type Call struct {
	Op       string
	Spec     nft.JobSpec
	Metadata nft.Metadata
	Mint     common.PublicKey
	Target   common.PublicKey
	Signer   common.PublicKey
	Returned common.PublicKey
}

// FakeClient is an in-memory minting client. Every Create and PrintNewEdition
// returns a fresh random address. Failures can be injected per operation.
type FakeClient struct {
	mu    sync.Mutex
	calls []Call
	fail  map[string]error
	// failCreateNamed fails Create only for specs with the given on-chain name.
	failCreateNamed map[string]error
	// Gateway prefixes the fake URIs returned by UploadMetadata.
	Gateway string
}

// NewFakeClient returns a client with no injected failures.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		fail:            map[string]error{},
		failCreateNamed: map[string]error{},
		Gateway:         "https://example.invalid/ipfs/",
	}
}

// FailOn makes every call of op return err.
func (c *FakeClient) FailOn(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail[op] = err
}

// FailCreate makes Create return err for specs named name.
func (c *FakeClient) FailCreate(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failCreateNamed[name] = err
}

// Calls returns a copy of the recorded calls in invocation order.
func (c *FakeClient) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallsFor returns the recorded calls of a single operation.
func (c *FakeClient) CallsFor(op string) []Call {
	var out []Call
	for _, call := range c.Calls() {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}

func (c *FakeClient) record(call Call) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
	if call.Op == OpCreate {
		if err, ok := c.failCreateNamed[call.Spec.Name]; ok {
			return err
		}
	}
	return c.fail[call.Op]
}

func (c *FakeClient) UploadMetadata(_ context.Context, meta nft.Metadata) (string, error) {
	if err := c.record(Call{Op: OpUpload, Metadata: meta}); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s", c.Gateway, types.NewAccount().PublicKey.ToBase58()), nil
}

func (c *FakeClient) Create(_ context.Context, spec nft.JobSpec) (common.PublicKey, error) {
	mint := types.NewAccount().PublicKey
	if err := c.record(Call{Op: OpCreate, Spec: spec, Returned: mint}); err != nil {
		return common.PublicKey{}, err
	}
	return mint, nil
}

func (c *FakeClient) VerifyCreator(_ context.Context, mint common.PublicKey, creator types.Account) error {
	return c.record(Call{Op: OpVerifyCreator, Mint: mint, Signer: creator.PublicKey})
}

func (c *FakeClient) VerifyCollection(_ context.Context, mint, collection common.PublicKey) error {
	return c.record(Call{Op: OpVerifyCollection, Mint: mint, Target: collection})
}

func (c *FakeClient) PrintNewEdition(_ context.Context, master, newOwner common.PublicKey) (common.PublicKey, error) {
	edition := types.NewAccount().PublicKey
	if err := c.record(Call{Op: OpPrint, Mint: master, Target: newOwner, Returned: edition}); err != nil {
		return common.PublicKey{}, err
	}
	return edition, nil
}
