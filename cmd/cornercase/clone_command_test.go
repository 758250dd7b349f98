package main

import (
	"errors"
	"testing"

	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/nft"
	"cornercase/internal/solana"
	"cornercase/internal/testsupport"
)

func TestCloneMintsCopyFromSourceCluster(t *testing.T) {
	env := setupCLITestEnv(t)
	source := types.NewAccount().PublicKey
	creator := types.NewAccount().PublicKey
	env.finder.records[source] = nft.Record{
		Mint:      source,
		Name:      "Degen #1",
		URI:       "https://example.com/1.json",
		Creators:  []nft.Creator{{Address: creator, Share: 100, Verified: true}},
		IsMutable: true,
	}
	dest := types.NewAccount().PublicKey

	out, _, err := runCLI(t, env, "clone", source.ToBase58(), dest.ToBase58(), "--source-url", "https://source.example")
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	requireContains(t, out, "Clone of Degen #1")
	if env.finderURL != "https://source.example" {
		t.Fatalf("finder endpoint = %q", env.finderURL)
	}

	creates := env.client.CallsFor(testsupport.OpCreate)
	if len(creates) != 1 {
		t.Fatalf("got %d creates, want 1", len(creates))
	}
	spec := creates[0].Spec
	if spec.TokenOwner != dest || spec.URI != "https://example.com/1.json" {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.Creators[0].Verified {
		t.Fatal("cloned creators must be unverified")
	}
	requireContains(t, out, creates[0].Returned.ToBase58())
}

func TestCloneDefaultsToConfiguredSource(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "clone", types.NewAccount().PublicKey.ToBase58(), types.NewAccount().PublicKey.ToBase58())
	if !errors.Is(err, solana.ErrAccountNotFound) {
		t.Fatalf("got %v, want ErrAccountNotFound", err)
	}
	if env.finderURL != env.cfg.Network.CloneSourceURL {
		t.Fatalf("finder endpoint = %q, want %q", env.finderURL, env.cfg.Network.CloneSourceURL)
	}
	if len(env.client.Calls()) != 0 {
		t.Fatal("nothing should be minted when the source is missing")
	}
}
