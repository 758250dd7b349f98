package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/catalogue"
	"cornercase/internal/testsupport"
)

func TestCaseOwnCreatorMintsTwoJobs(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := types.NewAccount().PublicKey

	out, _, err := runCLI(t, env, "case", "own-creator", dest.ToBase58())
	if err != nil {
		t.Fatalf("case own-creator: %v", err)
	}
	requireContains(t, out, "NFT with own unverified creator")
	requireContains(t, out, "NFT with own verified creator")
	requireContains(t, out, "2 jobs: 2 succeeded, 0 failed")

	creates := env.client.CallsFor(testsupport.OpCreate)
	if len(creates) != 2 {
		t.Fatalf("got %d creates, want 2", len(creates))
	}
	for _, c := range creates {
		if len(c.Spec.Creators) != 1 || c.Spec.Creators[0].Address != dest {
			t.Fatalf("creators = %+v, want destination only", c.Spec.Creators)
		}
	}
}

func TestCreateRunsDefaultCatalogueAsJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := types.NewAccount().PublicKey

	out, _, err := runCLI(t, env, "create", dest.ToBase58(), "--json")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var outcomes []struct {
		Index int    `json:"index"`
		Case  string `json:"case"`
		OK    bool   `json:"ok"`
	}
	if err := json.Unmarshal([]byte(out), &outcomes); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := len(catalogue.Jobs(catalogue.Defaults(), dest))
	if len(outcomes) != want {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), want)
	}
	for i, o := range outcomes {
		if o.Index != i || !o.OK {
			t.Fatalf("outcome %d = %+v", i, o)
		}
	}
}

func TestFailedJobsExitZeroUnlessStrict(t *testing.T) {
	env := setupCLITestEnv(t)
	env.client.FailOn(testsupport.OpCreate, errors.New("rpc unavailable"))
	dest := types.NewAccount().PublicKey.ToBase58()

	out, _, err := runCLI(t, env, "case", "immutable", dest)
	if err != nil {
		t.Fatalf("non-strict run should succeed, got %v", err)
	}
	requireContains(t, out, "rpc unavailable")
	requireContains(t, out, "1 jobs: 0 succeeded, 1 failed")

	_, _, err = runCLI(t, env, "case", "immutable", dest, "--strict")
	if err == nil || !strings.Contains(err.Error(), "1 of 1 jobs failed") {
		t.Fatalf("strict run error = %v", err)
	}
}

func TestCaseRejectsBadInputBeforeMinting(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "case", "no-such-case", types.NewAccount().PublicKey.ToBase58())
	if !errors.Is(err, catalogue.ErrUnknownCase) {
		t.Fatalf("got %v, want ErrUnknownCase", err)
	}
	_, _, err = runCLI(t, env, "create", "not-an-address")
	if err == nil {
		t.Fatal("invalid destination should fail")
	}
	_, _, err = runCLI(t, env, "--keypair", "/does/not/exist.json", "create", types.NewAccount().PublicKey.ToBase58())
	if err == nil || !strings.Contains(err.Error(), "signer") {
		t.Fatalf("missing keypair error = %v", err)
	}
	if calls := env.client.Calls(); len(calls) != 0 {
		t.Fatalf("expected no chain calls, got %d", len(calls))
	}
}

func TestCasesListsCatalogue(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "cases")
	if err != nil {
		t.Fatalf("cases: %v", err)
	}
	for _, e := range catalogue.All() {
		requireContains(t, out, e.ID)
	}
	requireContains(t, out, "Default")
}
