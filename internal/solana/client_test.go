package solana

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/nft"
)

type fakeRPC struct {
	mu       sync.Mutex
	sent     []types.Transaction
	statuses []*rpc.SignatureStatus
	polls    int
	accounts map[string][]byte
	balance  uint64
}

func commitment(c rpc.Commitment) *rpc.SignatureStatus {
	return &rpc.SignatureStatus{ConfirmationStatus: &c}
}

func (f *fakeRPC) GetBalance(context.Context, string) (uint64, error) { return f.balance, nil }

func (f *fakeRPC) GetMinimumBalanceForRentExemption(_ context.Context, n uint64) (uint64, error) {
	return 890880 + n*6960, nil
}

func (f *fakeRPC) GetLatestBlockhash(context.Context) (rpc.GetLatestBlockhashValue, error) {
	return rpc.GetLatestBlockhashValue{Blockhash: types.NewAccount().PublicKey.ToBase58()}, nil
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx types.Transaction) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return "sig-1", nil
}

func (f *fakeRPC) GetSignatureStatus(context.Context, string) (*rpc.SignatureStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if len(f.statuses) == 0 {
		return nil, nil
	}
	st := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return st, nil
}

func (f *fakeRPC) GetAccountInfoWithConfig(_ context.Context, addr string, _ client.GetAccountInfoConfig) (client.AccountInfo, error) {
	return client.AccountInfo{Data: f.accounts[addr]}, nil
}

func newTestClient(api *fakeRPC, opts Options) *Client {
	c := newWithRPC(api, types.NewAccount(), opts)
	c.pollInterval = time.Millisecond
	return c
}

func TestTransferWaitsForCommitment(t *testing.T) {
	api := &fakeRPC{statuses: []*rpc.SignatureStatus{
		nil,
		commitment(rpc.CommitmentProcessed),
		commitment(rpc.CommitmentConfirmed),
	}}
	c := newTestClient(api, Options{Commitment: "confirmed"})

	sig, err := c.Transfer(context.Background(), types.NewAccount().PublicKey, 42)
	if err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
	if sig != "sig-1" {
		t.Fatalf("signature = %q", sig)
	}
	if len(api.sent) != 1 {
		t.Fatalf("sent %d transactions, want 1", len(api.sent))
	}
	if api.polls != 3 {
		t.Fatalf("polled %d times, want 3", api.polls)
	}
}

func TestFinalizedCommitmentIgnoresConfirmed(t *testing.T) {
	api := &fakeRPC{statuses: []*rpc.SignatureStatus{commitment(rpc.CommitmentConfirmed)}}
	c := newTestClient(api, Options{Commitment: "finalized", ConfirmTimeout: 30 * time.Millisecond})

	_, err := c.Transfer(context.Background(), types.NewAccount().PublicKey, 1)
	if !errors.Is(err, ErrConfirmTimeout) {
		t.Fatalf("got %v, want ErrConfirmTimeout", err)
	}
}

func TestFailedTransactionReportsError(t *testing.T) {
	st := commitment(rpc.CommitmentConfirmed)
	st.Err = map[string]any{"InstructionError": []any{0, "Custom"}}
	api := &fakeRPC{statuses: []*rpc.SignatureStatus{st}}

	_, err := newTestClient(api, Options{}).Transfer(context.Background(), types.NewAccount().PublicKey, 1)
	if err == nil || !strings.Contains(err.Error(), "failed") {
		t.Fatalf("got %v, want transaction failure", err)
	}
}

func TestFindByMintMissingMetadata(t *testing.T) {
	c := newTestClient(&fakeRPC{}, Options{})
	_, err := c.FindByMint(context.Background(), types.NewAccount().PublicKey)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("got %v, want ErrAccountNotFound", err)
	}
}

func TestPrintNewEditionRefusesExhaustedMaster(t *testing.T) {
	master := types.NewAccount().PublicKey
	edition, err := token_metadata.GetMasterEdition(master)
	if err != nil {
		t.Fatalf("GetMasterEdition: %v", err)
	}
	five := uint64(5)
	api := &fakeRPC{accounts: map[string][]byte{
		edition.ToBase58(): masterEditionBytes(keyMasterEditionV2, 5, &five),
	}}

	_, err = newTestClient(api, Options{}).PrintNewEdition(context.Background(), master, types.NewAccount().PublicKey)
	if err == nil || !strings.Contains(err.Error(), "printed all 5") {
		t.Fatalf("got %v, want exhausted supply error", err)
	}
	if len(api.sent) != 0 {
		t.Fatal("no transaction should be sent")
	}
}

func TestOnChainCreators(t *testing.T) {
	c := newTestClient(&fakeRPC{}, Options{})
	other := types.NewAccount().PublicKey

	def := c.onChainCreators(nil)
	if def == nil || len(*def) != 1 || (*def)[0].Address != c.Payer() || !(*def)[0].Verified || (*def)[0].Share != 100 {
		t.Fatalf("default creators = %+v", def)
	}
	if got := c.onChainCreators([]nft.Creator{}); got != nil {
		t.Fatalf("empty creators should encode as none, got %+v", *got)
	}
	mixed := c.onChainCreators([]nft.Creator{{Address: c.Payer(), Share: 0}, {Address: other, Share: 100, Verified: true}})
	if !(*mixed)[0].Verified {
		t.Fatal("payer creator should be verified at create")
	}
	if (*mixed)[1].Verified {
		t.Fatal("other creators must start unverified")
	}
}

func TestRecordFromMetadata(t *testing.T) {
	creator, collection := types.NewAccount().PublicKey, types.NewAccount().PublicKey
	creators := []token_metadata.Creator{{Address: creator, Verified: true, Share: 100}}
	md := token_metadata.Metadata{
		UpdateAuthority: types.NewAccount().PublicKey,
		Mint:            types.NewAccount().PublicKey,
		Data: token_metadata.Data{
			Name:                 "Degen\x00\x00\x00",
			Symbol:               "DGN\x00",
			Uri:                  "https://example.com/1.json\x00\x00",
			SellerFeeBasisPoints: 500,
			Creators:             &creators,
		},
		IsMutable:  true,
		Collection: &token_metadata.Collection{Verified: true, Key: collection},
	}

	rec := recordFromMetadata(md)
	if rec.Name != "Degen" || rec.Symbol != "DGN" || rec.URI != "https://example.com/1.json" {
		t.Fatalf("padding not trimmed: %q %q %q", rec.Name, rec.Symbol, rec.URI)
	}
	if len(rec.Creators) != 1 || rec.Creators[0] != (nft.Creator{Address: creator, Share: 100, Verified: true}) {
		t.Fatalf("creators = %+v", rec.Creators)
	}
	if rec.Collection == nil || rec.Collection.Address != collection || !rec.Collection.Verified {
		t.Fatalf("collection = %+v", rec.Collection)
	}
	if rec.Mint != md.Mint || rec.SellerFeeBasisPoints != 500 || !rec.IsMutable {
		t.Fatalf("record = %+v", rec)
	}
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			_, _ = w.Write([]byte(`{"name":"x"}`))
		case "/html":
			_, _ = w.Write([]byte(`<html></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(&fakeRPC{}, Options{HTTPClient: srv.Client()})
	doc, err := c.fetchJSON(context.Background(), srv.URL+"/ok.json")
	if err != nil || string(doc) != `{"name":"x"}` {
		t.Fatalf("fetchJSON = %s, %v", doc, err)
	}
	for _, p := range []string{"/html", "/missing"} {
		if _, err := c.fetchJSON(context.Background(), srv.URL+p); err == nil {
			t.Fatalf("fetchJSON(%s) should fail", p)
		}
	}
}

type memUploader struct {
	name, contentType string
	body              []byte
}

func (m *memUploader) Upload(_ context.Context, name string, body []byte, contentType string) (string, error) {
	m.name, m.body, m.contentType = name, body, contentType
	return "https://gateway.example/" + name, nil
}

func TestUploadMetadata(t *testing.T) {
	up := &memUploader{}
	c := newTestClient(&fakeRPC{}, Options{Uploader: up})

	uri, err := c.UploadMetadata(context.Background(), nft.Metadata{Name: "x", AnimationURL: "https://a/b.glb"})
	if err != nil {
		t.Fatalf("UploadMetadata returned error: %v", err)
	}
	if uri != "https://gateway.example/"+up.name || up.contentType != "application/json" {
		t.Fatalf("uri %q content type %q", uri, up.contentType)
	}
	if !strings.Contains(string(up.body), `"animation_url":"https://a/b.glb"`) {
		t.Fatalf("unexpected body %s", up.body)
	}

	if _, err := newTestClient(&fakeRPC{}, Options{}).UploadMetadata(context.Background(), nft.Metadata{}); !errors.Is(err, ErrNoUploader) {
		t.Fatalf("got %v, want ErrNoUploader", err)
	}
}

