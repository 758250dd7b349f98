package solana

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/blocto/solana-go-sdk/types"
)

func TestSignMetadataIx(t *testing.T) {
	metadata, creator := types.NewAccount().PublicKey, types.NewAccount().PublicKey
	ix, err := signMetadataIx(metadata, creator)
	if err != nil {
		t.Fatalf("signMetadataIx returned error: %v", err)
	}
	if ix.ProgramID != tokenMetadataProgramID {
		t.Fatalf("program = %s", ix.ProgramID.ToBase58())
	}
	if !bytes.Equal(ix.Data, []byte{7}) {
		t.Fatalf("data = %v, want [7]", ix.Data)
	}
	if len(ix.Accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(ix.Accounts))
	}
	if ix.Accounts[0].PubKey != metadata || !ix.Accounts[0].IsWritable || ix.Accounts[0].IsSigner {
		t.Fatalf("metadata meta = %+v", ix.Accounts[0])
	}
	if ix.Accounts[1].PubKey != creator || !ix.Accounts[1].IsSigner {
		t.Fatalf("creator meta = %+v", ix.Accounts[1])
	}
}

func TestVerifyCollectionIx(t *testing.T) {
	keys := make([]types.Account, 6)
	for i := range keys {
		keys[i] = types.NewAccount()
	}
	ix, err := verifyCollectionIx(keys[0].PublicKey, keys[1].PublicKey, keys[2].PublicKey, keys[3].PublicKey, keys[4].PublicKey, keys[5].PublicKey)
	if err != nil {
		t.Fatalf("verifyCollectionIx returned error: %v", err)
	}
	if !bytes.Equal(ix.Data, []byte{18}) {
		t.Fatalf("data = %v, want [18]", ix.Data)
	}
	signers := 0
	for i, meta := range ix.Accounts {
		if meta.PubKey != keys[i].PublicKey {
			t.Fatalf("account %d out of order", i)
		}
		if meta.IsSigner {
			signers++
		}
	}
	if signers != 2 {
		t.Fatalf("got %d signers, want authority and payer", signers)
	}
}

func TestMintNewEditionIxEncodesEditionNumber(t *testing.T) {
	ix, err := mintNewEditionIx(mintNewEditionAccounts{}, 300)
	if err != nil {
		t.Fatalf("mintNewEditionIx returned error: %v", err)
	}
	if len(ix.Data) != 9 || ix.Data[0] != 11 {
		t.Fatalf("data = %v", ix.Data)
	}
	if got := binary.LittleEndian.Uint64(ix.Data[1:]); got != 300 {
		t.Fatalf("edition = %d, want 300", got)
	}
	if len(ix.Accounts) != 14 {
		t.Fatalf("got %d accounts, want 14", len(ix.Accounts))
	}
	if ix.Accounts[11].PubKey != tokenProgramID || ix.Accounts[13].PubKey != rentSysvarID {
		t.Fatal("program accounts out of order")
	}
}

func TestEditionMarkPDAGroupsBy248(t *testing.T) {
	master := types.NewAccount().PublicKey
	first, err := editionMarkPDA(master, 1)
	if err != nil {
		t.Fatalf("editionMarkPDA returned error: %v", err)
	}
	sameBucket, err := editionMarkPDA(master, 247)
	if err != nil {
		t.Fatalf("editionMarkPDA returned error: %v", err)
	}
	nextBucket, err := editionMarkPDA(master, 248)
	if err != nil {
		t.Fatalf("editionMarkPDA returned error: %v", err)
	}
	if first != sameBucket {
		t.Fatal("editions 1 and 247 should share a marker")
	}
	if first == nextBucket {
		t.Fatal("edition 248 should use the next marker")
	}
}
