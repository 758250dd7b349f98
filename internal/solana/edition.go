package solana

import (
	"fmt"

	"github.com/near/borsh-go"

	"cornercase/internal/nft"
)

// Token metadata account keys stored in the first byte of edition accounts.
const (
	keyEditionV1       uint8 = 1
	keyMasterEditionV1 uint8 = 2
	keyMasterEditionV2 uint8 = 6
)

type masterEditionAccount struct {
	Key       uint8
	Supply    uint64
	MaxSupply *uint64
}

type printEditionAccount struct {
	Key     uint8
	Parent  [32]byte
	Edition uint64
}

// editionInfo is the decoded state of the edition PDA of a mint.
type editionInfo struct {
	Kind      nft.EditionKind
	Supply    uint64
	MaxSupply *uint64
	// Number is the edition number of a print.
	Number uint64
}

// decodeEdition decodes a master or print edition account. Accounts are
// allocated larger than their content, so only the meaningful prefix is decoded.
func decodeEdition(data []byte) (editionInfo, error) {
	if len(data) == 0 {
		return editionInfo{}, fmt.Errorf("edition account: empty data")
	}
	switch data[0] {
	case keyMasterEditionV1, keyMasterEditionV2:
		const fixed = 1 + 8 + 1
		if len(data) < fixed {
			return editionInfo{}, fmt.Errorf("master edition account: %d bytes, want at least %d", len(data), fixed)
		}
		size := fixed
		if data[fixed-1] == 1 {
			size += 8
		}
		if len(data) < size {
			return editionInfo{}, fmt.Errorf("master edition account: %d bytes, want %d", len(data), size)
		}
		var acc masterEditionAccount
		if err := borsh.Deserialize(&acc, data[:size]); err != nil {
			return editionInfo{}, fmt.Errorf("decode master edition: %w", err)
		}
		return editionInfo{Kind: nft.EditionMaster, Supply: acc.Supply, MaxSupply: acc.MaxSupply}, nil
	case keyEditionV1:
		const size = 1 + 32 + 8
		if len(data) < size {
			return editionInfo{}, fmt.Errorf("edition account: %d bytes, want %d", len(data), size)
		}
		var acc printEditionAccount
		if err := borsh.Deserialize(&acc, data[:size]); err != nil {
			return editionInfo{}, fmt.Errorf("decode edition: %w", err)
		}
		return editionInfo{Kind: nft.EditionPrint, Number: acc.Edition}, nil
	default:
		return editionInfo{}, fmt.Errorf("edition account: unexpected key %d", data[0])
	}
}
