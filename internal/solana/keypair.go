package solana

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	gsolana "github.com/gagliardetto/solana-go"
)

// ErrInvalidAddress is returned for strings that are not base58 public keys.
var ErrInvalidAddress = errors.New("invalid address")

// LoadKeypair reads a solana-keygen JSON keypair file.
func LoadKeypair(path string) (types.Account, error) {
	key, err := gsolana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return types.Account{}, fmt.Errorf("load keypair %s: %w", path, err)
	}
	account, err := types.AccountFromBytes(key)
	if err != nil {
		return types.Account{}, fmt.Errorf("load keypair %s: %w", path, err)
	}
	return account, nil
}

// ParseAddress validates a base58 public key.
func ParseAddress(s string) (common.PublicKey, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return common.PublicKey{}, fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	pk, err := gsolana.PublicKeyFromBase58(trimmed)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, s, err)
	}
	return common.PublicKeyFromBytes(pk.Bytes()), nil
}
