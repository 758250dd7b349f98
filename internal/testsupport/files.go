package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/blocto/solana-go-sdk/types"
)

// WriteKeypair writes a fresh keypair under dir in the solana-keygen JSON format
// (an array of 64 byte values) and returns the file path and the account.
func WriteKeypair(t testing.TB, dir string) (string, types.Account) {
	t.Helper()

	account := types.NewAccount()
	raw := make([]int, len(account.PrivateKey))
	for i, b := range account.PrivateKey {
		raw[i] = int(b)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal keypair: %v", err)
	}

	path := filepath.Join(dir, "id.json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path, account
}
