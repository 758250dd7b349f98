package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"cornercase/internal/logging"
)

// IPFS adds documents to an IPFS node and links them through a public gateway.
type IPFS struct {
	shell   *ipfsapi.Shell
	gateway string
	logger  *slog.Logger
}

// NewIPFS connects to the node API at apiAddr (host:port or URL).
func NewIPFS(apiAddr, gateway string, logger *slog.Logger) *IPFS {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return &IPFS{
		shell:   ipfsapi.NewShell(apiAddr),
		gateway: gateway,
		logger:  logging.NewComponentLogger(logger, "storage.ipfs"),
	}
}

// Upload adds body to the node; name is only used for logging since IPFS
// addresses content by CID.
func (s *IPFS) Upload(ctx context.Context, name string, body []byte, _ string) (string, error) {
	type result struct {
		cid string
		err error
	}
	done := make(chan result, 1)
	go func() {
		cid, err := s.shell.Add(bytes.NewReader(body))
		done <- result{cid: cid, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ipfs add %s: %w", name, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("ipfs add %s: %w", name, res.err)
		}
		s.logger.Debug("document pinned", logging.String("name", name), logging.String("cid", res.cid))
		return s.gateway + res.cid, nil
	}
}

// Check asks the node for its version.
func (s *IPFS) Check(ctx context.Context) (string, error) {
	type result struct {
		version string
		err     error
	}
	done := make(chan result, 1)
	go func() {
		version, _, err := s.shell.Version()
		done <- result{version: version, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ipfs version: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("ipfs version: %w", res.err)
		}
		return "ipfs node " + res.version, nil
	}
}
