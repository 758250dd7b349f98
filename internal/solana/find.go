package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/rpc"

	"cornercase/internal/logging"
	"cornercase/internal/nft"
)

const maxJSONBytes = 1 << 20

func (c *Client) accountData(ctx context.Context, addr common.PublicKey) ([]byte, error) {
	info, err := c.rpc.GetAccountInfoWithConfig(ctx, addr.ToBase58(), client.GetAccountInfoConfig{
		Commitment: rpc.Commitment(c.commitment),
	})
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", addr.ToBase58(), err)
	}
	if len(info.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr.ToBase58())
	}
	return info.Data, nil
}

func (c *Client) readEdition(ctx context.Context, addr common.PublicKey) (editionInfo, error) {
	data, err := c.accountData(ctx, addr)
	if err != nil {
		return editionInfo{}, err
	}
	return decodeEdition(data)
}

// FindByMint loads the full record of an existing NFT. Missing edition data
// and an unreachable JSON document are tolerated; a missing metadata account is not.
func (c *Client) FindByMint(ctx context.Context, mint common.PublicKey) (nft.Record, error) {
	logger := logging.WithContext(ctx, c.logger)

	metadataAddr, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return nft.Record{}, fmt.Errorf("derive metadata account: %w", err)
	}
	data, err := c.accountData(ctx, metadataAddr)
	if err != nil {
		return nft.Record{}, err
	}
	md, err := token_metadata.MetadataDeserialize(data)
	if err != nil {
		return nft.Record{}, fmt.Errorf("decode metadata %s: %w", metadataAddr.ToBase58(), err)
	}
	rec := recordFromMetadata(md)

	editionAddr, err := token_metadata.GetMasterEdition(mint)
	if err != nil {
		return nft.Record{}, fmt.Errorf("derive edition account: %w", err)
	}
	if info, err := c.readEdition(ctx, editionAddr); err == nil {
		rec.Edition = info.Kind
		rec.Supply = info.Supply
		rec.MaxSupply = info.MaxSupply
	} else {
		logger.Debug("edition unavailable", logging.String("mint", mint.ToBase58()), logging.Error(err))
	}

	if rec.URI != "" {
		doc, err := c.fetchJSON(ctx, rec.URI)
		if err != nil {
			logger.Warn("off-chain json unavailable", logging.String("uri", rec.URI), logging.Error(err))
		} else {
			rec.JSON = doc
		}
	}
	return rec, nil
}

func trimPadding(s string) string {
	return strings.TrimRight(s, "\x00")
}

func recordFromMetadata(md token_metadata.Metadata) nft.Record {
	rec := nft.Record{
		Mint:                 md.Mint,
		UpdateAuthority:      md.UpdateAuthority,
		Name:                 trimPadding(md.Data.Name),
		Symbol:               trimPadding(md.Data.Symbol),
		URI:                  trimPadding(md.Data.Uri),
		SellerFeeBasisPoints: md.Data.SellerFeeBasisPoints,
		IsMutable:            md.IsMutable,
		PrimarySaleHappened:  md.PrimarySaleHappened,
	}
	if md.Data.Creators != nil {
		for _, cr := range *md.Data.Creators {
			rec.Creators = append(rec.Creators, nft.Creator{Address: cr.Address, Share: cr.Share, Verified: cr.Verified})
		}
	}
	if md.Collection != nil {
		rec.Collection = &nft.CollectionRef{Address: md.Collection.Key, Verified: md.Collection.Verified}
	}
	return rec
}

func (c *Client) fetchJSON(ctx context.Context, uri string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", uri, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: body is not json", uri)
	}
	return json.RawMessage(body), nil
}
