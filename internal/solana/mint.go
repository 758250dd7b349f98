package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/dustin/go-humanize"

	"cornercase/internal/logging"
	"cornercase/internal/nft"
	"cornercase/internal/storage"
)

// ErrNoUploader is returned by UploadMetadata when the client has no storage backend.
var ErrNoUploader = errors.New("no metadata uploader configured")

// UploadMetadata publishes meta as JSON and returns its URI.
func (c *Client) UploadMetadata(ctx context.Context, meta nft.Metadata) (string, error) {
	if c.uploader == nil {
		return "", ErrNoUploader
	}
	body, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	if c.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.uploadTimeout)
		defer cancel()
	}
	name := storage.ObjectName(".json")
	uri, err := c.uploader.Upload(ctx, name, body, "application/json")
	if err != nil {
		return "", err
	}
	logging.WithContext(ctx, c.logger).Debug("metadata uploaded",
		logging.String("uri", uri),
		logging.String("size", humanize.Bytes(uint64(len(body)))),
	)
	return uri, nil
}

// onChainCreators converts spec creators. A nil list makes the payer the sole
// creator. The payer's entry is marked verified since it signs the create.
func (c *Client) onChainCreators(creators []nft.Creator) *[]token_metadata.Creator {
	if creators == nil {
		return &[]token_metadata.Creator{{Address: c.payer.PublicKey, Verified: true, Share: 100}}
	}
	if len(creators) == 0 {
		return nil
	}
	out := make([]token_metadata.Creator, len(creators))
	for i, cr := range creators {
		out[i] = token_metadata.Creator{
			Address:  cr.Address,
			Verified: cr.Address == c.payer.PublicKey,
			Share:    cr.Share,
		}
	}
	return &out
}

// Create mints a new NFT in a single transaction: mint account, metadata,
// owner token account, one token, and the master edition.
func (c *Client) Create(ctx context.Context, spec nft.JobSpec) (common.PublicKey, error) {
	mint := types.NewAccount()
	owner := spec.TokenOwner
	if owner == (common.PublicKey{}) {
		owner = c.payer.PublicKey
	}

	ata, _, err := common.FindAssociatedTokenAddress(owner, mint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive token account: %w", err)
	}
	metadata, err := token_metadata.GetTokenMetaPubkey(mint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive metadata account: %w", err)
	}
	edition, err := token_metadata.GetMasterEdition(mint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive master edition account: %w", err)
	}
	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("get mint rent: %w", err)
	}

	var collection *token_metadata.Collection
	if spec.Collection != nil {
		collection = &token_metadata.Collection{Key: spec.Collection.Address}
	}

	ixs := []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     c.payer.PublicKey,
			New:      mint.PublicKey,
			Owner:    common.TokenProgramID,
			Lamports: rent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals:   0,
			Mint:       mint.PublicKey,
			MintAuth:   c.payer.PublicKey,
			FreezeAuth: &c.payer.PublicKey,
		}),
		token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
			Metadata:                metadata,
			Mint:                    mint.PublicKey,
			MintAuthority:           c.payer.PublicKey,
			UpdateAuthority:         c.payer.PublicKey,
			Payer:                   c.payer.PublicKey,
			UpdateAuthorityIsSigner: true,
			IsMutable:               !spec.Immutable,
			Data: token_metadata.DataV2{
				Name:                 spec.Name,
				Symbol:               spec.Symbol,
				Uri:                  spec.URI,
				SellerFeeBasisPoints: spec.SellerFeeBasisPoints,
				Creators:             c.onChainCreators(spec.Creators),
				Collection:           collection,
			},
		}),
		associated_token_account.CreateAssociatedTokenAccount(associated_token_account.CreateAssociatedTokenAccountParam{
			Funder:                 c.payer.PublicKey,
			Owner:                  owner,
			Mint:                   mint.PublicKey,
			AssociatedTokenAccount: ata,
		}),
		token.MintTo(token.MintToParam{
			Mint:   mint.PublicKey,
			To:     ata,
			Auth:   c.payer.PublicKey,
			Amount: 1,
		}),
		token_metadata.CreateMasterEditionV3(token_metadata.CreateMasterEditionParam{
			Edition:         edition,
			Mint:            mint.PublicKey,
			UpdateAuthority: c.payer.PublicKey,
			MintAuthority:   c.payer.PublicKey,
			Metadata:        metadata,
			Payer:           c.payer.PublicKey,
			MaxSupply:       spec.MaxSupply,
		}),
	}

	sig, err := c.sendAndConfirm(ctx, ixs, mint)
	if err != nil {
		return common.PublicKey{}, err
	}
	logging.WithContext(ctx, c.logger).Debug("mint created",
		logging.String("mint", mint.PublicKey.ToBase58()),
		logging.String("owner", owner.ToBase58()),
		logging.String("signature", sig),
	)
	return mint.PublicKey, nil
}

// VerifyCreator signs mint's metadata as creator.
func (c *Client) VerifyCreator(ctx context.Context, mint common.PublicKey, creator types.Account) error {
	metadata, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return fmt.Errorf("derive metadata account: %w", err)
	}
	ix, err := signMetadataIx(metadata, creator.PublicKey)
	if err != nil {
		return err
	}
	var extra []types.Account
	if creator.PublicKey != c.payer.PublicKey {
		extra = append(extra, creator)
	}
	_, err = c.sendAndConfirm(ctx, []types.Instruction{ix}, extra...)
	return err
}

// VerifyCollection verifies mint as a member of collection. The payer must be
// the collection's update authority.
func (c *Client) VerifyCollection(ctx context.Context, mint, collection common.PublicKey) error {
	metadata, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return fmt.Errorf("derive metadata account: %w", err)
	}
	collectionMetadata, err := token_metadata.GetTokenMetaPubkey(collection)
	if err != nil {
		return fmt.Errorf("derive collection metadata account: %w", err)
	}
	collectionEdition, err := token_metadata.GetMasterEdition(collection)
	if err != nil {
		return fmt.Errorf("derive collection edition account: %w", err)
	}
	ix, err := verifyCollectionIx(metadata, c.payer.PublicKey, c.payer.PublicKey, collection, collectionMetadata, collectionEdition)
	if err != nil {
		return err
	}
	_, err = c.sendAndConfirm(ctx, []types.Instruction{ix})
	return err
}

// PrintNewEdition prints the next edition of master into a new mint owned by
// newOwner. The payer must hold the master token.
func (c *Client) PrintNewEdition(ctx context.Context, master, newOwner common.PublicKey) (common.PublicKey, error) {
	masterEdition, err := token_metadata.GetMasterEdition(master)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive master edition account: %w", err)
	}
	info, err := c.readEdition(ctx, masterEdition)
	if err != nil {
		return common.PublicKey{}, err
	}
	if info.Kind != nft.EditionMaster {
		return common.PublicKey{}, fmt.Errorf("%s is not a master edition", master.ToBase58())
	}
	if info.MaxSupply != nil && info.Supply >= *info.MaxSupply {
		return common.PublicKey{}, fmt.Errorf("master %s has printed all %d editions", master.ToBase58(), *info.MaxSupply)
	}
	number := info.Supply + 1

	newMint := types.NewAccount()
	newATA, _, err := common.FindAssociatedTokenAddress(newOwner, newMint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive token account: %w", err)
	}
	masterATA, _, err := common.FindAssociatedTokenAddress(c.payer.PublicKey, master)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive master token account: %w", err)
	}
	newMetadata, err := token_metadata.GetTokenMetaPubkey(newMint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive metadata account: %w", err)
	}
	newEdition, err := token_metadata.GetMasterEdition(newMint.PublicKey)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive edition account: %w", err)
	}
	masterMetadata, err := token_metadata.GetTokenMetaPubkey(master)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive master metadata account: %w", err)
	}
	mark, err := editionMarkPDA(master, number)
	if err != nil {
		return common.PublicKey{}, err
	}
	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("get mint rent: %w", err)
	}

	printIx, err := mintNewEditionIx(mintNewEditionAccounts{
		NewMetadata:       newMetadata,
		NewEdition:        newEdition,
		MasterEdition:     masterEdition,
		NewMint:           newMint.PublicKey,
		EditionMark:       mark,
		NewMintAuthority:  c.payer.PublicKey,
		Payer:             c.payer.PublicKey,
		TokenAccountOwner: c.payer.PublicKey,
		TokenAccount:      masterATA,
		UpdateAuthority:   c.payer.PublicKey,
		MasterMetadata:    masterMetadata,
	}, number)
	if err != nil {
		return common.PublicKey{}, err
	}

	ixs := []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     c.payer.PublicKey,
			New:      newMint.PublicKey,
			Owner:    common.TokenProgramID,
			Lamports: rent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals:   0,
			Mint:       newMint.PublicKey,
			MintAuth:   c.payer.PublicKey,
			FreezeAuth: &c.payer.PublicKey,
		}),
		associated_token_account.CreateAssociatedTokenAccount(associated_token_account.CreateAssociatedTokenAccountParam{
			Funder:                 c.payer.PublicKey,
			Owner:                  newOwner,
			Mint:                   newMint.PublicKey,
			AssociatedTokenAccount: newATA,
		}),
		token.MintTo(token.MintToParam{
			Mint:   newMint.PublicKey,
			To:     newATA,
			Auth:   c.payer.PublicKey,
			Amount: 1,
		}),
		printIx,
	}

	if _, err := c.sendAndConfirm(ctx, ixs, newMint); err != nil {
		return common.PublicKey{}, err
	}
	logging.WithContext(ctx, c.logger).Debug("edition printed",
		logging.String("master", master.ToBase58()),
		logging.String("edition", newMint.PublicKey.ToBase58()),
		logging.Uint64("number", number),
	)
	return newMint.PublicKey, nil
}
