package solana

import (
	"fmt"
	"strconv"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
)

// Well-known program and sysvar ids.
var (
	tokenMetadataProgramID = common.PublicKeyFromString("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	systemProgramID        = common.PublicKeyFromString("11111111111111111111111111111111")
	tokenProgramID         = common.PublicKeyFromString("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	rentSysvarID           = common.PublicKeyFromString("SysvarRent111111111111111111111111111111111")
)

// Token metadata instruction discriminators.
const (
	ixSignMetadata                            uint8 = 7
	ixMintNewEditionFromMasterEditionViaToken uint8 = 11
	ixVerifyCollection                        uint8 = 18
)

// editionMarkerBitSize is the number of editions tracked by one edition marker account.
const editionMarkerBitSize = 248

type bareInstruction struct {
	Instruction uint8
}

type mintNewEditionData struct {
	Instruction uint8
	Edition     uint64
}

func encode(v any) ([]byte, error) {
	data, err := borsh.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return data, nil
}

// signMetadataIx flips the verified flag of creator on metadata.
// Accounts:
// 0. [writable] metadata
// 1. [signer] creator
func signMetadataIx(metadata, creator common.PublicKey) (types.Instruction, error) {
	data, err := encode(bareInstruction{Instruction: ixSignMetadata})
	if err != nil {
		return types.Instruction{}, err
	}
	return types.Instruction{
		ProgramID: tokenMetadataProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: metadata, IsSigner: false, IsWritable: true},
			{PubKey: creator, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}, nil
}

// verifyCollectionIx marks metadata as a verified member of an unsized collection.
// Accounts:
// 0. [writable] metadata
// 1. [writable,signer] collection update authority
// 2. [writable,signer] payer
// 3. [] collection mint
// 4. [] collection metadata
// 5. [] collection master edition
func verifyCollectionIx(metadata, authority, payer, collectionMint, collectionMetadata, collectionEdition common.PublicKey) (types.Instruction, error) {
	data, err := encode(bareInstruction{Instruction: ixVerifyCollection})
	if err != nil {
		return types.Instruction{}, err
	}
	return types.Instruction{
		ProgramID: tokenMetadataProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: metadata, IsSigner: false, IsWritable: true},
			{PubKey: authority, IsSigner: true, IsWritable: true},
			{PubKey: payer, IsSigner: true, IsWritable: true},
			{PubKey: collectionMint, IsSigner: false, IsWritable: false},
			{PubKey: collectionMetadata, IsSigner: false, IsWritable: false},
			{PubKey: collectionEdition, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

type mintNewEditionAccounts struct {
	NewMetadata       common.PublicKey
	NewEdition        common.PublicKey
	MasterEdition     common.PublicKey
	NewMint           common.PublicKey
	EditionMark       common.PublicKey
	NewMintAuthority  common.PublicKey
	Payer             common.PublicKey
	TokenAccountOwner common.PublicKey
	TokenAccount      common.PublicKey
	UpdateAuthority   common.PublicKey
	MasterMetadata    common.PublicKey
}

// mintNewEditionIx prints edition number `edition` of a master into a freshly minted token.
// Accounts:
// 0.  [writable] new metadata
// 1.  [writable] new edition
// 2.  [writable] master edition
// 3.  [writable] new mint
// 4.  [writable] edition marker
// 5.  [signer] new mint authority
// 6.  [writable,signer] payer
// 7.  [signer] owner of the token account holding the master
// 8.  [] token account holding the master
// 9.  [] update authority of the new metadata
// 10. [] master metadata
// 11. [] token program
// 12. [] system program
// 13. [] rent sysvar
func mintNewEditionIx(a mintNewEditionAccounts, edition uint64) (types.Instruction, error) {
	data, err := encode(mintNewEditionData{Instruction: ixMintNewEditionFromMasterEditionViaToken, Edition: edition})
	if err != nil {
		return types.Instruction{}, err
	}
	return types.Instruction{
		ProgramID: tokenMetadataProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: a.NewMetadata, IsSigner: false, IsWritable: true},
			{PubKey: a.NewEdition, IsSigner: false, IsWritable: true},
			{PubKey: a.MasterEdition, IsSigner: false, IsWritable: true},
			{PubKey: a.NewMint, IsSigner: false, IsWritable: true},
			{PubKey: a.EditionMark, IsSigner: false, IsWritable: true},
			{PubKey: a.NewMintAuthority, IsSigner: true, IsWritable: false},
			{PubKey: a.Payer, IsSigner: true, IsWritable: true},
			{PubKey: a.TokenAccountOwner, IsSigner: true, IsWritable: false},
			{PubKey: a.TokenAccount, IsSigner: false, IsWritable: false},
			{PubKey: a.UpdateAuthority, IsSigner: false, IsWritable: false},
			{PubKey: a.MasterMetadata, IsSigner: false, IsWritable: false},
			{PubKey: tokenProgramID, IsSigner: false, IsWritable: false},
			{PubKey: systemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: rentSysvarID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

// editionMarkPDA derives the marker account that records whether edition has been printed.
func editionMarkPDA(masterMint common.PublicKey, edition uint64) (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{
		[]byte("metadata"),
		tokenMetadataProgramID.Bytes(),
		masterMint.Bytes(),
		[]byte("edition"),
		[]byte(strconv.FormatUint(edition/editionMarkerBitSize, 10)),
	}, tokenMetadataProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive edition marker: %w", err)
	}
	return pda, nil
}
