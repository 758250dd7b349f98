package nft

import (
	"encoding/json"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

// DefaultName is the on-chain name used when a spec uploads metadata but leaves Name unset.
const DefaultName = "My NFT"

// Creator is one entry of the on-chain creators array.
type Creator struct {
	Address  common.PublicKey
	Share    uint8 `validate:"lte=100"`
	Verified bool
}

// CollectionRef points a token at its collection NFT.
type CollectionRef struct {
	Address common.PublicKey
	// Verify requests a verification step after the token is created.
	Verify bool
	// Verified reports the on-chain state when the ref was read from a Record.
	Verified bool
}

// File is one entry of properties.files in the off-chain JSON.
type File struct {
	URI  string `json:"uri"`
	Type string `json:"type,omitempty"`
}

// Properties is the properties object of the off-chain JSON.
type Properties struct {
	Category string `json:"category,omitempty"`
	Files    []File `json:"files,omitempty"`
}

// Attribute is a trait entry of the off-chain JSON.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Metadata is the off-chain JSON document uploaded before minting.
type Metadata struct {
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol,omitempty"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	AnimationURL string      `json:"animation_url,omitempty"`
	ExternalURL  string      `json:"external_url,omitempty"`
	Attributes   []Attribute `json:"attributes,omitempty"`
	Properties   *Properties `json:"properties,omitempty"`
}

// JobSpec describes a single NFT to create.
//
// Creators distinguishes nil from empty: nil lets the minting client fall back to
// the signer as the sole creator, an empty slice mints without creators.
type JobSpec struct {
	Name                 string `validate:"max=32"`
	Symbol               string `validate:"max=10"`
	URI                  string `validate:"max=200"`
	Metadata             *Metadata
	SellerFeeBasisPoints uint16 `validate:"lte=10000"`
	TokenOwner           common.PublicKey
	Creators             []Creator `validate:"max=5,dive"`
	Collection           *CollectionRef
	Immutable            bool
	MaxSupply            *uint64
}

// PrintEdition asks for one limited edition to be printed from the job's master.
type PrintEdition struct {
	NewOwner common.PublicKey
}

// Job is one unit of work produced by the catalogue.
type Job struct {
	Case string
	Name string
	Spec JobSpec
	// Collection is minted before Spec; its address is written into Spec.Collection.
	Collection *JobSpec
	// CreatorSigner co-signs a creator verification once Spec is created.
	CreatorSigner *types.Account
	Print         *PrintEdition
}

// Recipient returns the address that ends up holding the job's token.
func (j Job) Recipient() common.PublicKey {
	if j.Print != nil {
		return j.Print.NewOwner
	}
	return j.Spec.TokenOwner
}

// Artifact is an additional account minted while running a job.
type Artifact struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// Result is what a job produced. Address is the job's primary mint.
type Result struct {
	Address   common.PublicKey
	Artifacts []Artifact
}

// Minted reports whether the primary mint was created.
func (r Result) Minted() bool {
	return r.Address != (common.PublicKey{})
}

// AddArtifact records an extra account against the result.
func (r *Result) AddArtifact(label string, address common.PublicKey) {
	r.Artifacts = append(r.Artifacts, Artifact{Label: label, Address: address.ToBase58()})
}

// EditionKind classifies the edition account attached to a mint.
type EditionKind string

const (
	EditionNone   EditionKind = ""
	EditionMaster EditionKind = "master"
	EditionPrint  EditionKind = "print"
)

// Record is the full state of an existing token as read from chain.
type Record struct {
	Mint                 common.PublicKey
	UpdateAuthority      common.PublicKey
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             []Creator
	Collection           *CollectionRef
	IsMutable            bool
	PrimarySaleHappened  bool
	Edition              EditionKind
	Supply               uint64
	MaxSupply            *uint64
	// JSON is the off-chain document behind URI, empty when it could not be fetched.
	JSON json.RawMessage
}
