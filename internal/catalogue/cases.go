package catalogue

import (
	_ "embed"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	"cornercase/internal/nft"
)

//go:embed lorem_ipsum.txt
var loremIpsum string

const (
	glbImage     = "https://www.arweave.net/WmHroGZbameA0uITaEzlCoOKIGAjmVpkBfvAy5mrcLI"
	glbAnimation = "https://www.arweave.net/GfyWp6ktfhcfs09oXQ-r1OaBPMi0fm4g4l-1jRhPrt8?ext=glb"
	gifImage     = "https://arweave.net/C1BVcCCZX5NXSK9Z5gv3qaivKVXI7AXGRk0kFoHAzWY?ext=gif"
	mp4Animation = "https://arweave.net/6tTaYxu5epcV0Yh50uKsGZ4IFPEZ2ZmFoRlfyD1xbts?ext=mp4"

	ownUnverifiedImage = "https://www.arweave.net/b_6b9H7Ec_pANaz0394OQI7TRoL0_K1Knlrsk_039rc?ext=png"
	ownVerifiedImage   = "https://www.arweave.net/b2Ufl38QpZWWE16a6d3q-ZldyeSDJAuJPgRBdh6vSkM?ext=jpeg"

	happyImage       = "https://www.arweave.net/N9p7kt8EuHriN_B-teb_JH5WKWEsZ1gB9HbZGUTO6D8?ext=png"
	happyCollection  = "4xQvgQiN8aFeFp6bvmBd1zMTUMkPMxkgegwUeRDupHoQ"
	happyCreator     = "7Yj6vvhdBV4FDkcpFAbpbGEFB8J1LCpxdgZ1FWeVuPhu"
	happyDescription = "As the Orca ecosystem has grown, new creatures have been sighted emerging from deep within. " +
		"10,000 unique Orcanauts are now roaming free! Just like our podmates, each one of these little explorers " +
		"is unique and it's looking for a forever friend with whom to navigate the deep sea of DeFi."

	masterEditionSupply uint64 = 5
)

var entries = []Entry{
	{ID: "collection", Summary: "NFTs with an unverified and a verified collection", Default: true, Build: collectionCases},
	{ID: "no-image", Summary: "NFT whose JSON has no image", Default: true, Build: noImage},
	{ID: "unverified-creator", Summary: "NFT with one unverified creator", Default: true, Build: unverifiedCreator},
	{ID: "verified-creator", Summary: "NFT with one verified creator", Default: true, Build: verifiedCreator},
	{ID: "candy-machine-creator", Summary: "NFT with a 0% authority creator and a 90/10 split", Default: true, Build: candyMachineCreator},
	{ID: "missing-name-uri", Summary: "NFT with empty on-chain name and URI", Default: true, Build: missingNameURI},
	{ID: "long-description", Summary: "NFT with a description thousands of characters long", Default: true, Build: longDescription},
	{ID: "mismatched-names", Summary: "NFT whose JSON name differs from its on-chain name", Default: true, Build: mismatchedNames},
	{ID: "animations", Summary: "NFTs with GLB, GIF and MP4 animations", Default: true, Build: animations},
	{ID: "immutable", Summary: "NFT created with mutability disabled", Default: true, Build: immutable},
	{ID: "master-edition", Summary: "Master edition with supply 5 plus one printed edition", Default: true, Build: masterEdition},
	{ID: "own-creator", Summary: "NFTs listing the destination itself as creator", Build: ownCreator},
	{ID: "happy-case", Summary: "Fully populated NFT in a known collection", Build: happyCase},
}

func collectionCases(dest common.PublicKey) []nft.Job {
	member := func(name string, verify bool) nft.Job {
		job := simple(name, dest, nft.Metadata{})
		job.Spec.Collection = &nft.CollectionRef{Verify: verify}
		job.Collection = &nft.JobSpec{
			Name: "My first Collection NFT",
			Metadata: &nft.Metadata{
				Name:        "My first Collection NFT",
				Description: "This is an NFT that represents an entire collection of NFTs!",
			},
			SellerFeeBasisPoints: sellerFeeBasisPoints,
		}
		return job
	}
	return []nft.Job{
		member("NFT with unverified collection", false),
		member("NFT with verified collection", true),
	}
}

func noImage(dest common.PublicKey) []nft.Job {
	return []nft.Job{simple("NFT without image", dest, nft.Metadata{
		Description: "The JSON for this NFT has no image field.",
	})}
}

func unverifiedCreator(dest common.PublicKey) []nft.Job {
	job := simple("NFT with unverified creator (1)", dest, nft.Metadata{})
	job.Spec.Creators = []nft.Creator{{Address: types.NewAccount().PublicKey, Share: 100}}
	return []nft.Job{job}
}

func verifiedCreator(dest common.PublicKey) []nft.Job {
	creator := types.NewAccount()
	job := simple("NFT with verified creator (1)", dest, nft.Metadata{})
	job.Spec.Creators = []nft.Creator{{Address: creator.PublicKey, Share: 100}}
	job.CreatorSigner = &creator
	return []nft.Job{job}
}

// candyMachineCreator approximates a Candy Machine mint: the machine authority is
// the first creator with no share and is the only one that signs.
func candyMachineCreator(dest common.PublicKey) []nft.Job {
	authority := types.NewAccount()
	job := simple("NFT with Candy Machine creator", dest, nft.Metadata{})
	job.Spec.Creators = []nft.Creator{
		{Address: authority.PublicKey, Share: 0},
		{Address: types.NewAccount().PublicKey, Share: 90},
		{Address: types.NewAccount().PublicKey, Share: 10},
	}
	job.CreatorSigner = &authority
	return []nft.Job{job}
}

func missingNameURI(dest common.PublicKey) []nft.Job {
	return []nft.Job{{
		Name: "NFT with missing name / URI",
		Spec: nft.JobSpec{
			SellerFeeBasisPoints: sellerFeeBasisPoints,
			TokenOwner:           dest,
		},
	}}
}

func longDescription(dest common.PublicKey) []nft.Job {
	return []nft.Job{simple("NFT with extra-long description", dest, nft.Metadata{
		Description: loremIpsum,
	})}
}

func mismatchedNames(dest common.PublicKey) []nft.Job {
	return []nft.Job{simple("This name should be displayed", dest, nft.Metadata{
		Name: "This name shouldn't be displayed",
	})}
}

func animations(dest common.PublicKey) []nft.Job {
	return []nft.Job{
		simple("NFT with GLB animation", dest, nft.Metadata{
			Image:        glbImage,
			AnimationURL: glbAnimation,
			Properties:   &nft.Properties{Category: "vr"},
		}),
		simple("NFT with GIF animation", dest, nft.Metadata{
			Image: gifImage,
			Properties: &nft.Properties{
				Category: "image",
				Files:    []nft.File{{URI: gifImage, Type: "image/gif"}},
			},
		}),
		simple("NFT with mp4 animation", dest, nft.Metadata{
			AnimationURL: mp4Animation,
			Properties: &nft.Properties{
				Category: "video",
				Files:    []nft.File{{URI: mp4Animation, Type: "video/mp4"}},
			},
		}),
	}
}

func immutable(dest common.PublicKey) []nft.Job {
	job := simple("Immutable NFT", dest, nft.Metadata{})
	job.Spec.Immutable = true
	return []nft.Job{job}
}

// masterEdition mints the master to the signer, which has to hold it to print,
// and prints the edition into dest.
func masterEdition(dest common.PublicKey) []nft.Job {
	supply := masterEditionSupply
	job := simple("Master Edition NFT w/ 5 supply", dest, nft.Metadata{})
	job.Spec.TokenOwner = common.PublicKey{}
	job.Spec.MaxSupply = &supply
	job.Print = &nft.PrintEdition{NewOwner: dest}
	return []nft.Job{job}
}

func ownCreator(dest common.PublicKey) []nft.Job {
	unverified := simple("NFT with own unverified creator", dest, nft.Metadata{Image: ownUnverifiedImage})
	unverified.Spec.Creators = []nft.Creator{{Address: dest, Share: 100}}

	// Verifying would need the destination's signature, so this one only
	// carries the name.
	verified := simple("NFT with own verified creator", dest, nft.Metadata{Image: ownVerifiedImage})
	verified.Spec.Creators = []nft.Creator{{Address: dest, Share: 100}}

	return []nft.Job{unverified, verified}
}

func happyCase(dest common.PublicKey) []nft.Job {
	job := simple("Happy Case!", dest, nft.Metadata{
		Description: happyDescription,
		Image:       happyImage,
	})
	job.Spec.Collection = &nft.CollectionRef{Address: common.PublicKeyFromString(happyCollection)}
	job.Spec.Creators = []nft.Creator{{Address: common.PublicKeyFromString(happyCreator), Share: 100}}
	return []nft.Job{job}
}
