// Package nft defines the data model shared by the catalogue, the minting
// executor, the cloning job and the Solana client.
//
// A JobSpec describes one token (on-chain fields plus the optional off-chain
// JSON to upload). A Job wraps a spec with the dependent steps a corner case
// needs: a collection NFT minted first, a creator co-signature, or an edition
// printed from the new master. Record is the read side, used when cloning.
package nft
