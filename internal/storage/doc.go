// Package storage publishes off-chain NFT metadata documents to an IPFS node or
// a Google Cloud Storage bucket and returns the URI stored on chain.
package storage
