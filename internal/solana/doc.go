// Package solana is the chain collaborator: it builds and submits the
// transactions that create, verify and print NFTs, reads existing tokens back,
// and moves lamports for the funding helper.
//
// Transactions are built with the blocto SDK. The Metaplex instructions the SDK
// does not cover (creator signing, collection verification, edition printing)
// are assembled here with borsh-encoded data. Keypair files and base58 input
// are parsed with gagliardetto/solana-go.
//
// Every write waits until its signature reaches the configured commitment.
package solana
