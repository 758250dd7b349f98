// Package main hosts the cornercase CLI entrypoint and command graph.
//
// create and case mint catalogue entries to a destination wallet and report
// one outcome per job. clone copies an existing NFT from another cluster and
// dust tops up a wallet's lamports. Configuration, the signer keypair and the
// destination address are all resolved before any network call is made.
package main
