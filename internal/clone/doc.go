// Package clone recreates an existing NFT on the target network.
//
// The conversion from a chain record to a mint job is pure; Clone wires it to a
// reader on the source cluster and an executor on the target cluster.
package clone
