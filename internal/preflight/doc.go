// Package preflight provides readiness checks for the signer, the target
// cluster, metadata storage and the local directories cornercase writes to.
//
// The "cornercase preflight" command runs RunAll and prints one row per
// check. Minting commands do not call it; they fail on the first job instead.
package preflight
