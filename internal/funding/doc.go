// Package funding tops up a destination account with enough lamports to pay a
// given number of transaction fees, plus rent when the account is not yet
// rent-exempt. Per-destination file locks keep concurrent invocations from
// double funding.
package funding
