// Package minting executes catalogue jobs step by step against a chain Client and
// adapts them into runner tasks.
package minting
