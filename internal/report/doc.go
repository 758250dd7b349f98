// Package report renders run outcomes for people and scripts.
//
// Outcomes prints a rounded table with one row per job in launch order and a
// summary line that is colored only when stdout is a terminal. JSON emits the
// same data for --json. Lamports formats balances for the dust command.
package report
