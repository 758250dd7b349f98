// Package catalogue holds the named corner cases minted by the CLI.
//
// Each Entry builds its jobs for a destination address without touching the
// network, so the whole catalogue can be listed, filtered and tested offline.
package catalogue
