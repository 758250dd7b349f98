package catalogue

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/blocto/solana-go-sdk/common"

	"cornercase/internal/nft"
)

// ErrUnknownCase is returned by Lookup for an id the catalogue does not know.
var ErrUnknownCase = errors.New("unknown case")

// sellerFeeBasisPoints is applied to every catalogue NFT.
const sellerFeeBasisPoints = 200

// Entry is a named corner case. Build is pure: it only allocates specs and
// local keypairs, network calls happen when the jobs run.
type Entry struct {
	ID      string
	Summary string
	// Default marks entries included when running the whole catalogue.
	Default bool
	Build   func(dest common.PublicKey) []nft.Job
}

// Jobs builds the entry for dest and stamps the case id on each job.
func (e Entry) Jobs(dest common.PublicKey) []nft.Job {
	jobs := e.Build(dest)
	for i := range jobs {
		jobs[i].Case = e.ID
	}
	return jobs
}

// All returns every entry in catalogue order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Defaults returns the entries run by the create command.
func Defaults() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Default {
			out = append(out, e)
		}
	}
	return out
}

// Lookup resolves a case id, ignoring case and surrounding whitespace.
func Lookup(id string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, e := range entries {
		if e.ID == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownCase, id, strings.Join(IDs(), ", "))
}

// IDs lists the known case ids sorted alphabetically.
func IDs() []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids
}

// Jobs builds every entry for dest, preserving catalogue order.
func Jobs(list []Entry, dest common.PublicKey) []nft.Job {
	var jobs []nft.Job
	for _, e := range list {
		jobs = append(jobs, e.Jobs(dest)...)
	}
	return jobs
}

// simple builds a job whose off-chain name matches its on-chain name.
func simple(name string, dest common.PublicKey, meta nft.Metadata) nft.Job {
	if meta.Name == "" {
		meta.Name = name
	}
	return nft.Job{
		Name: name,
		Spec: nft.JobSpec{
			Name:                 name,
			Metadata:             &meta,
			SellerFeeBasisPoints: sellerFeeBasisPoints,
			TokenOwner:           dest,
		},
	}
}
