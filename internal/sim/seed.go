package sim

import (
	"github.com/segmentio/fasthash/jody"
)

// RunSeed derives the random seed for one run from the batch's base
// seed. Hashing keeps neighbouring run indices from producing correlated
// streams, and the derivation is exported so a single run can be
// reproduced outside a batch.
func RunSeed(base int64, run int) int64 {
	h := jody.HashUint64(uint64(base))
	h = jody.AddUint64(h, uint64(run))
	if s := int64(h); s != 0 {
		return s
	}
	// Zero would disable seeding downstream.
	return 1
}
