package bank

import (
	"fmt"
	"path/filepath"
)

// CollisionResolver assigns each container file a unique output directory.
// Two inputs that share a base name (e.g. "a.bnk" and "a.BNK") get
// disambiguated with a " (N)" suffix, first-come in processing order.
// Intended for sequential use within a single batch run.
type CollisionResolver struct {
	owners map[string]string // output dir → container path that owns it
}

// NewCollisionResolver creates a ready-to-use resolver
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Resolve returns the output directory for the container at containerPath
// under outputBase. The same container always resolves to the same directory
// within one run.
func (cr *CollisionResolver) Resolve(containerPath, outputBase, baseName string) string {
	requested := filepath.Join(outputBase, baseName)

	owner, exists := cr.owners[requested]
	if !exists || owner == containerPath {
		cr.owners[requested] = containerPath
		return requested
	}

	for n := 2; ; n++ {
		candidate := filepath.Join(outputBase, fmt.Sprintf("%s (%d)", baseName, n))
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == containerPath {
			cr.owners[candidate] = containerPath
			return candidate
		}
	}
}
