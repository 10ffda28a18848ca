package bank

// DefaultMinOutputSize is the size threshold below which converted files are
// usually empty or silent audio. Carried over from long-standing community
// tooling around .bnk banks.
const DefaultMinOutputSize = 4844

// DeleteReason explains why the cleanup policy rejected an output file
type DeleteReason string

const (
	DeleteSmall     DeleteReason = "small"
	DeleteDuplicate DeleteReason = "duplicate"
)

// CleanupPolicy decides whether a freshly converted output file should be
// kept or deleted. MinOutputSize of 0 disables the size check. When
// RemoveDuplicates is set, an output whose byte size matches an earlier
// output of the same bank is treated as a duplicate. Size-based duplicate
// detection can discard distinct streams that happen to share a size; the
// CLI warns about this before enabling it.
type CleanupPolicy struct {
	MinOutputSize    int64
	RemoveDuplicates bool

	seenSizes map[int64]string // size → first output filename with that size
}

// NewCleanupPolicy creates a policy covering one bank's outputs
func NewCleanupPolicy(minOutputSize int64, removeDuplicates bool) *CleanupPolicy {
	return &CleanupPolicy{
		MinOutputSize:    minOutputSize,
		RemoveDuplicates: removeDuplicates,
		seenSizes:        make(map[int64]string),
	}
}

// ShouldDelete reports whether the output file of the given size should be
// deleted, and the reason. Call once per converted file, in output order.
func (p *CleanupPolicy) ShouldDelete(filename string, size int64) (bool, DeleteReason) {
	if p.MinOutputSize > 0 && size < p.MinOutputSize {
		return true, DeleteSmall
	}
	if p.RemoveDuplicates {
		if _, seen := p.seenSizes[size]; seen {
			return true, DeleteDuplicate
		}
		p.seenSizes[size] = filename
	}
	return false, ""
}
