package bank

import "context"

// Extractor defines the interface for unpacking a container file into
// individual audio streams. This is a port implemented by the bnkextr
// infrastructure adapter.
type Extractor interface {
	// Extract unpacks the container described by req into destDir
	Extract(ctx context.Context, req *ExtractionRequest, destDir string) error
}

// FileChecker abstracts file existence checks for testability
type FileChecker interface {
	Exists(path string) bool
}
