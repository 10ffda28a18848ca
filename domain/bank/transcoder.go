package bank

import "context"

// Transcoder defines the interface for converting one extracted stream
// into the target format. Implemented by the vgmstream infrastructure adapter.
type Transcoder interface {
	// Transcode converts the stream described by req and saves to outputPath
	Transcode(ctx context.Context, req *TranscodeRequest, outputPath string) error
}
