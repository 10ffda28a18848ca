package bank

import "errors"

var (
	// ErrInputDirNotFound is returned when the input directory does not exist
	ErrInputDirNotFound = errors.New("input directory not found")

	// ErrNoContainerFiles is returned when the input directory holds no .bnk files
	ErrNoContainerFiles = errors.New("no .bnk files found in input directory")

	// ErrExtractionFailed is returned when the extraction tool exits non-zero
	ErrExtractionFailed = errors.New("bank extraction failed")

	// ErrNoStreams is returned when extraction succeeds but produces no .wem streams
	ErrNoStreams = errors.New("no .wem streams produced by extraction")

	// ErrTranscodeFailed is returned when the transcoding tool exits non-zero
	// or produces no output file
	ErrTranscodeFailed = errors.New("stream transcode failed")

	// ErrUnknownFormat is returned for an unrecognized target format identifier
	ErrUnknownFormat = errors.New("unknown target format")

	// ErrToolNotFound is returned when an external tool is missing or not executable
	ErrToolNotFound = errors.New("external tool not found")
)
