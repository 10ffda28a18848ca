package bank

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExtractionRequest represents a request to unpack one container file
type ExtractionRequest struct {
	ContainerPath string
}

// NewExtractionRequest creates an ExtractionRequest with validation
func NewExtractionRequest(containerPath string) (*ExtractionRequest, error) {
	if containerPath == "" {
		return nil, fmt.Errorf("container path is required")
	}
	return &ExtractionRequest{ContainerPath: containerPath}, nil
}

// BaseName returns the container filename without directory or extension,
// used to name the per-file output directory
func (r *ExtractionRequest) BaseName() string {
	base := filepath.Base(r.ContainerPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TranscodeRequest represents a request to convert one extracted stream
type TranscodeRequest struct {
	StreamPath string
	Target     Format
}

// NewTranscodeRequest creates a TranscodeRequest with validation
func NewTranscodeRequest(streamPath string, target Format) (*TranscodeRequest, error) {
	if streamPath == "" {
		return nil, fmt.Errorf("stream path is required")
	}
	if _, err := ParseFormat(string(target)); err != nil {
		return nil, err
	}
	return &TranscodeRequest{StreamPath: streamPath, Target: target}, nil
}

// OutputFilename returns the converted filename: the stream's stem with the
// target format's extension
func (r *TranscodeRequest) OutputFilename() string {
	base := filepath.Base(r.StreamPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "." + r.Target.Extension()
}

// OutputPath returns the full output path including the directory
func (r *TranscodeRequest) OutputPath(outputDir string) string {
	return filepath.Join(outputDir, r.OutputFilename())
}
