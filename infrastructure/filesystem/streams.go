package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StreamExtension is the extension of audio streams unpacked by the
// extraction tool
const StreamExtension = ".wem"

// ListStreams returns the .wem files directly inside dir, sorted
// lexicographically. An empty result is not an error; the caller decides
// what an extraction with no streams means.
func (s *Scanner) ListStreams(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading holding directory %s: %w", dir, err)
	}

	var streams []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), StreamExtension) {
			streams = append(streams, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(streams)
	return streams, nil
}
