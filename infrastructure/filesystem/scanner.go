package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bnk-converter/domain/bank"
)

// ContainerExtension is the audio-bank container file extension
const ContainerExtension = ".bnk"

// Scanner enumerates container files in an input directory
type Scanner struct{}

// NewScanner creates a new directory scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// ListContainerFiles returns the paths of .bnk files directly inside dir
// (extension matched case-insensitively), sorted lexicographically for a
// deterministic processing order. A missing directory is an error; a
// directory with no matches returns an empty slice.
func (s *Scanner) ListContainerFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", bank.ErrInputDirNotFound, dir)
		}
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ContainerExtension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
