package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/filesystem"
)

// Scanner abstracts input discovery for the batch
type Scanner interface {
	ListContainerFiles(dir string) ([]string, error)
	ListStreams(dir string) ([]string, error)
}

// FileSizer provides file size information
type FileSizer interface {
	Size(path string) int64
}

// Service orchestrates the complete batch conversion workflow: scan the
// input directory, then for each bank extract its streams into a temporary
// holding directory and transcode every stream into the bank's output
// directory. Strictly sequential; a failed bank or stream is logged and
// skipped, never retried.
type Service struct {
	scanner    Scanner
	extractor  bank.Extractor
	transcoder bank.Transcoder
	sizer      FileSizer
	output     io.Writer
	moveFile   func(src, dst string) error
}

// NewService creates a new conversion service
func NewService(
	scanner Scanner,
	extractor bank.Extractor,
	transcoder bank.Transcoder,
	sizer FileSizer,
	output io.Writer,
) *Service {
	return &Service{
		scanner:    scanner,
		extractor:  extractor,
		transcoder: transcoder,
		sizer:      sizer,
		output:     output,
		moveFile:   filesystem.MoveFile,
	}
}

// Input contains all parameters for one batch run
type Input struct {
	InputDir  string
	OutputDir string
	TempRoot  string // root for per-bank holding directories; "" = system temp
	Format    bank.Format
	Verbosity int // 1 = per-bank, 2 = progress counter, 3 = per-stream

	KeepStreams      bool  // move raw .wem files into the output directory
	MinOutputSize    int64 // delete converted files smaller than this; 0 = keep all
	RemoveDuplicates bool  // delete outputs whose size duplicates an earlier one

	Selection []string // bank filenames to process; empty = all discovered
}

// Convert runs the batch. The returned error is non-nil only for fatal
// conditions (missing input directory, cancelled context); per-bank and
// per-stream failures are reported on the output writer and counted in Stats.
func (s *Service) Convert(ctx context.Context, input Input) (*Stats, error) {
	stats := &Stats{}

	if _, err := bank.ParseFormat(string(input.Format)); err != nil {
		return stats, err
	}

	files, err := s.scanner.ListContainerFiles(input.InputDir)
	if err != nil {
		return stats, err
	}

	files = filterSelection(files, input.Selection)
	stats.BanksTotal = len(files)

	if len(files) == 0 {
		fmt.Fprintf(s.output, "No .bnk files to process in %s\n", input.InputDir)
		return stats, nil
	}

	if err := os.MkdirAll(input.OutputDir, 0755); err != nil {
		return stats, fmt.Errorf("creating output directory: %w", err)
	}

	resolver := bank.NewCollisionResolver()

	for i, path := range files {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		fmt.Fprintf(s.output, "[%d/%d] %s\n", i+1, len(files), filepath.Base(path))
		s.processBank(ctx, input, path, resolver, stats)
	}

	s.printSummary(input, stats)
	return stats, nil
}

// processBank handles one container file: output dir → holding dir →
// extract → transcode each stream → cleanup.
func (s *Service) processBank(ctx context.Context, input Input, path string, resolver *bank.CollisionResolver, stats *Stats) {
	req, err := bank.NewExtractionRequest(path)
	if err != nil {
		fmt.Fprintf(s.output, "  ERROR: %v\n", err)
		stats.BanksFailed++
		return
	}

	outDir := resolver.Resolve(path, input.OutputDir, req.BaseName())
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(s.output, "  ERROR: creating %s: %v\n", outDir, err)
		stats.BanksFailed++
		return
	}

	holding, err := os.MkdirTemp(input.TempRoot, "bnk-"+req.BaseName()+"-")
	if err != nil {
		fmt.Fprintf(s.output, "  ERROR: creating holding directory: %v\n", err)
		stats.BanksFailed++
		return
	}
	defer os.RemoveAll(holding)

	if err := s.extractor.Extract(ctx, req, holding); err != nil {
		fmt.Fprintf(s.output, "  ERROR: %v\n", err)
		stats.BanksFailed++
		return
	}

	streams, err := s.scanner.ListStreams(holding)
	if err != nil {
		fmt.Fprintf(s.output, "  ERROR: %v\n", err)
		stats.BanksFailed++
		return
	}
	if len(streams) == 0 {
		fmt.Fprintf(s.output, "  ERROR: %v: %s\n", bank.ErrNoStreams, filepath.Base(path))
		stats.BanksFailed++
		return
	}

	s.transcodeStreams(ctx, input, streams, outDir, stats)

	if input.KeepStreams {
		s.drainStreams(streams, outDir, stats)
	}

	stats.BanksConverted++
}

// transcodeStreams converts every stream of one bank, applying the cleanup
// policy after each successful conversion.
func (s *Service) transcodeStreams(ctx context.Context, input Input, streams []string, outDir string, stats *Stats) {
	policy := bank.NewCleanupPolicy(input.MinOutputSize, input.RemoveDuplicates)

	for i, stream := range streams {
		stats.StreamsTotal++

		switch input.Verbosity {
		case 2:
			fmt.Fprintf(s.output, "\r  converting stream %d/%d", i+1, len(streams))
		case 3:
			fmt.Fprintf(s.output, "  converting stream %d/%d: %s\n", i+1, len(streams), filepath.Base(stream))
		}

		treq, err := bank.NewTranscodeRequest(stream, input.Format)
		if err != nil {
			fmt.Fprintf(s.output, "  ERROR: %v\n", err)
			stats.StreamsFailed++
			continue
		}

		outPath := treq.OutputPath(outDir)
		if err := s.transcoder.Transcode(ctx, treq, outPath); err != nil {
			if input.Verbosity == 2 {
				fmt.Fprintln(s.output)
			}
			fmt.Fprintf(s.output, "  ERROR: %v\n", err)
			stats.StreamsFailed++
			continue
		}

		size := s.sizer.Size(outPath)
		if del, reason := policy.ShouldDelete(treq.OutputFilename(), size); del {
			if input.Verbosity >= 3 {
				fmt.Fprintf(s.output, "  deleting %s file: %s (%d bytes)\n", reason, treq.OutputFilename(), size)
			}
			if err := os.Remove(outPath); err != nil {
				fmt.Fprintf(s.output, "  WARNING: could not delete %s: %v\n", outPath, err)
			} else {
				stats.StreamsDeleted++
			}
		}

		stats.StreamsConverted++
	}

	if input.Verbosity == 2 {
		fmt.Fprintln(s.output)
	}
}

// drainStreams moves the raw .wem files into the output directory before the
// holding directory is removed. The move copies across filesystems, since the
// holding directory usually lives under the system temp. A stream that cannot
// be kept is reported and counted, and fails the run.
func (s *Service) drainStreams(streams []string, outDir string, stats *Stats) {
	for _, stream := range streams {
		dst := filepath.Join(outDir, filepath.Base(stream))
		if err := s.moveFile(stream, dst); err != nil {
			fmt.Fprintf(s.output, "  ERROR: could not keep %s: %v\n", filepath.Base(stream), err)
			stats.KeepFailed++
		}
	}
}

func (s *Service) printSummary(input Input, stats *Stats) {
	fmt.Fprintf(s.output, "\nDone: %d/%d banks converted, %d streams converted, %d failed",
		stats.BanksConverted, stats.BanksTotal, stats.StreamsConverted, stats.StreamsFailed)
	if stats.StreamsDeleted > 0 {
		fmt.Fprintf(s.output, ", %d cleaned up", stats.StreamsDeleted)
	}
	if stats.KeepFailed > 0 {
		fmt.Fprintf(s.output, ", %d raw stream(s) lost", stats.KeepFailed)
	}
	fmt.Fprintln(s.output)

	if stats.BanksFailed > 0 {
		fmt.Fprintf(s.output, "%d bank(s) failed, see errors above\n", stats.BanksFailed)
	}
	fmt.Fprintf(s.output, "Output saved to: %s\n", input.OutputDir)
}

// filterSelection keeps only files whose base name appears in selection.
// An empty selection keeps everything.
func filterSelection(files, selection []string) []string {
	if len(selection) == 0 {
		return files
	}

	wanted := make(map[string]bool, len(selection))
	for _, name := range selection {
		wanted[name] = true
	}

	var kept []string
	for _, path := range files {
		if wanted[filepath.Base(path)] {
			kept = append(kept, path)
		}
	}
	return kept
}
