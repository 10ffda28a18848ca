package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bnk-converter/application/convert"
	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/bnkextr"
	"bnk-converter/infrastructure/execrunner"
	"bnk-converter/infrastructure/filesystem"
	"bnk-converter/infrastructure/vgmstream"

	"github.com/spf13/cobra"
)

var (
	convertInputDir    string
	convertOutputDir   string
	convertTempRoot    string
	convertFormat      string
	convertVerbosity   int
	convertKeepStreams bool
	convertMinSize     int64
	convertDedupe      bool
	convertSelect      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert all .bnk banks in the input directory",
	Long: `Convert every .bnk audio bank found in the input directory.

Each bank is extracted with bnkextr into a temporary holding directory,
then every .wem stream is converted with vgmstream-cli into
<output>/<bank-name>/. A bank or stream that fails is reported and
skipped; the run continues and exits non-zero at the end.

If --format is not given, an interactive menu is shown. With --select,
an interactive menu picks which banks to process.

Example:
  bnk-converter convert --format ogg
  bnk-converter convert --format flac --min-size 4844 --dedupe
  bnk-converter convert --input banks --output converted --format wav --select`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertInputDir, "input", "", "Input directory with .bnk files (default from config or \"input\")")
	convertCmd.Flags().StringVar(&convertOutputDir, "output", "", "Output directory (default from config or \"output\")")
	convertCmd.Flags().StringVar(&convertTempRoot, "temp", "", "Root for temporary holding directories (default system temp)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "Target format: wav, mp3, ogg, flac, m4a (prompts if omitted)")
	convertCmd.Flags().IntVar(&convertVerbosity, "verbosity", 0, "Output verbosity 1-3 (default from config or 2)")
	convertCmd.Flags().BoolVar(&convertKeepStreams, "keep-streams", false, "Keep raw .wem streams alongside converted files")
	convertCmd.Flags().Int64Var(&convertMinSize, "min-size", -1, fmt.Sprintf("Delete converted files smaller than this many bytes, 0 to keep all (default from config; %d is the usual silence threshold)", bank.DefaultMinOutputSize))
	convertCmd.Flags().BoolVar(&convertDedupe, "dedupe", false, "Delete outputs whose size duplicates an earlier output of the same bank (may remove distinct streams)")
	convertCmd.Flags().BoolVar(&convertSelect, "select", false, "Interactively choose which banks to process")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	input := convert.Input{
		InputDir:         firstNonEmpty(convertInputDir, cfg.Paths.InputDirectory),
		OutputDir:        firstNonEmpty(convertOutputDir, cfg.Paths.OutputDirectory),
		TempRoot:         firstNonEmpty(convertTempRoot, cfg.Paths.TempDirectory),
		Verbosity:        convertVerbosity,
		KeepStreams:      convertKeepStreams || cfg.Convert.KeepStreams,
		MinOutputSize:    convertMinSize,
		RemoveDuplicates: convertDedupe || cfg.Convert.RemoveDuplicates,
	}
	if input.Verbosity == 0 {
		input.Verbosity = cfg.Convert.Verbosity
	}
	if input.MinOutputSize < 0 {
		input.MinOutputSize = cfg.Convert.MinOutputSize
	}

	// Resolve the target format: flag, then config, then interactive menu
	formatName := firstNonEmpty(convertFormat, cfg.Convert.Format)
	if formatName == "" {
		var err error
		formatName, err = promptFormat(DefaultPrompter)
		if err != nil {
			return err
		}
	}
	format, err := bank.ParseFormat(formatName)
	if err != nil {
		return err
	}
	input.Format = format

	if convertSelect {
		selection, err := promptBankSelection(DefaultPrompter, input.InputDir)
		if err != nil {
			return err
		}
		if len(selection) == 0 {
			fmt.Println("No files selected for processing.")
			return nil
		}
		input.Selection = selection
	}

	runner := &execrunner.ExecCommandRunner{Verbose: input.Verbosity >= 3}
	extractor := bnkextr.New(
		bnkextr.WithToolPath(cfg.Tools.Bnkextr),
		bnkextr.WithCommandRunner(runner),
	)
	transcoder := vgmstream.New(
		vgmstream.WithToolPath(cfg.Tools.Vgmstream),
		vgmstream.WithCommandRunner(runner),
	)

	return RunConvertWithDependencies(
		cmd.Context(),
		extractor,
		transcoder,
		filesystem.NewScanner(),
		filesystem.NewChecker(),
		input,
		os.Stdout,
	)
}

// RunConvertWithDependencies runs the convert command with injected
// dependencies (for testing)
func RunConvertWithDependencies(
	ctx context.Context,
	extractor bank.Extractor,
	transcoder bank.Transcoder,
	scanner *filesystem.Scanner,
	checker *filesystem.Checker,
	input convert.Input,
	output OutputWriter,
) error {
	// Verify both external tools respond before touching any files
	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("bnkextr verification failed: %w", err)
		}
	}
	if verifiable, ok := transcoder.(interface{ VerifyInstalled(context.Context) error }); ok {
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("vgmstream-cli verification failed: %w", err)
		}
	}

	service := convert.NewService(scanner, extractor, transcoder, checker, output)

	stats, err := service.Convert(ctx, input)
	if err != nil {
		return err
	}
	if stats.Failed() {
		return fmt.Errorf("%d bank(s), %d stream(s), %d kept raw stream(s) failed",
			stats.BanksFailed, stats.StreamsFailed, stats.KeepFailed)
	}
	return nil
}

// promptFormat shows the target format menu
func promptFormat(prompter Prompter) (string, error) {
	options := make([]string, len(bank.Formats))
	for i, f := range bank.Formats {
		options[i] = string(f)
	}
	choice, err := prompter.Select("Select output format:", options)
	if err != nil {
		return "", fmt.Errorf("prompt cancelled")
	}
	return choice, nil
}

// promptBankSelection lists discovered banks and asks which to process
func promptBankSelection(prompter Prompter, inputDir string) ([]string, error) {
	files, err := filesystem.NewScanner().ListContainerFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", bank.ErrNoContainerFiles, inputDir)
	}

	options := make([]string, len(files))
	for i, f := range files {
		options[i] = filepath.Base(f)
	}

	chosen, err := prompter.MultiSelect("Select .bnk files to process:", options)
	if err != nil {
		return nil, fmt.Errorf("prompt cancelled")
	}
	return chosen, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
