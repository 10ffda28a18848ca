package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"bnk-converter/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var scanInputDir string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the .bnk banks found in the input directory",
	Long: `Scan the input directory and list every .bnk audio bank that a
convert run would process, in processing order.

Example:
  bnk-converter scan
  bnk-converter scan --input banks`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanInputDir, "input", "", "Input directory with .bnk files (default from config or \"input\")")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	dir := firstNonEmpty(scanInputDir, cfg.Paths.InputDirectory)
	return RunScanWithDependencies(filesystem.NewScanner(), dir, os.Stdout)
}

// RunScanWithDependencies runs the scan command with injected dependencies (for testing)
func RunScanWithDependencies(scanner *filesystem.Scanner, dir string, output OutputWriter) error {
	files, err := scanner.ListContainerFiles(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintf(output, "No .bnk files found in %s\n", dir)
		return nil
	}

	fmt.Fprintf(output, "Found %d .bnk file(s) in %s:\n", len(files), dir)
	for i, f := range files {
		fmt.Fprintf(output, "  %d. %s\n", i+1, filepath.Base(f))
	}
	return nil
}
