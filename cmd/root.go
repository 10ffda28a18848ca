package cmd

import (
	"fmt"
	"os"

	"bnk-converter/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// OutputWriter is the interface for writing command output (allows capture in tests)
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

var rootCmd = &cobra.Command{
	Use:   "bnk-converter",
	Short: "Batch-extract and convert Wwise .bnk audio banks",
	Long: `bnk-converter scans an input folder for Wwise .bnk audio-bank files,
unpacks the embedded .wem streams with bnkextr, and converts every stream
to a chosen target format with vgmstream-cli:

  - Scan the input directory for .bnk files
  - Extract each bank into a temporary holding directory
  - Convert each stream to wav, mp3, ogg, flac, or m4a
  - Write results to output/<bank-name>/

Example:
  bnk-converter convert --format ogg
  bnk-converter convert --input banks --output converted --format flac`,
}

// Execute runs the root command; a failed run exits non-zero
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	// A missing config file is fine (built-in defaults apply), but a config
	// file that exists and fails to parse must not be silently ignored
	var err error
	cfg, err = config.LoadOrDefault(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
