package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bnk-converter/infrastructure/config"

	"github.com/spf13/cobra"
)

// DefaultOutput is the default output writer for config commands
var DefaultOutput OutputWriter = os.Stdout

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration a convert run would use, after merging the
config file with built-in defaults.

Example:
  bnk-converter config
  bnk-converter config --config /path/to/config.yaml`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return RunConfigShowWithDependencies(GetConfig(), cfgFile, DefaultOutput)
}

// RunConfigShowWithDependencies runs the config command with injected dependencies
func RunConfigShowWithDependencies(cfg *config.Config, configPath string, out OutputWriter) error {
	if cfg == nil {
		cfg = config.Default()
	}

	fmt.Fprintf(out, "Configuration (%s):\n", configPath)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  input directory:\t%s\n", cfg.Paths.InputDirectory)
	fmt.Fprintf(w, "  output directory:\t%s\n", cfg.Paths.OutputDirectory)
	fmt.Fprintf(w, "  temp directory:\t%s\n", orDefault(cfg.Paths.TempDirectory, "(system temp)"))
	fmt.Fprintf(w, "  bnkextr:\t%s\n", orDefault(cfg.Tools.Bnkextr, "(from PATH)"))
	fmt.Fprintf(w, "  vgmstream-cli:\t%s\n", orDefault(cfg.Tools.Vgmstream, "(from PATH)"))
	fmt.Fprintf(w, "  format:\t%s\n", orDefault(cfg.Convert.Format, "(prompted)"))
	fmt.Fprintf(w, "  verbosity:\t%d\n", cfg.Convert.Verbosity)
	fmt.Fprintf(w, "  keep streams:\t%t\n", cfg.Convert.KeepStreams)
	fmt.Fprintf(w, "  min output size:\t%d\n", cfg.Convert.MinOutputSize)
	fmt.Fprintf(w, "  remove duplicates:\t%t\n", cfg.Convert.RemoveDuplicates)
	return w.Flush()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
