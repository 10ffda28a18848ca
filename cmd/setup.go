package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up directories, external tool
locations, the default target format, and cleanup behavior.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to bnk-converter setup!")
	fmt.Println()

	cfg := config.Default()

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}
	if err := promptTools(prompter, cfg); err != nil {
		return err
	}
	if err := promptConvert(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	input, err := prompter.Input("Where are your .bnk files?", cfg.Paths.InputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if input != "" {
		cfg.Paths.InputDirectory = input
	}

	output, err := prompter.Input("Where should converted files go?", cfg.Paths.OutputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if output != "" {
		cfg.Paths.OutputDirectory = output
	}

	temp, err := prompter.Input("Temporary directory for extraction (empty = system temp)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.TempDirectory = temp

	return nil
}

func promptTools(prompter Prompter, cfg *config.Config) error {
	bnkextrPath, err := prompter.Input("Path to bnkextr (empty = resolve from PATH)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Tools.Bnkextr = bnkextrPath

	vgmstreamPath, err := prompter.Input("Path to vgmstream-cli (empty = resolve from PATH)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Tools.Vgmstream = vgmstreamPath

	return nil
}

func promptConvert(prompter Prompter, cfg *config.Config) error {
	options := make([]string, len(bank.Formats))
	for i, f := range bank.Formats {
		options[i] = string(f)
	}
	format, err := prompter.Select("Default output format:", options)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Convert.Format = format

	keep, err := prompter.Confirm("Keep raw .wem streams alongside converted files?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Convert.KeepStreams = keep

	deleteSmall, err := prompter.Confirm("Delete small output files? (files under the threshold are usually empty or silent audio)", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if deleteSmall {
		sizeStr, err := prompter.Input("Minimum output file size in bytes?", strconv.Itoa(bank.DefaultMinOutputSize))
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		size, convErr := strconv.ParseInt(sizeStr, 10, 64)
		if convErr != nil || size < 0 {
			size = bank.DefaultMinOutputSize
		}
		cfg.Convert.MinOutputSize = size
	}

	dedupe, err := prompter.Confirm("Remove duplicate outputs by size? (may remove distinct streams that share a size)", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Convert.RemoveDuplicates = dedupe

	return nil
}
