//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bnk-converter/cmd"
	"bnk-converter/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// scanContext holds test state for scan scenarios
type scanContext struct {
	root     string
	inputDir string
	output   *bytes.Buffer
	err      error
}

// SharedScanContext is reset before each scenario via Before hook
var SharedScanContext *scanContext

func getScanContext() *scanContext {
	return SharedScanContext
}

func InitializeScanScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		root, err := os.MkdirTemp("", "bnk-scan-feature-")
		if err != nil {
			return c, err
		}
		SharedScanContext = &scanContext{
			root:     root,
			inputDir: filepath.Join(root, "input"),
			output:   &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedScanContext != nil {
			os.RemoveAll(SharedScanContext.root)
		}
		SharedScanContext = nil
		return c, nil
	})

	ctx.Step(`^an input directory containing files:$`, anInputDirectoryContainingFiles)
	ctx.Step(`^an empty input directory$`, anEmptyInputDirectory)
	ctx.Step(`^I scan the input directory$`, iScanTheInputDirectory)
	ctx.Step(`^the scan should succeed$`, theScanShouldSucceed)
	ctx.Step(`^the scan output should list (\d+) files$`, theScanOutputShouldListFiles)
	ctx.Step(`^the scan output should list "([^"]*)" before "([^"]*)"$`, theScanOutputShouldListBefore)
	ctx.Step(`^the scan output should say no files were found$`, theScanOutputShouldSayNoFilesWereFound)
}

func anInputDirectoryContainingFiles(table *godog.Table) error {
	c := getScanContext()
	if err := os.MkdirAll(c.inputDir, 0755); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		name := row.Cells[0].Value
		if err := os.WriteFile(filepath.Join(c.inputDir, name), []byte("x"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func anEmptyInputDirectory() error {
	c := getScanContext()
	return os.MkdirAll(c.inputDir, 0755)
}

func iScanTheInputDirectory() error {
	c := getScanContext()
	c.err = cmd.RunScanWithDependencies(filesystem.NewScanner(), c.inputDir, c.output)
	return nil
}

func theScanShouldSucceed() error {
	c := getScanContext()
	if c.err != nil {
		return fmt.Errorf("expected success, got: %v", c.err)
	}
	return nil
}

func theScanOutputShouldListFiles(count int) error {
	c := getScanContext()
	if !strings.Contains(c.output.String(), fmt.Sprintf("Found %d .bnk file(s)", count)) {
		return fmt.Errorf("output %q does not report %d files", c.output.String(), count)
	}
	return nil
}

func theScanOutputShouldListBefore(first, second string) error {
	c := getScanContext()
	out := c.output.String()
	i := strings.Index(out, first)
	j := strings.Index(out, second)
	if i < 0 || j < 0 {
		return fmt.Errorf("output %q does not list both %q and %q", out, first, second)
	}
	if i > j {
		return fmt.Errorf("%q listed after %q", first, second)
	}
	return nil
}

func theScanOutputShouldSayNoFilesWereFound() error {
	c := getScanContext()
	if !strings.Contains(c.output.String(), "No .bnk files found") {
		return fmt.Errorf("output %q does not say no files were found", c.output.String())
	}
	return nil
}
