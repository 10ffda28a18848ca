//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bnk-converter/application/convert"
	"bnk-converter/cmd"
	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// mockExtractor fakes bnkextr by writing .wem files into the holding directory
type mockExtractor struct {
	streamsPerBank map[string]int
	failBanks      map[string]bool
}

func (m *mockExtractor) Extract(ctx context.Context, req *bank.ExtractionRequest, destDir string) error {
	base := req.BaseName()
	if m.failBanks[base] {
		return fmt.Errorf("%w: %s", bank.ErrExtractionFailed, base)
	}
	count := m.streamsPerBank[base]
	for i := 1; i <= count; i++ {
		name := filepath.Join(destDir, fmt.Sprintf("%s-%04d.wem", base, i))
		if err := os.WriteFile(name, []byte("wem"), 0644); err != nil {
			return err
		}
	}
	return nil
}

// mockTranscoder fakes vgmstream-cli by writing the output file
type mockTranscoder struct {
	failStreams map[string]bool
}

func (m *mockTranscoder) Transcode(ctx context.Context, req *bank.TranscodeRequest, outputPath string) error {
	base := filepath.Base(req.StreamPath)
	if m.failStreams[base] {
		return fmt.Errorf("%w: %s", bank.ErrTranscodeFailed, base)
	}
	return os.WriteFile(outputPath, bytes.Repeat([]byte{0}, 10000), 0644)
}

// convertContext holds test state for convert scenarios
type convertContext struct {
	root       string
	inputDir   string
	outputDir  string
	extractor  *mockExtractor
	transcoder *mockTranscoder
	output     *bytes.Buffer
	err        error
}

// SharedConvertContext is reset before each scenario via Before hook
var SharedConvertContext *convertContext

func getConvertContext() *convertContext {
	return SharedConvertContext
}

func InitializeConvertScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		root, err := os.MkdirTemp("", "bnk-feature-")
		if err != nil {
			return c, err
		}
		SharedConvertContext = &convertContext{
			root:      root,
			inputDir:  filepath.Join(root, "input"),
			outputDir: filepath.Join(root, "output"),
			extractor: &mockExtractor{
				streamsPerBank: make(map[string]int),
				failBanks:      make(map[string]bool),
			},
			transcoder: &mockTranscoder{
				failStreams: make(map[string]bool),
			},
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedConvertContext != nil {
			os.RemoveAll(SharedConvertContext.root)
		}
		SharedConvertContext = nil
		return c, nil
	})

	ctx.Step(`^an input directory with bank "([^"]*)" containing (\d+) streams$`, anInputDirectoryWithBankContainingStreams)
	ctx.Step(`^an input directory with bank "([^"]*)" that fails to extract$`, anInputDirectoryWithBankThatFailsToExtract)
	ctx.Step(`^stream (\d+) of bank "([^"]*)" fails to transcode$`, streamOfBankFailsToTranscode)
	ctx.Step(`^no input directory exists$`, noInputDirectoryExists)
	ctx.Step(`^I convert the input directory to "([^"]*)"$`, iConvertTheInputDirectoryTo)
	ctx.Step(`^I attempt to convert the input directory to "([^"]*)"$`, iAttemptToConvertTheInputDirectoryTo)
	ctx.Step(`^the conversion should succeed$`, theConversionShouldSucceed)
	ctx.Step(`^the conversion should fail with "([^"]*)"$`, theConversionShouldFailWith)
	ctx.Step(`^the conversion should report a failure$`, theConversionShouldReportAFailure)
	ctx.Step(`^the output directory "([^"]*)" should contain (\d+) "([^"]*)" files$`, theOutputDirectoryShouldContainFiles)
	ctx.Step(`^the output directory "([^"]*)" should contain no files$`, theOutputDirectoryShouldContainNoFiles)
	ctx.Step(`^no output directory should be created$`, noOutputDirectoryShouldBeCreated)
}

func anInputDirectoryWithBankContainingStreams(name string, count int) error {
	c := getConvertContext()
	if err := os.MkdirAll(c.inputDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(c.inputDir, name), []byte("BKHD"), 0644); err != nil {
		return err
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	c.extractor.streamsPerBank[base] = count
	return nil
}

func anInputDirectoryWithBankThatFailsToExtract(name string) error {
	c := getConvertContext()
	if err := os.MkdirAll(c.inputDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(c.inputDir, name), []byte("BKHD"), 0644); err != nil {
		return err
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	c.extractor.failBanks[base] = true
	return nil
}

func streamOfBankFailsToTranscode(index int, name string) error {
	c := getConvertContext()
	base := strings.TrimSuffix(name, filepath.Ext(name))
	c.transcoder.failStreams[fmt.Sprintf("%s-%04d.wem", base, index)] = true
	return nil
}

func noInputDirectoryExists() error {
	// nothing to create; inputDir simply never gets made
	return nil
}

func iConvertTheInputDirectoryTo(format string) error {
	if err := iAttemptToConvertTheInputDirectoryTo(format); err != nil {
		return err
	}
	c := getConvertContext()
	if c.err != nil {
		return fmt.Errorf("conversion failed unexpectedly: %v", c.err)
	}
	return nil
}

func iAttemptToConvertTheInputDirectoryTo(format string) error {
	c := getConvertContext()
	c.err = cmd.RunConvertWithDependencies(
		context.Background(),
		c.extractor,
		c.transcoder,
		filesystem.NewScanner(),
		filesystem.NewChecker(),
		convert.Input{
			InputDir:  c.inputDir,
			OutputDir: c.outputDir,
			TempRoot:  c.root,
			Format:    bank.Format(format),
			Verbosity: 1,
		},
		c.output,
	)
	return nil
}

func theConversionShouldSucceed() error {
	c := getConvertContext()
	if c.err != nil {
		return fmt.Errorf("expected success, got: %v", c.err)
	}
	return nil
}

func theConversionShouldFailWith(message string) error {
	c := getConvertContext()
	if c.err == nil {
		return fmt.Errorf("expected failure containing %q, got success", message)
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("error %q does not contain %q", c.err.Error(), message)
	}
	return nil
}

func theConversionShouldReportAFailure() error {
	c := getConvertContext()
	if c.err == nil {
		return fmt.Errorf("expected the run to report a failure")
	}
	return nil
}

func theOutputDirectoryShouldContainFiles(bankDir string, count int, ext string) error {
	c := getConvertContext()
	entries, err := os.ReadDir(filepath.Join(c.outputDir, bankDir))
	if err != nil {
		return fmt.Errorf("reading output directory %s: %w", bankDir, err)
	}
	matched := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "."+ext) {
			matched++
		}
	}
	if matched != count {
		return fmt.Errorf("output/%s has %d .%s files, want %d", bankDir, matched, ext, count)
	}
	return nil
}

func theOutputDirectoryShouldContainNoFiles(bankDir string) error {
	c := getConvertContext()
	entries, err := os.ReadDir(filepath.Join(c.outputDir, bankDir))
	if err != nil {
		// a missing directory also satisfies "no files"
		return nil
	}
	if len(entries) > 0 {
		return fmt.Errorf("output/%s has %d entries, want none", bankDir, len(entries))
	}
	return nil
}

func noOutputDirectoryShouldBeCreated() error {
	c := getConvertContext()
	if _, err := os.Stat(c.outputDir); !os.IsNotExist(err) {
		return fmt.Errorf("output directory should not exist")
	}
	return nil
}
