package vgmstream

import (
	"context"
	"fmt"

	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/execrunner"
	"bnk-converter/infrastructure/filesystem"
)

// DefaultExecutable is the vgmstream-cli executable name resolved from PATH
const DefaultExecutable = "vgmstream-cli"

// Transcoder implements bank.Transcoder using the external vgmstream-cli tool
type Transcoder struct {
	toolPath string
	runner   execrunner.CommandRunner
	checker  bank.FileChecker
}

// Option is a functional option for configuring Transcoder
type Option func(*Transcoder)

// WithToolPath sets a custom vgmstream-cli executable path
func WithToolPath(path string) Option {
	return func(t *Transcoder) {
		if path != "" {
			t.toolPath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner execrunner.CommandRunner) Option {
	return func(t *Transcoder) {
		t.runner = runner
	}
}

// WithFileChecker sets a custom file checker (for testing)
func WithFileChecker(checker bank.FileChecker) Option {
	return func(t *Transcoder) {
		t.checker = checker
	}
}

// New creates a vgmstream-based transcoder
func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		toolPath: DefaultExecutable,
		runner:   &execrunner.ExecCommandRunner{},
		checker:  filesystem.NewChecker(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Transcode implements bank.Transcoder. vgmstream-cli picks the output codec
// from the output filename extension, so the target format is carried by
// outputPath. A zero exit with no output file still counts as failure.
func (t *Transcoder) Transcode(ctx context.Context, req *bank.TranscodeRequest, outputPath string) error {
	args := []string{
		"-o", outputPath,
		req.StreamPath,
	}

	if err := t.runner.Run(ctx, t.toolPath, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", bank.ErrTranscodeFailed, req.StreamPath, err)
	}

	if !t.checker.Exists(outputPath) {
		return fmt.Errorf("%w: %s: no output produced", bank.ErrTranscodeFailed, req.StreamPath)
	}

	return nil
}

// VerifyInstalled checks that vgmstream-cli is available
func (t *Transcoder) VerifyInstalled(ctx context.Context) error {
	err := t.runner.Run(ctx, t.toolPath)
	if execrunner.IsStartFailure(err) {
		return fmt.Errorf("%w: %s: %v", bank.ErrToolNotFound, t.toolPath, err)
	}
	return nil
}

// Ensure Transcoder implements bank.Transcoder
var _ bank.Transcoder = (*Transcoder)(nil)
